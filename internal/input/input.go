// Package input contains sources of command input for the interactive
// engine, from the CLI or any other stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectCommandReader implements command.Reader and reads commands from
// any generic input stream directly. It can be used with any io.Reader but
// does not sanitize the input of control and escape sequences.
//
// DirectCommandReader should not be used directly; instead, create one
// with [NewDirectReader].
type DirectCommandReader struct {
	r *bufio.Reader
}

// InteractiveCommandReader implements command.Reader and reads commands
// from stdin using a go implementation of the GNU Readline library. This
// keeps input clear of typing and editing escape sequences and enables
// command history. It should in general only be used when directly
// connected to a TTY.
//
// InteractiveCommandReader should not be used directly; instead, create
// one with [NewInteractiveReader].
type InteractiveCommandReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a new DirectCommandReader and initializes a
// buffered reader on the provided stream.
func NewDirectReader(r io.Reader) *DirectCommandReader {
	return &DirectCommandReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveCommandReader and
// initializes readline. The returned reader must have Close called on it
// before disposal to properly tear down readline resources.
func NewInteractiveReader() (*InteractiveCommandReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveCommandReader{rl: rl}, nil
}

// Close cleans up resources associated with the DirectCommandReader. It
// currently has no resources to release but callers should treat it as
// though it must be called.
func (dcr *DirectCommandReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveCommandReader.
func (icr *InteractiveCommandReader) Close() error {
	return icr.rl.Close()
}

// ReadCommand reads the next line from the stream. This function blocks
// until a line containing non-space characters is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dcr *DirectCommandReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dcr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}

	return line, nil
}

// ReadCommand reads the next command from stdin via readline. This
// function blocks until a line consisting of more than empty or
// whitespace-only input is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (icr *InteractiveCommandReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = icr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}

	return line, nil
}

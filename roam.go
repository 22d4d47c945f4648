// Package roam contains a CLI-driven engine for getting commands and
// advancing a room-exploration game continuously until the player quits.
package roam

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/rosed"
	"github.com/roamgame/roam/internal/command"
	"github.com/roamgame/roam/internal/game"
	"github.com/roamgame/roam/internal/input"
	"github.com/roamgame/roam/internal/mapfile"
	"github.com/roamgame/roam/internal/roamerr"
)

const consoleOutputWidth = 80

// Engine contains the things needed to run a game from an interactive
// shell attached to an input stream and an output stream.
type Engine struct {
	state   *game.State
	in      command.Reader
	out     *bufio.Writer
	running bool
}

// New creates a new engine ready to operate on the given input and output
// streams. The map file at mapPath is loaded and validated immediately; if
// it is invalid in any way, the engine is not created and the error says
// what is wrong with the file.
//
// If nil is given for the input stream, input is read from stdin. If nil
// is given for the output stream, output goes to stdout. When attached
// directly to a terminal, input goes through readline for line editing and
// history, unless forceDirectInput is set.
func New(inputStream io.Reader, outputStream io.Writer, mapPath string, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	worldMap, err := mapfile.Load(mapPath)
	if err != nil {
		return nil, fmt.Errorf("loading map file: %w", err)
	}

	eng := &Engine{
		out: bufio.NewWriter(outputStream),
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	state, err := game.New(worldMap.Rooms, worldMap.Start)
	if err != nil {
		return nil, fmt.Errorf("initializing game state: %w", err)
	}
	eng.state = state

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit shows the starting room and then begins reading commands
// from the input stream and applying them to the game until the quit
// command is received. Reaching end of input is treated the same as
// quitting. Bad player input never ends the run; its message is shown and
// the next command is read.
func (eng *Engine) RunUntilQuit() error {
	if err := eng.write(eng.state.CurrentRoom.Describe() + "\n"); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error
	// condition
	defer func() {
		eng.running = false
	}()

	for {
		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user command: %w", err)
		}

		cmd, err := command.Parse(line)
		if err != nil {
			if err := eng.write(wrap(roamerr.Message(err)) + "\n\n"); err != nil {
				return err
			}
			continue
		}

		if cmd.Verb == "" {
			continue
		}

		// actual game state will not handle the quit command, only a
		// runner can do that. so check if that's what we got
		if cmd.Verb == command.Quit {
			break
		}

		output, err := eng.state.Advance(cmd)
		if err != nil {
			// handler output controls its own line layout; only prose
			// error messages get rewrapped
			output = wrap(roamerr.Message(err))
		}
		if err := eng.write(output + "\n\n"); err != nil {
			return err
		}
	}

	return eng.write("Goodbye!\n")
}

// wrap fits s to the console width without merging its paragraphs.
func wrap(s string) string {
	return rosed.
		Edit(s).
		WithOptions(rosed.Options{PreserveParagraphs: true}).
		Wrap(consoleOutputWidth).
		String()
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

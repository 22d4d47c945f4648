// Package command defines the game's command vocabulary and handles
// parsing of commands from input sources.
package command

// Canonical verb names. The first word of every input line is resolved
// against these by prefix, so any unambiguous abbreviation of a verb works
// the same as typing it out.
const (
	Go        = "go"
	Look      = "look"
	Get       = "get"
	Drop      = "drop"
	Inventory = "inventory"
	Help      = "help"
	Quit      = "quit"
)

// Vocabulary is every verb the game understands, in resolution candidate
// order. It is fixed at compile time; handlers are dispatched by an
// exhaustive switch over these names, not a mutable table.
var Vocabulary = []string{Go, Look, Get, Drop, Inventory, Help, Quit}

// Command is a valid command received from a game input source.
type Command struct {
	// Verb is the canonical name of the verb being invoked, such as "go"
	// or "quit". Abbreviations and bare direction words have already been
	// expanded by the time a Command exists.
	Verb string

	// Arg is the rest of the command: a direction for go, an item for get
	// and drop. Verbs that take no argument leave it empty.
	Arg string
}

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until
	// one is ready. When error is io.EOF, the returned string will always
	// be empty; otherwise the string is non-empty with leading and
	// trailing space trimmed.
	ReadCommand() (string, error)

	// Close performs any operations required to clean up the resources
	// created by the Reader. It should be called at least once when the
	// Reader is no longer needed.
	Close() error
}

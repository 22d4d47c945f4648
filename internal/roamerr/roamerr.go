// Package roamerr defines error types that carry both a message meant for
// the player and a technical message meant for logs and wrapping errors.
// Bad player input is never fatal; it is reported through these errors and
// rendered back into the session as plain text.
package roamerr

import "fmt"

// playerError is an error caused by player input that could not be carried
// out: the input could not be understood, was ambiguous, or asks for
// something that is impossible right now.
type playerError struct {
	msg   string
	human string
	wrap  error
}

func (e *playerError) Error() string {
	return e.msg
}

// Unwrap gives the error that this error wraps, if it wraps one.
func (e *playerError) Unwrap() error {
	return e.wrap
}

// Player returns a new player-input error with both the message to show in
// the session and a technical description. If technical is empty, one is
// generated from the player message.
func Player(game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got playerError(%q)", game)
	}
	return &playerError{
		msg:   technical,
		human: game,
	}
}

// Playerf returns a new player-input error whose in-session message is
// built from the given format string and arguments. The technical message
// is generated automatically.
func Playerf(gameFormat string, a ...interface{}) error {
	return Player(fmt.Sprintf(gameFormat, a...), "")
}

// WrapPlayer is like Player but additionally wraps an underlying error so
// that callers can still reach it with errors.Is and errors.As.
func WrapPlayer(e error, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got playerError(%q)", game)
	}
	return &playerError{
		msg:   technical,
		human: game,
		wrap:  e,
	}
}

// Message gets the text to show in the session for the given error. For
// errors created by this package that is the player-facing message;
// anything else falls back to err.Error().
func Message(err error) string {
	if pErr, ok := err.(*playerError); ok {
		return pErr.human
	}
	return err.Error()
}

/*
Roam starts an interactive session of a room-exploration game.

It reads in a map file, validates it, and starts the game in the map's
designated starting room. What happens in the game is printed to stdout
and commands are read from stdin until the "quit" command is input or
input reaches its end.

Usage:

	roam [flags] [MAP_FILE]

The flags are:

	-v, --version
		Give the current version of roam and then exit.

	-w, --world FILE
		Use the provided map file for the world. The file may be JSON,
		TOML, or YAML, selected by extension. Defaults to the file
		"world.json" in the current working directory. A positional
		MAP_FILE argument takes precedence over this flag.

	-d, --direct
		Force reading directly from stdin as opposed to using GNU
		readline based routines for command input, even when launched in
		a tty with stdin and stdout.

Once a session has started, type "help" for an explanation of the
commands. Any unambiguous abbreviation of a command works as well, so "i"
shows the inventory and "g n" can stand for "go north".
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/roamgame/roam"
	"github.com/roamgame/roam/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine, including an invalid map file.
	ExitInitError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of roam and then exit.")
	flagWorld   = pflag.StringP("world", "w", "world.json", "Use the given map file for the world.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading commands directly from stdin.")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("roam %s\n", version.Current)
		return ExitSuccess
	}

	mapFile := *flagWorld
	if pflag.NArg() > 0 {
		mapFile = pflag.Arg(0)
	}

	gameEng, err := roam.New(os.Stdin, os.Stdout, mapFile, *flagDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}
	defer gameEng.Close()

	if err := gameEng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitGameError
	}

	return ExitSuccess
}

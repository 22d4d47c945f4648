package command

import (
	"strings"

	"github.com/roamgame/roam/internal/resolve"
	"github.com/roamgame/roam/internal/roamerr"
	"github.com/roamgame/roam/internal/util"
)

// DirectionAliases maps bare direction words to the go command they are
// shorthand for, so "north" means "go north". Only whole words expand;
// abbreviations of directions go through the go verb and normal prefix
// resolution against the current room's exits.
var DirectionAliases = map[string]string{
	"north":     "go north",
	"south":     "go south",
	"east":      "go east",
	"west":      "go west",
	"northeast": "go northeast",
	"northwest": "go northwest",
	"southeast": "go southeast",
	"southwest": "go southwest",
	"up":        "go up",
	"down":      "go down",
}

// Parse parses a command from one raw line of input. If the line cannot be
// understood, or its verb is ambiguous, or a required argument is missing,
// a non-nil error carrying a message for the player is returned.
//
// An empty string or a string composed only of whitespace produces a zero
// Command and a nil error; callers should skip such commands.
func Parse(line string) (Command, error) {
	var cmd Command

	// lower the whole line so matching is case-insensitive
	tokens := strings.Fields(strings.ToLower(line))
	tokens = expandDirectionAlias(tokens)

	if len(tokens) < 1 {
		return cmd, nil
	}

	res := resolve.Prefix(tokens[0], Vocabulary)
	switch res.Kind {
	case resolve.Ambiguous:
		return cmd, roamerr.Playerf("Did you mean %s?", util.MakeTextList(res.Candidates, "or"))
	case resolve.NoMatch:
		return cmd, roamerr.Playerf("I don't know what you mean by %q.", tokens[0])
	}

	cmd.Verb = res.Match
	arg := strings.Join(tokens[1:], " ")

	switch cmd.Verb {
	case Go:
		// need the argument; WHERE are we going?
		if arg == "" {
			return cmd, roamerr.Playerf("Sorry, you need to 'go' somewhere.")
		}
	case Get:
		if arg == "" {
			return cmd, roamerr.Playerf("Sorry, you need to 'get' something.")
		}
	case Drop:
		if arg == "" {
			return cmd, roamerr.Playerf("Sorry, you need to 'drop' something.")
		}
	case Look, Inventory, Help, Quit:
		// ensure there are no additional args
		if arg != "" {
			return cmd, roamerr.Playerf("You can't %s *something*; type %s by itself.", cmd.Verb, cmd.Verb)
		}
	}

	cmd.Arg = arg

	return cmd, nil
}

// expandDirectionAlias rewrites a leading bare direction word into the go
// command it stands for. It expects all tokens to already be lower case.
// The given slice is not modified.
func expandDirectionAlias(tokens []string) []string {
	if len(tokens) < 1 {
		return tokens
	}

	expansion, ok := DirectionAliases[tokens[0]]
	if !ok {
		return tokens
	}

	return append(strings.Fields(expansion), tokens[1:]...)
}

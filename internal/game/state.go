package game

// File state.go holds the game state and the per-verb command handlers.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/roamgame/roam/internal/command"
	"github.com/roamgame/roam/internal/resolve"
	"github.com/roamgame/roam/internal/roamerr"
	"github.com/roamgame/roam/internal/util"
)

// commandHelp describes every verb in the vocabulary, in vocabulary order.
var commandHelp = [][2]string{
	{command.Go, "go to another room via one of the exits"},
	{command.Look, "show the description of the room"},
	{command.Get, "pick up an item in the room"},
	{command.Drop, "put down an item you are carrying"},
	{command.Inventory, "show what you are currently carrying"},
	{command.Help, "show this help"},
	{command.Quit, "end the game"},
}

const helpTableWidth = 80

// State is the game's entire state.
type State struct {
	// World is all rooms that exist and their current state, indexed by
	// room name.
	World map[string]*Room

	// CurrentRoom is the room that the player is in. It is always one of
	// the rooms in World.
	CurrentRoom *Room

	// Inventory is the items that the player currently has, in the order
	// they were picked up.
	Inventory []string
}

// New creates a new State over the given rooms. It performs a basic sanity
// check that the starting room exists; full structural validation of the
// world is the map loader's job and must already have happened.
//
// startingRoom is the name of the room the player begins in.
func New(world map[string]*Room, startingRoom string) (*State, error) {
	gs := &State{World: world}

	var startExists bool
	gs.CurrentRoom, startExists = world[startingRoom]
	if !startExists {
		return nil, fmt.Errorf("starting room %q does not exist in passed-in rooms", startingRoom)
	}

	return gs, nil
}

// Advance advances the game state based on the given command and returns
// the response text to show the player. If the command cannot be carried
// out, a non-nil error describing why is returned instead and the game
// state is left unchanged; the caller decides how to surface it. No
// command, however malformed, is ever fatal here.
//
// Note that quit is not considered a valid command, as ending the session
// is up to the controlling engine.
func (gs *State) Advance(cmd command.Command) (string, error) {
	switch cmd.Verb {
	case command.Go:
		return gs.ExecuteCommandGo(cmd)
	case command.Look:
		return gs.ExecuteCommandLook(cmd)
	case command.Get:
		return gs.ExecuteCommandGet(cmd)
	case command.Drop:
		return gs.ExecuteCommandDrop(cmd)
	case command.Inventory:
		return gs.ExecuteCommandInventory(cmd)
	case command.Help:
		return gs.ExecuteCommandHelp(cmd)
	case command.Quit:
		return "", roamerr.Playerf("I can't quit; I'm not being executed by a quitable engine")
	default:
		return "", roamerr.Playerf("I don't know how to %q", cmd.Verb)
	}
}

// ExecuteCommandGo executes the go command with the arguments in the
// provided Command and returns the output. The direction may be any
// unambiguous prefix of one of the current room's exit directions.
func (gs *State) ExecuteCommandGo(cmd command.Command) (string, error) {
	res := resolve.Prefix(cmd.Arg, gs.CurrentRoom.ExitDirections())

	switch res.Kind {
	case resolve.Ambiguous:
		return "", roamerr.Playerf("Go which way, %s?", util.MakeTextList(res.Candidates, "or"))
	case resolve.NoMatch:
		return "", roamerr.Playerf("There's no way to go %s.", cmd.Arg)
	}

	gs.CurrentRoom = gs.World[gs.CurrentRoom.Exits[res.Match]]

	return fmt.Sprintf("You go %s.\n\n", res.Match) + gs.CurrentRoom.Describe(), nil
}

// ExecuteCommandLook executes the look command and returns the full
// description of the current room. Looking never mutates anything.
func (gs *State) ExecuteCommandLook(cmd command.Command) (string, error) {
	return gs.CurrentRoom.Describe(), nil
}

// ExecuteCommandGet executes the get command with the arguments in the
// provided Command and returns the output. The item may be named by any
// unambiguous substring of an item in the current room.
func (gs *State) ExecuteCommandGet(cmd command.Command) (string, error) {
	res := resolve.Substring(cmd.Arg, gs.CurrentRoom.Items)

	switch res.Kind {
	case resolve.Ambiguous:
		return "", roamerr.Playerf("Which do you mean, %s?", util.MakeTextList(res.Candidates, "or"))
	case resolve.NoMatch:
		return "", roamerr.Playerf("There's no %s anywhere.", cmd.Arg)
	}

	// first remove the item from the room, then add it to the inventory
	gs.CurrentRoom.RemoveItem(res.Match)
	gs.Inventory = append(gs.Inventory, res.Match)

	return fmt.Sprintf("You pick up the %s.", res.Match), nil
}

// ExecuteCommandDrop executes the drop command with the arguments in the
// provided Command and returns the output. Unlike get, drop requires the
// item's exact name.
func (gs *State) ExecuteCommandDrop(cmd command.Command) (string, error) {
	itemIndex := -1
	for idx, it := range gs.Inventory {
		if it == cmd.Arg {
			itemIndex = idx
			break
		}
	}

	if itemIndex == -1 {
		return "", roamerr.Playerf("You don't have %s.", cmd.Arg)
	}

	// first remove the item from the inventory, then add it to the room
	gs.Inventory = append(gs.Inventory[:itemIndex], gs.Inventory[itemIndex+1:]...)
	gs.CurrentRoom.Items = append(gs.CurrentRoom.Items, cmd.Arg)

	return fmt.Sprintf("You drop the %s.", cmd.Arg), nil
}

// ExecuteCommandInventory executes the inventory command and returns the
// output, one carried item per line.
func (gs *State) ExecuteCommandInventory(cmd command.Command) (string, error) {
	if len(gs.Inventory) < 1 {
		return "You're not carrying anything.", nil
	}

	lines := make([]string, len(gs.Inventory)+1)
	lines[0] = "Inventory:"
	for idx, it := range gs.Inventory {
		lines[idx+1] = "  " + it
	}

	return strings.Join(lines, "\n"), nil
}

// ExecuteCommandHelp executes the help command and returns the command
// list as output.
func (gs *State) ExecuteCommandHelp(cmd command.Command) (string, error) {
	ed := rosed.
		Edit("").
		WithOptions(rosed.Options{ParagraphSeparator: "\n"}).
		InsertDefinitionsTable(0, commandHelp, helpTableWidth)

	output := ed.
		Insert(0, "You can run the following commands:\n").
		String()

	return output, nil
}

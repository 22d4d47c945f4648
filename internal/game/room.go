// Package game implements game state and advancement.
package game

// File room.go holds the room data and room description rendering.

import (
	"fmt"
	"strings"

	"github.com/roamgame/roam/internal/util"
)

// Room is a single location in the game world. Rooms refer to each other
// by name through their exit mappings; the names are checked against the
// complete room set at load time and are never stored as direct pointers,
// so the room graph may freely contain cycles.
type Room struct {
	// Name is how the room is referred to by exits and in the description
	// header. It must be unique from all other Rooms.
	Name string

	// Description is what is shown when the player looks at the room.
	Description string

	// Exits maps direction names to the name of the room they lead to.
	Exits map[string]string

	// Items is the items on the ground. This can be changed over time.
	Items []string
}

func (room *Room) String() string {
	return fmt.Sprintf("Room<%s EXITS: %s>", room.Name, strings.Join(room.ExitDirections(), ", "))
}

// Copy returns a deeply-copied Room.
func (room *Room) Copy() *Room {
	rCopy := &Room{
		Name:        room.Name,
		Description: room.Description,
		Exits:       make(map[string]string, len(room.Exits)),
		Items:       make([]string, len(room.Items)),
	}

	for dir, dest := range room.Exits {
		rCopy.Exits[dir] = dest
	}

	copy(rCopy.Items, room.Items)

	return rCopy
}

// ExitDirections returns the room's exit directions in deterministic
// (alphabetical) order. This is both the presentation order in room
// descriptions and the candidate order for direction resolution.
func (room *Room) ExitDirections() []string {
	return util.OrderedKeys(room.Exits)
}

// HasItem returns whether an item of the given name is on the ground here.
func (room *Room) HasItem(name string) bool {
	for _, it := range room.Items {
		if it == name {
			return true
		}
	}
	return false
}

// RemoveItem removes one occurrence of the named item from the room. If
// there is already no item with that name in the room, this has no effect.
func (room *Room) RemoveItem(name string) {
	itemIndex := -1

	for idx, it := range room.Items {
		if it == name {
			itemIndex = idx
			break
		}
	}

	if itemIndex == -1 {
		// no item by that name is here
		return
	}

	room.Items = append(room.Items[:itemIndex], room.Items[itemIndex+1:]...)
}

// Describe renders the full description of the room: the name header, the
// description text, the items on the ground, and the exits. The items line
// is omitted when the room has none; the exits line is always present.
// With no intervening mutation the rendered text is always the same.
func (room *Room) Describe() string {
	var sb strings.Builder

	sb.WriteString("> " + room.Name + "\n\n")
	sb.WriteString(room.Description + "\n")

	if len(room.Items) > 0 {
		sb.WriteString("\nItems: " + strings.Join(room.Items, " ") + "\n")
	}

	sb.WriteString("\nExits: " + strings.Join(room.ExitDirections(), " ") + "\n")

	return sb.String()
}

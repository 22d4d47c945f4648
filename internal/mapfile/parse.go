package mapfile

// File parse.go validates the decoded map document and builds game rooms
// from it. Validation runs in a fixed order and stops at the first
// problem, always with a reason specific enough to fix the file. Exits may
// refer to rooms defined later in the file, so dangling exit targets are
// only checked in a final pass once every room has been scanned.

import (
	"fmt"

	"github.com/roamgame/roam/internal/game"
	"github.com/roamgame/roam/internal/util"
)

func parseMap(doc interface{}) (Map, error) {
	top, ok := asMap(doc)
	if !ok {
		return Map{}, fmt.Errorf("map file must contain a single top-level mapping")
	}

	startVal, hasStart := top["start"]
	if !hasStart {
		return Map{}, fmt.Errorf("map is missing required %q key", "start")
	}
	roomsVal, hasRooms := top["rooms"]
	if !hasRooms {
		return Map{}, fmt.Errorf("map is missing required %q key", "rooms")
	}

	start, ok := startVal.(string)
	if !ok {
		return Map{}, fmt.Errorf("start: must be the name of a room")
	}

	roomDefs, ok := asSlice(roomsVal)
	if !ok {
		return Map{}, fmt.Errorf("rooms: must be a list of room definitions")
	}

	m := Map{
		Start: start,
		Rooms: make(map[string]*game.Room, len(roomDefs)),
	}

	for i, def := range roomDefs {
		room, err := parseRoom(def)
		if err != nil {
			return Map{}, fmt.Errorf("rooms[%d]: %w", i, err)
		}

		if _, dup := m.Rooms[room.Name]; dup {
			return Map{}, fmt.Errorf("rooms[%d]: duplicate room name %q", i, room.Name)
		}
		m.Rooms[room.Name] = room
	}

	// now that the name set is complete, every exit target must exist
	for _, name := range util.OrderedKeys(m.Rooms) {
		room := m.Rooms[name]
		for _, dir := range room.ExitDirections() {
			if _, exists := m.Rooms[room.Exits[dir]]; !exists {
				return Map{}, fmt.Errorf("room %q: exit %q points to non-existing room %q", name, dir, room.Exits[dir])
			}
		}
	}

	if _, exists := m.Rooms[m.Start]; !exists {
		return Map{}, fmt.Errorf("start: no room with name %q exists", m.Start)
	}

	return m, nil
}

func parseRoom(def interface{}) (*game.Room, error) {
	fields, ok := asMap(def)
	if !ok {
		return nil, fmt.Errorf("room definition must be a mapping")
	}

	name, ok := fields["name"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or non-text %q field", "name")
	}

	// the lineage of map files this loader accepts spells it "desc"
	descVal, hasDesc := fields["description"]
	if !hasDesc {
		descVal = fields["desc"]
	}
	desc, ok := descVal.(string)
	if !ok {
		return nil, fmt.Errorf("missing or non-text %q field", "description")
	}

	exitFields, ok := asMap(fields["exits"])
	if !ok {
		return nil, fmt.Errorf("missing or non-mapping %q field", "exits")
	}

	room := &game.Room{
		Name:        name,
		Description: desc,
		Exits:       make(map[string]string, len(exitFields)),
	}

	for dir, target := range exitFields {
		targetName, ok := target.(string)
		if !ok {
			return nil, fmt.Errorf("exits[%q]: must name a room", dir)
		}
		room.Exits[dir] = targetName
	}

	if itemsVal, hasItems := fields["items"]; hasItems {
		items, ok := asSlice(itemsVal)
		if !ok {
			return nil, fmt.Errorf("%q field must be a list of item names", "items")
		}
		for idx, it := range items {
			itemName, ok := it.(string)
			if !ok {
				return nil, fmt.Errorf("items[%d]: must be an item name", idx)
			}
			room.Items = append(room.Items, itemName)
		}
	}

	return room, nil
}

// asMap and asSlice paper over the differences between what the three
// decoders produce for untyped documents: the TOML decoder gives
// []map[string]interface{} for arrays of tables where JSON and YAML give
// []interface{}.

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case []interface{}:
		return s, true
	case []map[string]interface{}:
		out := make([]interface{}, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	default:
		return nil, false
	}
}

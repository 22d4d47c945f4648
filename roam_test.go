package roam

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testMap = `{
	"start": "A",
	"rooms": [
		{"name": "A", "desc": "The first room.", "exits": {"north": "B"}},
		{"name": "B", "desc": "The second room.", "exits": {"south": "A"}, "items": ["key"]}
	]
}`

func writeTestMap(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test map file: %v", err)
	}
	return path
}

func Test_Engine_fullSession(t *testing.T) {
	assert := assert.New(t)

	session := strings.Join([]string{
		"look",
		"go north",
		"get key",
		"inventory",
		"go s",
		"drop key",
		"quit",
	}, "\n") + "\n"

	in := strings.NewReader(session)
	out := &bytes.Buffer{}

	eng, err := New(in, out, writeTestMap(t, testMap), false)
	if !assert.NoError(err) {
		return
	}
	defer eng.Close()

	err = eng.RunUntilQuit()
	if !assert.NoError(err) {
		return
	}

	output := out.String()

	// the starting room is described once before any command
	assert.True(strings.HasPrefix(output, "> A\n"), "session should open with the starting room header")
	assert.Contains(output, "You go north.")
	assert.Contains(output, "Items: key")
	assert.Contains(output, "You pick up the key.")
	assert.Contains(output, "Inventory:\n  key")
	assert.Contains(output, "You go south.")
	assert.Contains(output, "You drop the key.")

	// quit ends the session; nothing follows the farewell
	assert.True(strings.HasSuffix(output, "Goodbye!\n"))
}

func Test_Engine_badInputKeepsSessionAlive(t *testing.T) {
	assert := assert.New(t)

	session := "xyzzy\ngo nowhere\nget sword\nquit\n"

	out := &bytes.Buffer{}
	eng, err := New(strings.NewReader(session), out, writeTestMap(t, testMap), false)
	if !assert.NoError(err) {
		return
	}
	defer eng.Close()

	err = eng.RunUntilQuit()
	if !assert.NoError(err) {
		return
	}

	output := out.String()
	assert.Contains(output, `I don't know what you mean by "xyzzy".`)
	assert.Contains(output, "There's no way to go nowhere.")
	assert.Contains(output, "There's no sword anywhere.")
	assert.True(strings.HasSuffix(output, "Goodbye!\n"))
}

func Test_Engine_endOfInputEndsSession(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	eng, err := New(strings.NewReader("look\n"), out, writeTestMap(t, testMap), false)
	if !assert.NoError(err) {
		return
	}
	defer eng.Close()

	err = eng.RunUntilQuit()
	assert.NoError(err)
	assert.True(strings.HasSuffix(out.String(), "Goodbye!\n"))
}

func Test_Engine_invalidMapNeverPlays(t *testing.T) {
	assert := assert.New(t)

	badMap := `{
		"start": "A",
		"rooms": [
			{"name": "A", "desc": "The first room.", "exits": {"north": "Attic"}}
		]
	}`

	_, err := New(strings.NewReader(""), &bytes.Buffer{}, writeTestMap(t, badMap), false)

	if assert.Error(err) {
		assert.Contains(err.Error(), `non-existing room "Attic"`)
	}
}

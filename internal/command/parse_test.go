package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamgame/roam/internal/roamerr"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Command
		expectErr string
	}{
		{
			name:   "full verb with argument",
			input:  "go north",
			expect: Command{Verb: Go, Arg: "north"},
		},
		{
			name:   "input case does not matter",
			input:  "GO NORTH",
			expect: Command{Verb: Go, Arg: "north"},
		},
		{
			name:   "verb abbreviation resolves by prefix",
			input:  "l",
			expect: Command{Verb: Look},
		},
		{
			name:   "single-letter inventory",
			input:  "i",
			expect: Command{Verb: Inventory},
		},
		{
			name:   "single-letter quit",
			input:  "q",
			expect: Command{Verb: Quit},
		},
		{
			name:   "multi-word argument is preserved",
			input:  "drop deck of cards",
			expect: Command{Verb: Drop, Arg: "deck of cards"},
		},
		{
			name:   "extra whitespace is collapsed",
			input:  "  get   deck  ",
			expect: Command{Verb: Get, Arg: "deck"},
		},
		{
			name:   "bare direction word expands to go",
			input:  "north",
			expect: Command{Verb: Go, Arg: "north"},
		},
		{
			name:   "bare diagonal direction expands to go",
			input:  "southwest",
			expect: Command{Verb: Go, Arg: "southwest"},
		},
		{
			name:   "empty line is a no-op",
			input:  "",
			expect: Command{},
		},
		{
			name:   "whitespace-only line is a no-op",
			input:  "   \t ",
			expect: Command{},
		},
		{
			name:      "ambiguous verb abbreviation",
			input:     "g",
			expectErr: "Did you mean go or get?",
		},
		{
			name:      "unknown verb",
			input:     "xyzzy",
			expectErr: `I don't know what you mean by "xyzzy".`,
		},
		{
			name:      "abbreviated direction word is not an alias",
			input:     "n",
			expectErr: `I don't know what you mean by "n".`,
		},
		{
			name:      "go requires a destination",
			input:     "go",
			expectErr: "Sorry, you need to 'go' somewhere.",
		},
		{
			name:      "get requires an item",
			input:     "get",
			expectErr: "Sorry, you need to 'get' something.",
		},
		{
			name:      "drop requires an item",
			input:     "drop",
			expectErr: "Sorry, you need to 'drop' something.",
		},
		{
			name:      "look takes no argument",
			input:     "look around",
			expectErr: "You can't look *something*; type look by itself.",
		},
		{
			name:      "quit takes no argument",
			input:     "quit game",
			expectErr: "You can't quit *something*; type quit by itself.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse(tc.input)

			if tc.expectErr != "" {
				if !assert.Error(err) {
					return
				}
				assert.Equal(tc.expectErr, roamerr.Message(err))
				return
			}

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ExpandDirectionAlias(t *testing.T) {
	assert := assert.New(t)

	// trailing words survive expansion untouched
	actual := expandDirectionAlias([]string{"north", "quickly"})
	assert.Equal([]string{"go", "north", "quickly"}, actual)

	// non-alias leading words are left alone
	actual = expandDirectionAlias([]string{"look"})
	assert.Equal([]string{"look"}, actual)
}

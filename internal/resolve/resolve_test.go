package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Prefix(t *testing.T) {
	compass := []string{"north", "northeast", "northwest"}

	testCases := []struct {
		name       string
		token      string
		candidates []string
		expect     Resolution
	}{
		{
			name:       "full word is unique",
			token:      "north",
			candidates: compass,
			expect:     Resolution{Kind: Unique, Match: "north"},
		},
		{
			name:       "shared prefix is ambiguous, in candidate order",
			token:      "n",
			candidates: compass,
			expect:     Resolution{Kind: Ambiguous, Candidates: []string{"north", "northeast", "northwest"}},
		},
		{
			name:       "longer prefix narrows to one",
			token:      "northe",
			candidates: compass,
			expect:     Resolution{Kind: Unique, Match: "northeast"},
		},
		{
			name:       "no candidate starts with token",
			token:      "z",
			candidates: compass,
			expect:     Resolution{Kind: NoMatch},
		},
		{
			name:       "empty token never matches",
			token:      "",
			candidates: compass,
			expect:     Resolution{Kind: NoMatch},
		},
		{
			name:       "matching is case-insensitive",
			token:      "NoRTH",
			candidates: compass,
			expect:     Resolution{Kind: Unique, Match: "north"},
		},
		{
			name:       "empty candidate set",
			token:      "n",
			candidates: nil,
			expect:     Resolution{Kind: NoMatch},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Prefix(tc.token, tc.candidates)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Substring(t *testing.T) {
	items := []string{"deck of cards", "bandana"}

	testCases := []struct {
		name       string
		token      string
		candidates []string
		expect     Resolution
	}{
		{
			name:       "substring contained by both is ambiguous",
			token:      "a",
			candidates: items,
			expect:     Resolution{Kind: Ambiguous, Candidates: []string{"deck of cards", "bandana"}},
		},
		{
			name:       "substring contained by one is unique",
			token:      "deck",
			candidates: items,
			expect:     Resolution{Kind: Unique, Match: "deck of cards"},
		},
		{
			name:       "interior substring matches too",
			token:      "card",
			candidates: items,
			expect:     Resolution{Kind: Unique, Match: "deck of cards"},
		},
		{
			name:       "substring contained by none",
			token:      "q",
			candidates: items,
			expect:     Resolution{Kind: NoMatch},
		},
		{
			name:       "empty token never matches",
			token:      "",
			candidates: items,
			expect:     Resolution{Kind: NoMatch},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Substring(tc.token, tc.candidates)

			assert.Equal(tc.expect, actual)
		})
	}
}

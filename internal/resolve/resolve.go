// Package resolve matches abbreviated player input tokens against sets of
// candidate words. It is deliberately generic: the same resolver is used
// for the verb vocabulary and, within the go command, for the exit
// directions of whatever room the player is standing in. No candidate word
// gets special treatment.
package resolve

import "strings"

// Kind is the outcome class of resolving one token.
type Kind int

const (
	// NoMatch means no candidate corresponds to the token.
	NoMatch Kind = iota

	// Unique means exactly one candidate corresponds to the token.
	Unique

	// Ambiguous means two or more candidates correspond to the token and
	// the player must be asked which one was meant.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case Unique:
		return "Unique"
	case Ambiguous:
		return "Ambiguous"
	default:
		return "Kind(?)"
	}
}

// Resolution is the result of matching one input token against a candidate
// set. Callers must branch on Kind; Match is set only for Unique results
// and Candidates only for Ambiguous ones.
type Resolution struct {
	Kind Kind

	// Match is the canonical candidate the token resolved to.
	Match string

	// Candidates holds every matching candidate, in candidate-set order.
	Candidates []string
}

// Prefix resolves token against candidates by case-insensitive prefix
// matching. An empty token never matches anything: the empty string is a
// prefix of every candidate and would otherwise always come back
// Ambiguous.
func Prefix(token string, candidates []string) Resolution {
	return match(token, candidates, strings.HasPrefix)
}

// Substring resolves token against candidates by case-insensitive
// substring containment. An empty token never matches anything.
func Substring(token string, candidates []string) Resolution {
	return match(token, candidates, strings.Contains)
}

func match(token string, candidates []string, hit func(candidate, token string) bool) Resolution {
	if token == "" {
		return Resolution{Kind: NoMatch}
	}

	token = strings.ToLower(token)

	var found []string
	for _, cand := range candidates {
		if hit(strings.ToLower(cand), token) {
			found = append(found, cand)
		}
	}

	switch len(found) {
	case 0:
		return Resolution{Kind: NoMatch}
	case 1:
		return Resolution{Kind: Unique, Match: found[0]}
	default:
		return Resolution{Kind: Ambiguous, Candidates: found}
	}
}

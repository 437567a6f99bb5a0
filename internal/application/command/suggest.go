package command

import (
	"strings"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// MaxSuggestions caps every suggestion list.
const MaxSuggestions = 5

// SuggestionKind tells whether a suggestion is an alias or a command key.
type SuggestionKind string

const (
	SuggestionAlias   SuggestionKind = "alias"
	SuggestionCommand SuggestionKind = "command"
)

// Suggestion is one completion candidate.
type Suggestion struct {
	Token       string // alias token or command key to type
	ResolvesTo  string // alias target, empty for commands
	Agent       string
	Description string
	Kind        SuggestionKind
}

// suggest scans aliases (token or target starting with partial), then
// command keys starting with partial, each in insertion order. Matching is
// case-sensitive.
func suggest(catalog domaincmd.Namespace, partial string) []Suggestion {
	out := make([]Suggestion, 0, MaxSuggestions)

	for _, a := range catalog.Aliases().Entries() {
		if len(out) == MaxSuggestions {
			return out
		}
		if !strings.HasPrefix(a.Token, partial) && !strings.HasPrefix(a.Target, partial) {
			continue
		}
		s := Suggestion{Token: a.Token, ResolvesTo: a.Target, Kind: SuggestionAlias}
		if d, ok := catalog.Lookup(a.Target); ok {
			s.Agent = d.Agent()
			s.Description = d.Description()
		}
		out = append(out, s)
	}

	for _, d := range catalog.Index().Descriptors() {
		if len(out) == MaxSuggestions {
			break
		}
		if !strings.HasPrefix(d.Key(), partial) {
			continue
		}
		out = append(out, Suggestion{
			Token:       d.Key(),
			Agent:       d.Agent(),
			Description: d.Description(),
			Kind:        SuggestionCommand,
		})
	}

	return out
}

package airline

import (
	"cmp"
	"slices"
	"strings"
)

// MatchRank orders how well an airline matches a text query. Higher is better.
type MatchRank int

const (
	NoMatch MatchRank = iota
	OverviewMatch
	NameSubstring
	NameWordPrefix
	NamePrefix
	NameExact
)

// Rank scores a on the name first and falls back to the overview.
func Rank(a *Airline, q string) MatchRank {
	q = NameKey(q)
	if q == "" {
		return NoMatch
	}
	name := NameKey(a.name)
	switch {
	case name == q:
		return NameExact
	case strings.HasPrefix(name, q):
		return NamePrefix
	case hasWordPrefix(name, q):
		return NameWordPrefix
	case strings.Contains(name, q):
		return NameSubstring
	case strings.Contains(strings.ToLower(a.about.Overview), q):
		return OverviewMatch
	}
	return NoMatch
}

func hasWordPrefix(name, q string) bool {
	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}
	for _, word := range words[1:] {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

// Scored pairs an airline with its rank for a particular query.
type Scored struct {
	Airline *Airline
	Rank    MatchRank
}

// RankAll drops non-matching airlines and sorts the rest by rank, then rating
// descending, then name ascending.
func RankAll(candidates []*Airline, q string) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for _, a := range candidates {
		if r := Rank(a, q); r != NoMatch {
			scored = append(scored, Scored{Airline: a, Rank: r})
		}
	}
	slices.SortStableFunc(scored, compareScored)
	return scored
}

func compareScored(x, y Scored) int {
	if c := cmp.Compare(y.Rank, x.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(y.Airline.rating, x.Airline.rating); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(x.Airline.name), strings.ToLower(y.Airline.name)); c != 0 {
		return c
	}
	return cmp.Compare(x.Airline.id, y.Airline.id)
}

package ident

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrMalformedFilter marks tokens that do not match the filter grammar.
	ErrMalformedFilter = errors.New("malformed filter")

	// ErrUnknownPuzzle marks filters that reference no registered puzzle.
	ErrUnknownPuzzle = errors.New("unknown puzzle")
)

// MalformedFilterError reports a syntactically invalid filter token.
type MalformedFilterError struct {
	Token  string
	Reason string
}

func (e *MalformedFilterError) Error() string {
	return fmt.Sprintf("malformed filter %q: %s", e.Token, e.Reason)
}

func (e *MalformedFilterError) Is(target error) bool {
	return target == ErrMalformedFilter
}

// UnknownPuzzleError reports a well-formed filter token that selects
// nothing from the catalog. Silently skipping such tokens would hide
// configuration mistakes on unattended runs, so resolution fails instead.
type UnknownPuzzleError struct {
	Token string
}

func (e *UnknownPuzzleError) Error() string {
	return fmt.Sprintf("unknown puzzle: %q does not match any registered puzzle", e.Token)
}

func (e *UnknownPuzzleError) Is(target error) bool {
	return target == ErrUnknownPuzzle
}

// termPattern is the filter grammar: a year, optionally narrowed to a
// day, optionally narrowed to a part. `*` (handled separately) selects
// the whole catalog.
var termPattern = regexp.MustCompile(`^y(\d{2})(?:d(\d{2})(?:p(\d))?)?$`)

// Term is a single filter token parsed from the command line, e.g.
// `y21`, `y21d01`, or `y21d01p2`. Missing components are wildcards.
// A Term may reference puzzles that are not registered; Resolve decides
// whether that is an error.
type Term struct {
	token string

	year Year

	day    Day
	hasDay bool

	part    Part
	hasPart bool

	wildcard bool
}

// ParseTerm parses one filter token.
func ParseTerm(token string) (Term, error) {
	if token == "" {
		return Term{}, &MalformedFilterError{Token: token, Reason: "empty (use '*' to select everything)"}
	}
	if token == "*" {
		return Term{token: token, wildcard: true}, nil
	}

	m := termPattern.FindStringSubmatch(token)
	if m == nil {
		return Term{}, &MalformedFilterError{Token: token, Reason: "does not match pattern yYY[dDD[pP]]"}
	}

	t := Term{token: token}

	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return Term{}, &MalformedFilterError{Token: token, Reason: err.Error()}
	}
	t.year, err = NewYear(2000 + yy)
	if err != nil {
		return Term{}, &MalformedFilterError{Token: token, Reason: err.Error()}
	}

	if m[2] != "" {
		dd, err := strconv.Atoi(m[2])
		if err == nil {
			t.day, err = NewDay(dd)
		}
		if err != nil {
			return Term{}, &MalformedFilterError{Token: token, Reason: err.Error()}
		}
		t.hasDay = true
	}

	if m[3] != "" {
		p, err := strconv.Atoi(m[3])
		if err == nil {
			t.part, err = NewPart(p)
		}
		if err != nil {
			return Term{}, &MalformedFilterError{Token: token, Reason: err.Error()}
		}
		t.hasPart = true
	}

	return t, nil
}

// ParseTerms parses a sequence of filter tokens, failing on the first
// malformed one.
func ParseTerms(tokens []string) ([]Term, error) {
	terms := make([]Term, 0, len(tokens))
	for _, tok := range tokens {
		t, err := ParseTerm(tok)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// Token returns the original text of the term.
func (t Term) Token() string { return t.token }

// MatchesYear reports whether the term selects anything in the year.
func (t Term) MatchesYear(y Year) bool {
	return t.wildcard || t.year == y
}

// MatchesYearDay reports whether the term selects anything on the day.
func (t Term) MatchesYearDay(y Year, d Day) bool {
	if t.wildcard {
		return true
	}
	return t.year == y && (!t.hasDay || t.day == d)
}

// MatchesID reports whether the term selects the exact puzzle part.
func (t Term) MatchesID(id ID) bool {
	if !t.MatchesYearDay(id.Year, id.Day) {
		return false
	}
	return t.wildcard || !t.hasPart || t.part == id.Part
}

// Catalog is the read-only registry view resolution runs against.
type Catalog interface {
	// IDs lists every registered puzzle part in ascending order.
	IDs() []ID
}

// Resolve turns filter terms into the concrete, deduplicated ID set they
// select from the catalog, sorted ascending. A term matching nothing
// fails the whole resolution with ErrUnknownPuzzle; no partial set is
// returned. An empty term slice resolves to an empty set.
//
// Resolution is deterministic and order-independent: terms combine by
// union and the result has set semantics.
func Resolve(terms []Term, catalog Catalog) ([]ID, error) {
	all := catalog.IDs()

	selected := make(map[ID]struct{})
	for _, term := range terms {
		matched := false
		for _, id := range all {
			if term.MatchesID(id) {
				selected[id] = struct{}{}
				matched = true
			}
		}
		if !matched {
			return nil, &UnknownPuzzleError{Token: term.Token()}
		}
	}

	// Preserve catalog order instead of re-sorting the map.
	ids := make([]ID, 0, len(selected))
	for _, id := range all {
		if _, ok := selected[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// MatchesAnyYear reports whether any term selects the year. An empty
// term slice matches everything, mirroring the CLI default of running
// the full catalog.
func MatchesAnyYear(terms []Term, y Year) bool {
	if len(terms) == 0 {
		return true
	}
	for _, t := range terms {
		if t.MatchesYear(y) {
			return true
		}
	}
	return false
}

// MatchesAnyYearDay reports whether any term selects the day.
func MatchesAnyYearDay(terms []Term, y Year, d Day) bool {
	if len(terms) == 0 {
		return true
	}
	for _, t := range terms {
		if t.MatchesYearDay(y, d) {
			return true
		}
	}
	return false
}

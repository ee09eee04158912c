package leaderboard

import "aoc/internal/ident"

// Source is the slice of the store this package reads.
type Source interface {
	LeaderboardYears() ([]ident.Year, error)
	ReadLeaderboard(ident.Year) (string, error)
}

// LoadAll parses every stored leaderboard selected by the filter terms,
// ascending by year. Years whose filtered table has no rows left are
// omitted.
func LoadAll(src Source, terms []ident.Term) ([]*Board, error) {
	years, err := src.LeaderboardYears()
	if err != nil {
		return nil, err
	}

	var boards []*Board
	for _, year := range years {
		if !ident.MatchesAnyYear(terms, year) {
			continue
		}
		text, err := src.ReadLeaderboard(year)
		if err != nil {
			return nil, err
		}
		board, err := Parse(year, terms, text)
		if err != nil {
			return nil, err
		}
		if board != nil {
			boards = append(boards, board)
		}
	}
	return boards, nil
}

package leaderboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/ident"
)

type fakeSource struct {
	boards map[ident.Year]string
	err    error
}

func (f *fakeSource) LeaderboardYears() ([]ident.Year, error) {
	if f.err != nil {
		return nil, f.err
	}
	var years []ident.Year
	for y := ident.Year(2015); y <= 2099; y++ {
		if _, ok := f.boards[y]; ok {
			years = append(years, y)
		}
	}
	return years, nil
}

func (f *fakeSource) ReadLeaderboard(y ident.Year) (string, error) {
	text, ok := f.boards[y]
	if !ok {
		return "", errors.New("no such leaderboard")
	}
	return text, nil
}

const tinyTable = "" +
	"      --------Part 1--------   --------Part 2--------\n" +
	"Day       Time   Rank  Score       Time   Rank  Score\n" +
	"  1   00:20:32   6893      0   00:24:50   5662      0\n"

func TestLoadAll(t *testing.T) {
	src := &fakeSource{boards: map[ident.Year]string{
		2021: tinyTable,
		2024: tinyTable,
	}}

	boards, err := LoadAll(src, nil)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, ident.Year(2021), boards[0].Year())
	assert.Equal(t, ident.Year(2024), boards[1].Year())
}

func TestLoadAllFiltersYears(t *testing.T) {
	src := &fakeSource{boards: map[ident.Year]string{
		2021: tinyTable,
		2024: tinyTable,
	}}

	terms, err := ident.ParseTerms([]string{"y24"})
	require.NoError(t, err)

	boards, err := LoadAll(src, terms)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, ident.Year(2024), boards[0].Year())
}

func TestLoadAllOmitsEmptyBoards(t *testing.T) {
	empty := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n"

	src := &fakeSource{boards: map[ident.Year]string{2021: empty}}

	boards, err := LoadAll(src, nil)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestLoadAllPropagatesErrors(t *testing.T) {
	src := &fakeSource{err: errors.New("disk trouble")}
	_, err := LoadAll(src, nil)
	assert.ErrorIs(t, err, src.err)
}

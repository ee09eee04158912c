package leaderboard

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/ident"
)

func roundtrip(t *testing.T, input string) *Board {
	t.Helper()
	board, err := Parse(2021, nil, input)
	require.NoError(t, err)
	return board
}

func TestRoundtripEmptyStats(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n"

	assert.Nil(t, roundtrip(t, input))
}

func TestRoundtripSingleDayHasNoTotals(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n"

	expected := "" +
		"Advent of Code 2021 - Personal Leaderboard Statistics\n" +
		"\n" +
		"      -------Part 1--------   -------Part 2--------\n" +
		"Day       Time  Rank  Score       Time  Rank  Score\n" +
		"  1   00:20:32  6893      0   00:24:50  5662      0\n"

	board := roundtrip(t, input)
	require.NotNil(t, board)
	assert.Nil(t, board.Totals())
	assert.Equal(t, expected, board.String())
}

func TestRoundtripEmptyPart2(t *testing.T) {
	input := "" +
		"      --------Part 1---------   -------Part 2--------\n" +
		"Day       Time    Rank  Score       Time  Rank  Score\n" +
		"  2       >24h  187123      0          -     -      -\n" +
		"  1   00:20:32    6893      0          -     -      -\n"

	expected := "" +
		"Advent of Code 2021 - Personal Leaderboard Statistics\n" +
		"\n" +
		"      --------Part 1---------   -------Part 2--------\n" +
		"Day       Time    Rank  Score       Time  Rank  Score\n" +
		"  2       >24h  187123      0          -     -      -\n" +
		"  1   00:20:32    6893      0          -     -      -\n" +
		"-----------------------------------------------------\n" +
		"MIN   00:20:32    6893      0          -     -      -\n" +
		"MED       >24h   97008      0          -     -      -\n" +
		"MAX       >24h  187123      0          -     -      -\n"

	board := roundtrip(t, input)
	require.NotNil(t, board)
	require.NotNil(t, board.Totals())
	assert.Equal(t, expected, board.String())
}

func TestRenderGolden(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  3   00:05:00     12     50   01:10:09    999      3\n" +
		"  2       >24h  187123      0          -     -      -\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n"

	board := roundtrip(t, input)
	require.NotNil(t, board)

	g := goldie.New(t)
	g.Assert(t, "board", []byte(board.String()))
}

func TestParseFailsWhenHeader1IsMissing(t *testing.T) {
	input := "" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n"

	_, err := Parse(2021, nil, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, "first line of the table header")
}

func TestParseFailsWhenHeader2IsMissing(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n"

	_, err := Parse(2021, nil, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, "second line of the table header")
}

func TestParseFailsOnInvalidDayLabel(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  0   00:00:00      1      0   00:00:00      1      0\n"

	_, err := Parse(2021, nil, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, "row label")
}

func TestParseFailsOnPartiallyDashedCells(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  1   00:20:32      -      0   00:24:50   5662      0\n"

	_, err := Parse(2021, nil, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid cells")
}

func TestParseFiltersDayRows(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  2   01:00:00    100      0   02:00:00    200      0\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n"

	terms, err := ident.ParseTerms([]string{"y21d02"})
	require.NoError(t, err)

	board, err := Parse(2021, terms, input)
	require.NoError(t, err)
	require.NotNil(t, board)
	require.Len(t, board.Days(), 1)
	assert.Equal(t, ident.Day(2), board.Days()[0].Day)
	assert.Nil(t, board.Totals(), "a single remaining row has no totals")

	// A filter for another year drops every row.
	other, err := ident.ParseTerms([]string{"y24"})
	require.NoError(t, err)
	board, err = Parse(2021, other, input)
	require.NoError(t, err)
	assert.Nil(t, board)
}

func TestTotalsComputePerColumn(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  1   00:10:00    300      0   00:30:00      7      0\n" +
		"  2   00:20:00    100      0          -     -      -\n" +
		"  3   00:30:00    200      0          -     -      -\n"

	board := roundtrip(t, input)
	require.NotNil(t, board)
	totals := board.Totals()
	require.NotNil(t, totals)

	min, med, max := totals.Rows[0], totals.Rows[1], totals.Rows[2]
	assert.Equal(t, "MIN", min.Label)
	assert.Equal(t, "MED", med.Label)
	assert.Equal(t, "MAX", max.Label)

	// Columns reduce independently: the median time and the median rank
	// may come from different days.
	require.NotNil(t, med.Parts[0])
	assert.Equal(t, "00:20:00", med.Parts[0].Time.String())
	assert.Equal(t, Rank(200), med.Parts[0].Rank)

	// Part 2 has one solved day; its totals all repeat that day.
	require.NotNil(t, max.Parts[1])
	assert.Equal(t, Rank(7), max.Parts[1].Rank)
	assert.Equal(t, "00:30:00", min.Parts[1].Time.String())
}

func TestParseToleratesTrailingBlankLines(t *testing.T) {
	input := "" +
		"      --------Part 1--------   --------Part 2--------\n" +
		"Day       Time   Rank  Score       Time   Rank  Score\n" +
		"  1   00:20:32   6893      0   00:24:50   5662      0\n" +
		"\n\n"

	board := roundtrip(t, input)
	require.NotNil(t, board)
	assert.Len(t, board.Days(), 1)
}

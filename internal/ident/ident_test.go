package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYearBounds(t *testing.T) {
	for _, y := range []int{2015, 2021, 2099} {
		got, err := NewYear(y)
		require.NoError(t, err)
		assert.Equal(t, Year(y), got)
	}
	for _, y := range []int{0, 1999, 2014, 2100} {
		_, err := NewYear(y)
		assert.Error(t, err, "year %d", y)
	}
}

func TestNewDayBounds(t *testing.T) {
	for _, d := range []int{1, 25} {
		got, err := NewDay(d)
		require.NoError(t, err)
		assert.Equal(t, Day(d), got)
	}
	for _, d := range []int{0, 26, -1} {
		_, err := NewDay(d)
		assert.Error(t, err, "day %d", d)
	}
}

func TestNewPartBounds(t *testing.T) {
	p1, err := NewPart(1)
	require.NoError(t, err)
	assert.Equal(t, Part1, p1)

	p2, err := NewPart(2)
	require.NoError(t, err)
	assert.Equal(t, Part2, p2)

	for _, p := range []int{0, 3} {
		_, err := NewPart(p)
		assert.Error(t, err, "part %d", p)
	}
}

func TestStringForms(t *testing.T) {
	assert.Equal(t, "y21", Year(2021).String())
	assert.Equal(t, "y15", Year(2015).String())
	assert.Equal(t, "d01", Day(1).String())
	assert.Equal(t, "d25", Day(25).String())
	assert.Equal(t, "p2", Part2.String())

	id := ID{Year: 2021, Day: 1, Part: Part2}
	assert.Equal(t, "y21d01p2", id.String())
	assert.Equal(t, "y21d01", id.YearDay().String())
}

func TestIDCompare(t *testing.T) {
	ordered := []ID{
		{Year: 2021, Day: 1, Part: Part1},
		{Year: 2021, Day: 1, Part: Part2},
		{Year: 2021, Day: 2, Part: Part1},
		{Year: 2024, Day: 1, Part: Part1},
	}
	for i := 1; i < len(ordered); i++ {
		assert.Negative(t, ordered[i-1].Compare(ordered[i]))
		assert.Positive(t, ordered[i].Compare(ordered[i-1]))
	}
	assert.Zero(t, ordered[0].Compare(ordered[0]))
}

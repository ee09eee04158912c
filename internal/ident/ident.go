// Package ident models puzzle identity: the (year, day, part) key that
// names one unit of work, and the filter grammar users type on the
// command line to select subsets of the catalog.
//
// Identifiers render in a compact fixed form: `y21` for 2021, `d01` for
// day 1, `p2` for part 2, composing to `y21d01p2`. All types here are
// small comparable values; the total order is year, then day, then part.
package ident

import (
	"fmt"
)

// Year of an Advent of Code event, such as 2021.
type Year uint16

// Day of an Advent of Code event, in the range 1..=25.
type Day uint8

// Part is either the first or the second half of a day's puzzle.
type Part uint8

const (
	Part1 Part = 1
	Part2 Part = 2
)

// NewYear validates a four-digit year. The range is deliberately wider
// than any registered puzzle; resolution against the registry decides
// what actually exists.
func NewYear(y int) (Year, error) {
	if y < 2015 || y > 2099 {
		return 0, fmt.Errorf("year %d is out of range [2015,2099]", y)
	}
	return Year(y), nil
}

// NewDay validates a day number.
func NewDay(d int) (Day, error) {
	if d < 1 || d > 25 {
		return 0, fmt.Errorf("day %d is out of range [1,25]", d)
	}
	return Day(d), nil
}

// NewPart validates a part number.
func NewPart(p int) (Part, error) {
	if p != 1 && p != 2 {
		return 0, fmt.Errorf("puzzle part %d is out of range [1,2]", p)
	}
	return Part(p), nil
}

func (y Year) String() string { return fmt.Sprintf("y%02d", int(y)%100) }
func (d Day) String() string  { return fmt.Sprintf("d%02d", int(d)) }
func (p Part) String() string { return fmt.Sprintf("p%d", int(p)) }

// ID uniquely identifies one puzzle part, e.g. y21d01p2.
type ID struct {
	Year Year
	Day  Day
	Part Part
}

func (id ID) String() string {
	return id.Year.String() + id.Day.String() + id.Part.String()
}

// YearDay is the grouping key shared by both parts of one day. Prep
// execution and input fetching are keyed by it.
type YearDay struct {
	Year Year
	Day  Day
}

func (yd YearDay) String() string {
	return yd.Year.String() + yd.Day.String()
}

func (id ID) YearDay() YearDay { return YearDay{Year: id.Year, Day: id.Day} }

// Compare orders IDs by year, then day, then part.
func (id ID) Compare(other ID) int {
	if c := compare(uint16(id.Year), uint16(other.Year)); c != 0 {
		return c
	}
	if c := compare(uint16(id.Day), uint16(other.Day)); c != 0 {
		return c
	}
	return compare(uint16(id.Part), uint16(other.Part))
}

func compare(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

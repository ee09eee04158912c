// Package leaderboard parses the "Personal Leaderboard Statistics"
// tables copied from adventofcode.com, aggregates them, and renders
// them back in the site's fixed-width layout with MIN/MED/MAX summary
// rows appended.
package leaderboard

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"aoc/internal/ident"
)

var (
	headerRow1Pattern = regexp.MustCompile(`---Part 1---[\-]*\s+[\-]*---Part 2---`)
	headerRow2Pattern = regexp.MustCompile(`Day(\s+Time\s+Rank\s+Score){2}`)
)

// Row is one table line: a label column and one optional cell triple
// per puzzle part. A nil part means "- - -", the not-yet-solved marker.
type Row struct {
	Label string
	Parts [2]*Stats
}

// Totals holds the MIN, MED and MAX summary rows, in that order.
type Totals struct {
	Rows [3]Row
}

// Board is one year's parsed leaderboard table.
type Board struct {
	year   ident.Year
	days   []DayRow
	totals *Totals
	widths widths
}

// DayRow pairs a day number with its two part cells.
type DayRow struct {
	Day   ident.Day
	Parts [2]*Stats
}

// New assembles a board from day rows, keeping their original order.
// It returns nil when no rows are left; summary rows are only computed
// when there are at least two, a single day would repeat itself three
// times.
func New(year ident.Year, days []DayRow) *Board {
	if len(days) == 0 {
		return nil
	}

	b := &Board{year: year, days: days}
	if len(days) >= 2 {
		b.totals = computeTotals(days)
	}
	b.widths = computeWidths(days)
	return b
}

func (b *Board) Year() ident.Year { return b.year }
func (b *Board) Days() []DayRow   { return b.days }
func (b *Board) Totals() *Totals  { return b.totals }

// Parse reads one year's table as copied from the website. The two
// header rows are mandatory; day rows not selected by the filter terms
// are dropped. Returns nil when no day rows remain.
func Parse(year ident.Year, terms []ident.Term, text string) (*Board, error) {
	lines := splitLines(text)

	if len(lines) < 2 {
		return nil, fmt.Errorf("failed to parse %s leaderboard: missing table header", year)
	}
	if !headerRow1Pattern.MatchString(lines[0]) {
		return nil, fmt.Errorf(
			"failed to parse %s leaderboard: not the first line of the table header: %q",
			year, lines[0])
	}
	if !headerRow2Pattern.MatchString(lines[1]) {
		return nil, fmt.Errorf(
			"failed to parse %s leaderboard: not the second line of the table header: %q",
			year, lines[1])
	}

	var days []DayRow
	for _, line := range lines[2:] {
		row, err := parseDayRow(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s leaderboard: %w", year, err)
		}
		if ident.MatchesAnyYearDay(terms, year, row.Day) {
			days = append(days, row)
		}
	}

	return New(year, days), nil
}

func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseDayRow(line string) (DayRow, error) {
	cols := strings.Fields(line)
	if len(cols) != 7 {
		return DayRow{}, fmt.Errorf("failed to tokenize table row: %q", line)
	}

	n, err := strconv.Atoi(cols[0])
	if err != nil {
		return DayRow{}, fmt.Errorf("failed to parse row label %q", cols[0])
	}
	day, err := ident.NewDay(n)
	if err != nil {
		return DayRow{}, fmt.Errorf("failed to parse row label %q: %w", cols[0], err)
	}

	row := DayRow{Day: day}
	for part := 0; part < 2; part++ {
		stats, err := parsePartCols(cols[1+part*3], cols[2+part*3], cols[3+part*3])
		if err != nil {
			return DayRow{}, err
		}
		row.Parts[part] = stats
	}
	return row, nil
}

// parsePartCols parses one part's cell triple; "- - -" means the part
// is unsolved. A partially dashed triple is malformed.
func parsePartCols(timeCol, rankCol, scoreCol string) (*Stats, error) {
	dashes := 0
	for _, col := range []string{timeCol, rankCol, scoreCol} {
		if col == "-" {
			dashes++
		}
	}
	switch dashes {
	case 3:
		return nil, nil
	case 0:
		stats, err := parseStats(timeCol, rankCol, scoreCol)
		if err != nil {
			return nil, err
		}
		return &stats, nil
	default:
		return nil, fmt.Errorf(
			"invalid cells: %q %q %q must all be '-' or none", timeCol, rankCol, scoreCol)
	}
}

// computeTotals reduces each column (time, rank, score, per part)
// independently to its minimum, median and maximum. A part with no
// solved days keeps dashed summary cells.
func computeTotals(days []DayRow) *Totals {
	labels := [3]string{"MIN", "MED", "MAX"}

	var perPart [2][3]*Stats
	for part := 0; part < 2; part++ {
		var times []Time
		var ranks []Rank
		var scores []Score
		for _, row := range days {
			if s := row.Parts[part]; s != nil {
				times = append(times, s.Time)
				ranks = append(ranks, s.Rank)
				scores = append(scores, s.Score)
			}
		}
		if len(times) == 0 {
			continue
		}

		sort.Slice(times, func(i, j int) bool { return times[i].Less(times[j]) })
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
		sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })

		tMin, tMed, tMax := minMedMax(times)
		rMin, rMed, rMax := minMedMax(ranks)
		sMin, sMed, sMax := minMedMax(scores)

		perPart[part] = [3]*Stats{
			{Time: tMin, Rank: rMin, Score: sMin},
			{Time: tMed, Rank: rMed, Score: sMed},
			{Time: tMax, Rank: rMax, Score: sMax},
		}
	}

	var totals Totals
	for i, label := range labels {
		totals.Rows[i] = Row{
			Label: label,
			Parts: [2]*Stats{perPart[0][i], perPart[1][i]},
		}
	}
	return &totals
}

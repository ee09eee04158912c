package leaderboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time is one completion-time cell: either an exact duration below 24
// hours, or the site's ">24h" marker.
type Time struct {
	seconds int64
	forever bool
}

// Forever is the ">24h" marker. It dominates averages and sorts after
// every exact time.
var Forever = Time{forever: true}

func TimeOf(d time.Duration) Time { return Time{seconds: int64(d / time.Second)} }

func ParseTime(text string) (Time, error) {
	if text == ">24h" {
		return Forever, nil
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("invalid time: %q does not match pattern hh:mm:ss", text)
	}

	var hms [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return Time{}, fmt.Errorf("invalid time %q: %q is not a number", text, p)
		}
		hms[i] = n
	}
	if hms[1] >= 60 {
		return Time{}, fmt.Errorf("invalid time %q: minutes not in range 00..60", text)
	}
	if hms[2] >= 60 {
		return Time{}, fmt.Errorf("invalid time %q: seconds not in range 00..60", text)
	}

	return Time{seconds: hms[0]*3600 + hms[1]*60 + hms[2]}, nil
}

func (t Time) String() string {
	if t.forever {
		return ">24h"
	}
	h := t.seconds / 3600
	m := t.seconds % 3600 / 60
	s := t.seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Less orders exact times by duration; Forever sorts last.
func (t Time) Less(o Time) bool {
	if t.forever {
		return false
	}
	if o.forever {
		return true
	}
	return t.seconds < o.seconds
}

// Mean is the ceiling average of the two times; Forever dominates.
func (t Time) Mean(o Time) Time {
	if t.forever || o.forever {
		return Forever
	}
	return Time{seconds: averageCeil(t.seconds, o.seconds)}
}

// Rank is one leaderboard-rank cell; ranks start at 1.
type Rank uint32

func ParseRank(text string) (Rank, error) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid rank: %q", text)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid rank: must be greater than zero")
	}
	return Rank(n), nil
}

func (r Rank) String() string { return strconv.FormatUint(uint64(r), 10) }

// Mean is the ceiling average: an in-between rank rounds to the worse one.
func (r Rank) Mean(o Rank) Rank { return averageCeil(r, o) }

// Score is one leaderboard-score cell.
type Score uint16

func ParseScore(text string) (Score, error) {
	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid score: %q", text)
	}
	return Score(n), nil
}

func (s Score) String() string { return strconv.FormatUint(uint64(s), 10) }

// Mean is the floor average: an in-between score rounds to the worse one.
func (s Score) Mean(o Score) Score { return averageFloor(s, o) }

// Stats is one part's cell triple on a leaderboard row.
type Stats struct {
	Time  Time
	Rank  Rank
	Score Score
}

func parseStats(timeCol, rankCol, scoreCol string) (Stats, error) {
	t, err := ParseTime(timeCol)
	if err != nil {
		return Stats{}, err
	}
	r, err := ParseRank(rankCol)
	if err != nil {
		return Stats{}, err
	}
	s, err := ParseScore(scoreCol)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Time: t, Rank: r, Score: s}, nil
}

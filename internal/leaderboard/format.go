package leaderboard

import (
	"fmt"
	"strings"
)

const (
	labelWidth    = len("Day")
	timeWidth     = len("00:00:00")
	rankWidthMin  = len("Rank")
	scoreWidthMin = len("Score")
)

// widths carries the computed column widths so cells line up no matter
// how many digits the largest rank or score has. Only day rows count;
// summary cells are averages of day cells and never wider.
type widths struct {
	parts [2]columnWidths
	total int
}

type columnWidths struct {
	rank  int
	score int
	total int
}

func computeWidths(days []DayRow) widths {
	var w widths
	for part := 0; part < 2; part++ {
		rank, score := rankWidthMin, scoreWidthMin
		for _, row := range days {
			if s := row.Parts[part]; s != nil {
				rank = max(rank, len(s.Rank.String()))
				score = max(score, len(s.Score.String()))
			}
		}
		w.parts[part] = columnWidths{
			rank:  rank,
			score: score,
			total: timeWidth + 2 + rank + 2 + score,
		}
	}
	w.total = labelWidth + 3 + w.parts[0].total + 3 + w.parts[1].total
	return w
}

// String renders the board the way the website lays it out, preceded
// by a title line and followed by the summary block when present.
func (b *Board) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Advent of Code %d - Personal Leaderboard Statistics\n\n", int(b.year))

	sb.WriteString("   ")
	for part := 0; part < 2; part++ {
		sb.WriteString("   ")
		sb.WriteString(centerDashed(fmt.Sprintf("Part %d", part+1), b.widths.parts[part].total))
	}
	sb.WriteByte('\n')

	sb.WriteString("Day")
	for part := 0; part < 2; part++ {
		w := b.widths.parts[part]
		fmt.Fprintf(&sb, "   %8s  %*s  %*s", "Time", w.rank, "Rank", w.score, "Score")
	}
	sb.WriteByte('\n')

	for _, row := range b.days {
		b.writeRow(&sb, fmt.Sprintf("%3d", int(row.Day)), row.Parts)
	}

	if b.totals != nil {
		sb.WriteString(strings.Repeat("-", b.widths.total))
		sb.WriteByte('\n')
		for _, row := range b.totals.Rows {
			b.writeRow(&sb, row.Label, row.Parts)
		}
	}

	return sb.String()
}

func (b *Board) writeRow(sb *strings.Builder, label string, parts [2]*Stats) {
	fmt.Fprintf(sb, "%3s", label)
	for part := 0; part < 2; part++ {
		w := b.widths.parts[part]
		if s := parts[part]; s != nil {
			fmt.Fprintf(sb, "   %8s  %*s  %*s", s.Time, w.rank, s.Rank.String(), w.score, s.Score.String())
		} else {
			fmt.Fprintf(sb, "   %8s  %*s  %*s", "-", w.rank, "-", w.score, "-")
		}
	}
	sb.WriteByte('\n')
}

// centerDashed pads text to width with '-' on both sides, the extra
// dash going right when the padding is odd.
func centerDashed(text string, width int) string {
	pad := width - len(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat("-", left) + text + strings.Repeat("-", pad-left)
}

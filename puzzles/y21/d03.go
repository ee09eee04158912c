package y21

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Binary Diagnostic. Prep splits the report into its binary lines;
// both parts work on the same list.

func prepD03(input string) (any, error) {
	lines := strings.Fields(input)
	if len(lines) == 0 {
		return nil, errors.New("diagnostic report is empty")
	}
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("line %q has %d digits, want %d", line, len(line), width)
		}
		for _, ch := range line {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("bad digit %q in %q", ch, line)
			}
		}
	}
	return lines, nil
}

func solveD03P1(_ string, data any) (string, error) {
	lines := data.([]string)
	width := len(lines[0])

	var bits strings.Builder
	for pos := 0; pos < width; pos++ {
		ones := countOnes(lines, pos)
		if ones > len(lines)/2 {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}

	gamma, err := strconv.ParseInt(bits.String(), 2, 64)
	if err != nil {
		return "", err
	}
	epsilon := int64(1)<<width - 1 - gamma
	return strconv.FormatInt(gamma*epsilon, 10), nil
}

func solveD03P2(_ string, data any) (string, error) {
	lines := data.([]string)

	oxyBits, err := reduceByBitCriteria(lines, true)
	if err != nil {
		return "", err
	}
	co2Bits, err := reduceByBitCriteria(lines, false)
	if err != nil {
		return "", err
	}

	oxy, err := strconv.ParseInt(oxyBits, 2, 64)
	if err != nil {
		return "", err
	}
	co2, err := strconv.ParseInt(co2Bits, 2, 64)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(oxy*co2, 10), nil
}

func countOnes(lines []string, pos int) int {
	ones := 0
	for _, line := range lines {
		if line[pos] == '1' {
			ones++
		}
	}
	return ones
}

// reduceByBitCriteria repeatedly keeps the numbers whose digit at the
// current position is the most (or least) common one, until a single
// number remains. Ties keep '1' for most common and '0' for least.
func reduceByBitCriteria(lines []string, keepMostCommon bool) (string, error) {
	remaining := make([]string, len(lines))
	copy(remaining, lines)

	for pos := 0; pos < len(lines[0]) && len(remaining) > 1; pos++ {
		ones := countOnes(remaining, pos)
		zeroes := len(remaining) - ones

		var keep byte
		if (zeroes <= ones) == keepMostCommon {
			keep = '1'
		} else {
			keep = '0'
		}

		kept := remaining[:0]
		for _, line := range remaining {
			if line[pos] == keep {
				kept = append(kept, line)
			}
		}
		remaining = kept
	}

	if len(remaining) != 1 {
		return "", fmt.Errorf("bit criteria left %d numbers, want exactly one", len(remaining))
	}
	return remaining[0], nil
}

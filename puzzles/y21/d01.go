package y21

import (
	"fmt"
	"strconv"
	"strings"
)

// Sonar Sweep. Prep parses the depth report once for both parts.

func prepD01(input string) (any, error) {
	var depths []int
	for _, line := range strings.Fields(input) {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("invalid depth %q: %w", line, err)
		}
		depths = append(depths, n)
	}
	return depths, nil
}

func solveD01P1(_ string, data any) (string, error) {
	depths := data.([]int)
	return strconv.Itoa(countIncreases(depths, 1)), nil
}

func solveD01P2(_ string, data any) (string, error) {
	depths := data.([]int)
	return strconv.Itoa(countIncreases(depths, 3)), nil
}

// countIncreases counts how often the sum of a sliding window grows
// when the window moves one step. Comparing window sums of size n is
// the same as comparing the elements n apart.
func countIncreases(depths []int, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}

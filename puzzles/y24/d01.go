package y24

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Historian Hysteria. Prep splits the two location ID columns once.

type locationLists struct {
	left  []int
	right []int
}

func prepD01(input string) (any, error) {
	var lists locationLists
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) != 2 {
			return nil, fmt.Errorf("line %q has %d columns, want 2", line, len(cols))
		}
		l, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, fmt.Errorf("invalid location ID %q: %w", cols[0], err)
		}
		r, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("invalid location ID %q: %w", cols[1], err)
		}
		lists.left = append(lists.left, l)
		lists.right = append(lists.right, r)
	}
	return lists, nil
}

func solveD01P1(_ string, data any) (string, error) {
	lists := data.(locationLists)

	left := append([]int(nil), lists.left...)
	right := append([]int(nil), lists.right...)
	sort.Ints(left)
	sort.Ints(right)

	sum := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return strconv.Itoa(sum), nil
}

func solveD01P2(_ string, data any) (string, error) {
	lists := data.(locationLists)

	counts := make(map[int]int, len(lists.right))
	for _, r := range lists.right {
		counts[r]++
	}

	sum := 0
	for _, l := range lists.left {
		sum += l * counts[l]
	}
	return strconv.Itoa(sum), nil
}

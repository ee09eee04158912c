package leaderboard

import "golang.org/x/exp/constraints"

// averageCeil rounds an in-between average away from zero. The operands
// here are small enough that the sum cannot overflow.
func averageCeil[T constraints.Integer](a, b T) T {
	return (a + b + 1) / 2
}

func averageFloor[T constraints.Integer](a, b T) T {
	return (a + b) / 2
}

// minMedMax reduces a sorted, non-empty slice to its minimum, median and
// maximum. The median of an even-sized slice is the mean of the two
// middle elements.
func minMedMax[T interface{ Mean(T) T }](sorted []T) (min, med, max T) {
	n := len(sorted)
	min = sorted[0]
	max = sorted[n-1]
	if n%2 == 1 {
		med = sorted[n/2]
	} else {
		med = sorted[n/2-1].Mean(sorted[n/2])
	}
	return min, med, max
}

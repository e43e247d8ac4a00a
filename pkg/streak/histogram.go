package streak

import "sort"

// Histogram maps a streak length to the number of times a streak of that
// length occurred. Lengths which never occurred are absent and count zero.
type Histogram map[int]int

// Count returns the number of streaks of the given length.
func (h Histogram) Count(length int) int {
	return h[length]
}

// Add records n more streaks of the given length.
func (h Histogram) Add(length, n int) {
	if n == 0 {
		return
	}

	h[length] += n
}

// Merge adds every count of other into h.
func (h Histogram) Merge(other Histogram) {
	for length, n := range other {
		h.Add(length, n)
	}
}

// Max returns the longest streak length in the histogram, or 0 if it is
// empty.
func (h Histogram) Max() int {
	longest := 0
	for length := range h {
		if length > longest {
			longest = length
		}
	}

	return longest
}

// Total returns the number of streaks in the histogram.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}

	return total
}

// Lengths returns the streak lengths present in the histogram in
// increasing order.
func (h Histogram) Lengths() []int {
	lengths := make([]int, 0, len(h))
	for length := range h {
		lengths = append(lengths, length)
	}

	sort.Ints(lengths)
	return lengths
}

// Clone returns a copy of h which shares no storage with it.
func (h Histogram) Clone() Histogram {
	clone := make(Histogram, len(h))
	clone.Merge(h)
	return clone
}

// Merge returns the pointwise sum of the given histograms. Merging nothing
// returns an empty histogram.
func Merge(histograms ...Histogram) Histogram {
	merged := make(Histogram)
	for _, h := range histograms {
		merged.Merge(h)
	}

	return merged
}

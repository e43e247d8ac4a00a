package elo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedSumsToOne(t *testing.T) {
	for white := Rating(0); white <= 3400; white += 37 {
		for black := Rating(0); black <= 3400; black += 41 {
			e := Expected(white, black)
			assert.InDelta(t, 1.0, e.Sum(), 1e-9, "%d vs %d", white, black)

			assert.GreaterOrEqual(t, e.White, 0.0)
			assert.GreaterOrEqual(t, e.Black, 0.0)
			assert.GreaterOrEqual(t, e.Draw, 0.0)
		}
	}
}

func TestExpectedEqualRatings(t *testing.T) {
	for _, r := range []Rating{0, 1200, 2850} {
		e := Expected(r, r)
		assert.InDelta(t, e.White, e.Black, 1e-12)
		assert.Equal(t, MaxDrawProbability, e.Draw)
		assert.InDelta(t, 0.41, e.White, 1e-12)
	}
}

func TestExpectedExtremeGap(t *testing.T) {
	e := Expected(4000, 0)
	assert.InDelta(t, 1.0, e.Sum(), 1e-9)
	assert.Greater(t, e.White, 0.99)
	assert.Less(t, e.Draw, 0.001)
}

func TestWinProbabilityMonotonic(t *testing.T) {
	const black = 1500

	prev := WinProbability(0, black)
	for white := Rating(10); white <= 3000; white += 10 {
		p := WinProbability(white, black)
		assert.Greater(t, p, prev, "white %d", white)
		prev = p
	}
}

func TestExpectedMonotonic(t *testing.T) {
	const black = 1500

	// Above black's rating both white's raw expectation and the non-draw
	// mass grow with white's rating.
	prev := Expected(black, black)
	for white := Rating(black + 1); white <= 3000; white += 7 {
		e := Expected(white, black)
		assert.Greater(t, e.White, prev.White, "white %d", white)
		prev = e
	}

	// Below it, black's expectation and the non-draw mass both shrink as
	// white's rating closes the gap.
	prev = Expected(0, black)
	for white := Rating(5); white <= black; white += 5 {
		e := Expected(white, black)
		assert.Less(t, e.Black, prev.Black, "white %d", white)
		prev = e
	}
}

func TestDrawProbabilityDecaysWithGap(t *testing.T) {
	prev := DrawProbability(2000, 2000)
	for gap := Rating(1); gap <= 1000; gap++ {
		above := DrawProbability(2000+gap, 2000)
		below := DrawProbability(2000-gap, 2000)

		assert.Equal(t, above, below)
		assert.LessOrEqual(t, above, prev)
		prev = above
	}
}

func TestParseRating(t *testing.T) {
	r, err := ParseRating("2875")
	require.NoError(t, err)
	assert.Equal(t, Rating(2875), r)

	for _, bad := range []string{"", "-5", "12a", "1500.5", "?"} {
		_, err := ParseRating(bad)
		assert.Error(t, err, bad)
	}
}

func TestPerformance(t *testing.T) {
	lower, elo, upper := Performance(0, 0, 0)
	assert.Zero(t, lower)
	assert.Zero(t, elo)
	assert.Zero(t, upper)

	lower, elo, upper = Performance(10, 10, 10)
	assert.InDelta(t, 0, elo, 1e-9)
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)
	assert.InDelta(t, -lower, upper, 1e-9)

	_, elo, _ = Performance(30, 10, 10)
	assert.Greater(t, elo, 0.0)

	_, elo, _ = Performance(5, 0, 0)
	assert.False(t, math.IsNaN(elo))
	assert.Greater(t, elo, 1000.0)
}

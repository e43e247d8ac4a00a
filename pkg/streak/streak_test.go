package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/streak/pkg/match"
)

const player = "Hikaru"

// series builds games of player against alternating opponents and colors
// from a string of results: W for a win, L for a loss, D for a draw.
func series(results string) []match.Game {
	games := make([]match.Game, len(results))
	for i, r := range results {
		hikaru := match.Player{Name: player, Rating: 2800}
		other := match.Player{Name: "opponent", Rating: 2600}

		var outcome match.Outcome
		switch r {
		case 'W':
			outcome = match.WhiteWin
		case 'L':
			outcome = match.BlackWin
		case 'D':
			outcome = match.Draw
		}

		if i%2 == 0 {
			games[i] = match.Game{White: hikaru, Black: other, Outcome: outcome}
			continue
		}

		// Swap colors, and the winning side with them.
		switch outcome {
		case match.WhiteWin:
			outcome = match.BlackWin
		case match.BlackWin:
			outcome = match.WhiteWin
		}
		games[i] = match.Game{White: other, Black: hikaru, Outcome: outcome}
	}

	return games
}

func TestWinStreaks(t *testing.T) {
	tests := []struct {
		results string
		want    Histogram
	}{
		{"WWLWDWWW", Histogram{2: 1, 3: 1}},
		{"", Histogram{}},
		{"LLDDL", Histogram{}},
		{"WWWWW", Histogram{5: 1}},
		{"WDWDW", Histogram{1: 3}},
		{"DWWLWWLW", Histogram{1: 1, 2: 2}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, WinStreaks(series(test.results), player), test.results)
	}
}

func TestLongest(t *testing.T) {
	assert.Equal(t, 3, Longest(series("WWLWDWWW"), player))
	assert.Equal(t, 0, Longest(series("LD"), player))
	assert.Equal(t, 0, Longest(nil, player))
}

func TestWinStreaksPanicsOnForeignGame(t *testing.T) {
	games := series("WW")
	games = append(games, match.Game{
		White:   match.Player{Name: "Magnus"},
		Black:   match.Player{Name: "Fabiano"},
		Outcome: match.WhiteWin,
	})

	assert.Panics(t, func() { WinStreaks(games, player) })
}

func TestWinStreaksLenientSkipsForeignGames(t *testing.T) {
	foreign := match.Game{
		White:   match.Player{Name: "Magnus"},
		Black:   match.Player{Name: "Fabiano"},
		Outcome: match.BlackWin,
	}

	games := series("WW")
	games = append(games, foreign)
	games = append(games, series("W")...)

	assert.Equal(t, Histogram{3: 1}, WinStreaksLenient(games, player))
}

func TestHistogramCount(t *testing.T) {
	h := Histogram{2: 4}
	assert.Equal(t, 4, h.Count(2))
	assert.Equal(t, 0, h.Count(1))
	assert.Equal(t, 0, Histogram(nil).Count(3))
}

func TestMergeCommutes(t *testing.T) {
	a := Histogram{1: 2, 3: 1}
	b := Histogram{1: 1, 2: 5}
	want := Histogram{1: 3, 2: 5, 3: 1}

	assert.Equal(t, want, Merge(a, b))
	assert.Equal(t, want, Merge(b, a))

	// the inputs are left untouched
	assert.Equal(t, Histogram{1: 2, 3: 1}, a)
	assert.Equal(t, Histogram{1: 1, 2: 5}, b)
}

func TestMergeAssociates(t *testing.T) {
	a := Histogram{1: 2, 3: 1}
	b := Histogram{1: 1, 2: 5}
	c := Histogram{3: 4, 7: 1}

	assert.Equal(t, Merge(Merge(a, b), c), Merge(a, Merge(b, c)))
}

func TestMergeIdentity(t *testing.T) {
	assert.Equal(t, Histogram{}, Merge())
	assert.Equal(t, Histogram{4: 2}, Merge(Histogram{4: 2}, Histogram{}))
}

func TestHistogramAccessors(t *testing.T) {
	h := Histogram{5: 1, 1: 7, 3: 2}

	assert.Equal(t, 5, h.Max())
	assert.Equal(t, 10, h.Total())
	assert.Equal(t, []int{1, 3, 5}, h.Lengths())
	assert.Equal(t, 0, Histogram{}.Max())

	clone := h.Clone()
	clone.Add(1, 1)
	assert.Equal(t, 7, h.Count(1))
	assert.Equal(t, 8, clone.Count(1))
}

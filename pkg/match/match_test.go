package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func game(white, black string, outcome Outcome) Game {
	return Game{
		White:   Player{Name: white, Rating: 1500},
		Black:   Player{Name: black, Rating: 1500},
		Outcome: outcome,
	}
}

func TestParseOutcome(t *testing.T) {
	for _, outcome := range []Outcome{WhiteWin, BlackWin, Draw} {
		parsed, ok := ParseOutcome(outcome.String())
		assert.True(t, ok)
		assert.Equal(t, outcome, parsed)
	}

	for _, text := range []string{"*", "", "1-1", "½-½"} {
		_, ok := ParseOutcome(text)
		assert.False(t, ok, text)
	}
}

func TestWinnerPanicsOnInvalidOutcome(t *testing.T) {
	assert.Panics(t, func() { Outcome(7).Winner() })
}

func TestWonBy(t *testing.T) {
	tests := []struct {
		game   Game
		player string
		won    bool
	}{
		{game("a", "b", WhiteWin), "a", true},
		{game("a", "b", WhiteWin), "b", false},
		{game("a", "b", BlackWin), "b", true},
		{game("a", "b", BlackWin), "a", false},
		{game("a", "b", Draw), "a", false},
		{game("a", "b", Draw), "b", false},
		{game("a", "b", WhiteWin), "c", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.won, test.game.WonBy(test.player), "%+v", test)
	}
}

func TestInvolvingAndRecord(t *testing.T) {
	games := []Game{
		game("a", "b", WhiteWin),
		game("c", "d", WhiteWin),
		game("b", "a", WhiteWin),
		game("a", "c", Draw),
	}

	played := Involving(games, "a")
	assert.Equal(t, []Game{games[0], games[2], games[3]}, played)

	ws, ds, ls := Record(games, "a")
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{ws, ds, ls})
}

func TestPlayers(t *testing.T) {
	games := []Game{
		game("player10", "player9", Draw),
		game("player9", "hikaru", Draw),
		game("hikaru", "player10", Draw),
		game("hikaru", "magnus", Draw),
	}

	assert.Equal(t, []PlayerCount{
		{Name: "hikaru", Games: 3},
		{Name: "player9", Games: 2},
		{Name: "player10", Games: 2},
		{Name: "magnus", Games: 1},
	}, Players(games))
}

// Package streak finds the winning streaks of a player in a series of
// games.
package streak

import (
	"fmt"

	"laptudirm.com/x/streak/pkg/match"
)

// WinStreaks returns the histogram of the named player's streaks of
// consecutive wins in the given games. A draw ends a streak just like a
// loss does.
//
// Every game must have been played by the named player: a game they did not
// play means the caller passed the wrong games, and WinStreaks panics.
func WinStreaks(games []match.Game, player string) Histogram {
	return scan(games, player, false)
}

// WinStreaksLenient is like WinStreaks but skips the games which the named
// player did not play, so that they neither extend nor end a streak.
func WinStreaksLenient(games []match.Game, player string) Histogram {
	return scan(games, player, true)
}

// Longest returns the length of the named player's longest winning streak
// in the given games, which must all involve the player.
func Longest(games []match.Game, player string) int {
	return WinStreaks(games, player).Max()
}

func scan(games []match.Game, player string, lenient bool) Histogram {
	histogram := make(Histogram)
	current := 0

	for i, game := range games {
		if _, played := game.Side(player); !played {
			if lenient {
				continue
			}

			panic(fmt.Sprintf(
				"streak: game #%d (%s vs %s) was not played by %s",
				i+1, game.White.Name, game.Black.Name, player,
			))
		}

		if game.WonBy(player) {
			current++
			continue
		}

		// lost or drew, record the streak and reset it
		if current > 0 {
			histogram.Add(current, 1)
			current = 0
		}
	}

	// the games ended on a winning streak
	if current > 0 {
		histogram.Add(current, 1)
	}

	return histogram
}

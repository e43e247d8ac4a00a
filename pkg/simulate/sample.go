// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package simulate replays a series of games with outcomes drawn from the
// Elo model of each pairing.
package simulate

import (
	"laptudirm.com/x/streak/pkg/elo"
	"laptudirm.com/x/streak/pkg/match"
)

// Source is a source of uniformly distributed numbers in [0, 1).
// A *rand.Rand is a Source.
type Source interface {
	Float64() float64
}

// Sample returns the outcome which the draw u in [0, 1) selects from the
// expected outcome. The unit interval is split, in order, into a white win,
// a black win, and a draw interval of the respective probabilities.
func Sample(e elo.ExpectedOutcome, u float64) match.Outcome {
	switch {
	case u < e.White:
		return match.WhiteWin
	case u < e.White+e.Black:
		return match.BlackWin
	default:
		return match.Draw
	}
}

// Series returns a simulated copy of the given games. Every simulated game
// has the same players and ratings as the real game at the same index and
// an outcome sampled from their ratings with one draw from src. The ratings
// are not updated between games.
func Series(games []match.Game, src Source) []match.Game {
	simulated := make([]match.Game, len(games))
	for i, game := range games {
		expected := elo.Expected(game.White.Rating, game.Black.Rating)

		simulated[i] = match.Game{
			White:   game.White,
			Black:   game.Black,
			Outcome: Sample(expected, src.Float64()),
		}
	}

	return simulated
}

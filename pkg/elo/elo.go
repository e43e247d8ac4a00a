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

package elo

import (
	"fmt"
	"math"
	"strconv"
)

// Rating is a player's Elo rating.
type Rating uint32

// ParseRating parses the decimal text of an Elo rating, as found in the
// WhiteElo and BlackElo tags of a PGN export.
func ParseRating(s string) (Rating, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse rating %q: %w", s, err)
	}

	return Rating(n), nil
}

// Draw model calibration. The draw probability peaks at MaxDrawProbability
// for evenly matched players and decays with the rating gap.
const (
	MaxDrawProbability = 0.18
	DrawSensitivity    = 0.05
)

// tolerance is the largest deviation from one the three outcome
// probabilities may sum to.
const tolerance = 1e-9

// ExpectedOutcome holds the probabilities of each result of a game.
type ExpectedOutcome struct {
	White float64 // white wins
	Black float64 // black wins
	Draw  float64
}

// Sum returns the total probability mass of the outcome, which is 1.
func (e ExpectedOutcome) Sum() float64 {
	return e.White + e.Black + e.Draw
}

// Expected returns the win, loss and draw probabilities of a game between
// players of the given ratings. It panics if the probabilities do not sum
// to one, which can only happen if the draw calibration is broken.
func Expected(white, black Rating) ExpectedOutcome {
	w := WinProbability(white, black)
	b := 1 - w

	d := DrawProbability(white, black)

	// make room for the draw mass
	e := ExpectedOutcome{
		White: w * (1 - d),
		Black: b * (1 - d),
		Draw:  d,
	}

	if math.Abs(e.Sum()-1) > tolerance {
		panic(fmt.Sprintf("elo: outcome probabilities for %d vs %d sum to %v", white, black, e.Sum()))
	}

	return e
}

// WinProbability is the standard Elo expectation of white against black,
// ignoring draws: E = 1 / (1 + 10^((black - white) / 400)).
func WinProbability(white, black Rating) float64 {
	return 1 / (1 + math.Pow(10, (float64(black)-float64(white))/400))
}

// DrawProbability estimates the chance of a draw from the rating gap.
func DrawProbability(white, black Rating) float64 {
	diff := math.Abs(float64(black) - float64(white))
	return MaxDrawProbability / (1 + DrawSensitivity*diff)
}

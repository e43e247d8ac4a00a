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

package match

import "laptudirm.com/x/streak/pkg/elo"

// Player is a participant of a game. Players are identified by name alone;
// the same player may carry a different rating in every game.
type Player struct {
	Name   string
	Rating elo.Rating
}

// Side is the color a player had in a game.
type Side int

const (
	White Side = iota
	Black
)

// Game is a single chess game, either played or simulated.
type Game struct {
	White Player
	Black Player

	Outcome Outcome
}

// Side returns the color the named player had in the game, and false if
// they did not take part in it.
func (game Game) Side(name string) (Side, bool) {
	switch name {
	case game.White.Name:
		return White, true
	case game.Black.Name:
		return Black, true
	default:
		return 0, false
	}
}

// WonBy reports whether the named player won the game.
func (game Game) WonBy(name string) bool {
	side, played := game.Side(name)
	if !played {
		return false
	}

	winner, decisive := game.Outcome.Winner()
	return decisive && winner == side
}

// Involving returns, in order, the games which the named player played.
func Involving(games []Game, name string) []Game {
	var played []Game
	for _, game := range games {
		if _, ok := game.Side(name); ok {
			played = append(played, game)
		}
	}

	return played
}

// Record returns the number of wins, draws, and losses of the named player
// in the given games. Games they did not play are ignored.
func Record(games []Game, name string) (ws, ds, ls int) {
	for _, game := range games {
		if _, ok := game.Side(name); !ok {
			continue
		}

		switch {
		case game.WonBy(name):
			ws++
		case game.Outcome == Draw:
			ds++
		default:
			ls++
		}
	}

	return ws, ds, ls
}

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

package pgn

import (
	"strings"

	"github.com/sirupsen/logrus"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/piece"
	"laptudirm.com/x/mess/pkg/formats/fen"

	"laptudirm.com/x/streak/pkg/match"
)

// Adjudicate returns the outcome of a game which ended in the given
// position, and false if the game isn't over in that position.
func Adjudicate(fenstr string) (outcome match.Outcome, over bool) {
	if len(strings.Fields(fenstr)) != 6 {
		return 0, false
	}

	// mess doesn't validate the positions it is given.
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("fen", fenstr).Debugf("adjudicate: %v", r)
			outcome, over = 0, false
		}
	}()

	chessboard := board.New(board.FEN(fen.FromString(fenstr)))
	moves := chessboard.GenerateMoves(false)

	switch {
	case len(moves) == 0:
		if !chessboard.IsInCheck(chessboard.SideToMove) {
			return match.Draw, true // Stalemate
		}

		// Checkmate
		if chessboard.SideToMove == piece.White {
			return match.BlackWin, true
		}
		return match.WhiteWin, true

	case chessboard.DrawClock >= 100,
		chessboard.IsInsufficientMaterial():
		return match.Draw, true
	}

	return 0, false
}

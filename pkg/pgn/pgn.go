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

// Package pgn reads game results from PGN exports, like the ones served by
// chess.com's game archive API.
package pgn

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/streak/pkg/elo"
	"laptudirm.com/x/streak/pkg/match"
)

// Stats reports how many game records were read from an export.
type Stats struct {
	Parsed  int // records turned into games
	Skipped int // malformed or unfinished records
}

// Tags are the tag pairs of a single PGN game record.
type Tags map[string]string

// tagNames are the tag pairs a game record is read from.
var tagNames = []string{
	"White", "Black",
	"WhiteElo", "BlackElo",
	"Result", "CurrentPosition", "FEN",
}

// unescape undoes the PGN string escapes in a tag value.
var unescape = strings.NewReplacer(`\"`, `"`, `\\`, `\`)

// NewTags collects the tag pairs of a scanned game.
func NewTags(game *chess.Game) Tags {
	tags := make(Tags)
	for _, name := range tagNames {
		if pair := game.GetTagPair(name); pair != nil {
			tags[name] = unescape.Replace(pair.Value)
		}
	}

	// Fall back to the game termination marker of the movetext.
	if _, found := tags["Result"]; !found {
		tags["Result"] = game.Outcome().String()
	}

	return tags
}

// Parse reads every game in the PGN export r, in order. Records which are
// missing tags or whose result can't be resolved are skipped, while movetext
// the scanner can't decode fails the whole export.
func Parse(r io.Reader) ([]match.Game, Stats, error) {
	var games []match.Game
	var stats Stats

	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		scanned := scanner.Next()
		if scanned == nil {
			continue
		}

		game, err := NewTags(scanned).Game()
		if err != nil {
			stats.Skipped++
			logrus.WithField("record", stats.Parsed+stats.Skipped).Debug(err)
			continue
		}

		stats.Parsed++
		games = append(games, game)
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, stats, fmt.Errorf("read pgn: %w", err)
	}

	return games, stats, nil
}

// ParseString is like Parse but reads the export from a string.
func ParseString(s string) ([]match.Game, Stats, error) {
	return Parse(strings.NewReader(s))
}

// Game converts the tags of a game record into a Game.
func (tags Tags) Game() (match.Game, error) {
	white, err := tags.player("White")
	if err != nil {
		return match.Game{}, err
	}

	black, err := tags.player("Black")
	if err != nil {
		return match.Game{}, err
	}

	outcome, err := tags.outcome()
	if err != nil {
		return match.Game{}, fmt.Errorf("game %s vs %s: %w", white.Name, black.Name, err)
	}

	return match.Game{
		White:   white,
		Black:   black,
		Outcome: outcome,
	}, nil
}

func (tags Tags) player(side string) (match.Player, error) {
	name, found := tags[side]
	if !found || name == "" {
		return match.Player{}, fmt.Errorf("missing %s tag", side)
	}

	rating, err := elo.ParseRating(tags[side+"Elo"])
	if err != nil {
		return match.Player{}, fmt.Errorf("%s %s: %w", strings.ToLower(side), name, err)
	}

	return match.Player{Name: name, Rating: rating}, nil
}

func (tags Tags) outcome() (match.Outcome, error) {
	result := tags["Result"]
	if outcome, ok := match.ParseOutcome(result); ok {
		return outcome, nil
	}

	// An unfinished game may still have ended on the board.
	for _, tag := range []string{"CurrentPosition", "FEN"} {
		if position, found := tags[tag]; found {
			if outcome, ok := Adjudicate(position); ok {
				return outcome, nil
			}
		}
	}

	return 0, fmt.Errorf("unresolved result %q", result)
}

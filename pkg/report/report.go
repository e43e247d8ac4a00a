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

// Package report renders streak histograms and simulation summaries.
package report

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"

	"laptudirm.com/x/streak/pkg/elo"
	"laptudirm.com/x/streak/pkg/simulate"
	"laptudirm.com/x/streak/pkg/streak"
)

// Actual prints the histogram of a player's real winning streaks.
func Actual(w io.Writer, h streak.Histogram) {
	fmt.Fprintln(w, "Win Streak Histogram:")
	for length := 1; length <= h.Max(); length++ {
		fmt.Fprintf(w, "Streak Length: %3d, Count: %d\n", length, h.Count(length))
	}
}

// Simulated prints the histogram of simulated winning streaks, scaled to a
// single trial.
func Simulated(w io.Writer, result *simulate.Result) {
	fmt.Fprintln(w, "Win Streak Histogram:")
	for length := 1; length <= result.Streaks.Max(); length++ {
		expected := result.Expected(length)
		probability := math.Min(expected, 1) * 100

		fmt.Fprintf(
			w, "Streak Length: %3d, Expected Count: %5.0f, Probability: %6.2f%%\n",
			length, expected, probability,
		)
	}
}

// Summary is the comparison of a player's real games with their simulated
// replays.
type Summary struct {
	Player string

	Wins, Draws, Losses int

	// Longest real winning streak.
	Longest int

	Simulated *simulate.Result
}

// Print prints the summary in a box.
func (summary *Summary) Print(w io.Writer) {
	lower, perf, upper := elo.Performance(summary.Wins, summary.Draws, summary.Losses)
	err := math.Abs(math.Max(upper-perf, perf-lower))

	mean, std := summary.LongestMeanStdDev()
	n := summary.Wins + summary.Draws + summary.Losses

	lines := []string{
		fmt.Sprintf("║ PLAYER  | %s", summary.Player),
		fmt.Sprintf("║ GAMES   | N: %d W: %d L: %d D: %d", n, summary.Wins, summary.Losses, summary.Draws),
		fmt.Sprintf("║ ELO     | %+.2f +- %.2f (95%%)", perf, err),
		fmt.Sprintf("║ LONGEST | %d (p = %.4f)", summary.Longest, summary.Simulated.TailProbability(summary.Longest)),
		fmt.Sprintf("║ TRIALS  | N: %d longest %.2f +- %.2f", summary.Simulated.Trials, mean, std),
	}

	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	for _, line := range lines {
		fmt.Fprintf(w, "%-50s║\n", line)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}

// LongestMeanStdDev returns the mean and the standard deviation of the
// longest winning streak of the simulated trials.
func (summary *Summary) LongestMeanStdDev() (mean, std float64) {
	longest := summary.Simulated.Longest
	if summary.Simulated.Trials < 2 {
		return float64(longest.Max()), 0
	}

	lengths := longest.Lengths()
	xs := make([]float64, len(lengths))
	weights := make([]float64, len(lengths))
	for i, length := range lengths {
		xs[i] = float64(length)
		weights[i] = float64(longest.Count(length))
	}

	return stat.MeanStdDev(xs, weights)
}

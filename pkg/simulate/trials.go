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

package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/streak/pkg/match"
	"laptudirm.com/x/streak/pkg/streak"
)

// Config configures a batch of simulation trials.
type Config struct {
	// Number of trials that will be simulated concurrently.
	// Defaults to the number of CPUs.
	Concurrency int

	// Base seed of the trials' random sources. Trial i is seeded with
	// TrialSeed(Seed, i), so a batch is reproducible for a given seed
	// no matter how its trials are scheduled.
	Seed int64
}

// Outcomes is the result of a single trial.
type Outcomes struct {
	Streaks streak.Histogram
	Longest int
}

// Result is the aggregate of a batch of trials.
type Result struct {
	Trials int

	// Streaks is the sum of the streak histograms of every trial.
	Streaks streak.Histogram

	// Longest counts the trials by the length of their longest streak.
	// Trials without any win are counted under length 0.
	Longest streak.Histogram
}

// NewResult returns an empty Result, which is also the result of zero trials.
func NewResult() *Result {
	return &Result{
		Streaks: make(streak.Histogram),
		Longest: make(streak.Histogram),
	}
}

// Add folds the outcomes of a single trial into the result.
func (result *Result) Add(trial Outcomes) {
	result.Trials++
	result.Streaks.Merge(trial.Streaks)
	result.Longest.Add(trial.Longest, 1)
}

// Merge folds another result into this one. Merging is commutative and
// associative, so partial results may be merged in any order.
func (result *Result) Merge(other *Result) {
	result.Trials += other.Trials
	result.Streaks.Merge(other.Streaks)
	result.Longest.Merge(other.Longest)
}

// Expected returns the average number of streaks of the given length in a
// single trial.
func (result *Result) Expected(length int) float64 {
	if result.Trials == 0 {
		return 0
	}

	return float64(result.Streaks.Count(length)) / float64(result.Trials)
}

// TailProbability returns the fraction of trials whose longest streak was
// at least the given length.
func (result *Result) TailProbability(length int) float64 {
	if result.Trials == 0 {
		return 0
	}

	atLeast := 0
	for longest, n := range result.Longest {
		if longest >= length {
			atLeast += n
		}
	}

	return float64(atLeast) / float64(result.Trials)
}

// Trial simulates the given games once using src and returns the named
// player's winning streaks in the simulated series. Every game must
// involve the player.
func Trial(games []match.Game, player string, src Source) Outcomes {
	streaks := streak.WinStreaks(Series(games, src), player)
	return Outcomes{
		Streaks: streaks,
		Longest: streaks.Max(),
	}
}

// TrialSeed derives the seed of the given trial from the base seed of a
// batch. The mixing (splitmix64) keeps the sources of neighbouring trials
// uncorrelated.
func TrialSeed(seed int64, trial int) int64 {
	z := uint64(seed) + uint64(trial+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// NewSource returns the random source of the given trial.
func NewSource(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(TrialSeed(seed, trial)))
}

// Run simulates the given games trials times and returns the aggregate of
// the named player's winning streaks over all the trials. Every trial draws
// from its own random source, and trials are run concurrently.
func Run(ctx context.Context, games []match.Game, player string, trials int, config Config) (*Result, error) {
	if trials < 0 {
		return nil, fmt.Errorf("run trials: invalid trial count %d", trials)
	}

	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > trials {
		concurrency = trials
	}

	indices := make(chan int)
	partials := make([]*Result, concurrency)

	g, ctx := errgroup.WithContext(ctx)

	// Queue the trials.
	g.Go(func() error {
		defer close(indices)
		for i := 0; i < trials; i++ {
			select {
			case indices <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < concurrency; w++ {
		partial := NewResult()
		partials[w] = partial

		g.Go(func() error {
			for i := range indices {
				partial.Add(Trial(games, player, NewSource(config.Seed, i)))
			}

			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := NewResult()
	for _, partial := range partials {
		result.Merge(partial)
	}

	return result, nil
}

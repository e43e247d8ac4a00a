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

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/streak/internal/streak/config"
	"laptudirm.com/x/streak/internal/util"
	"laptudirm.com/x/streak/pkg/match"
	"laptudirm.com/x/streak/pkg/pgn"
	"laptudirm.com/x/streak/pkg/report"
	"laptudirm.com/x/streak/pkg/simulate"
	"laptudirm.com/x/streak/pkg/streak"
)

// streak analyze
func Analyze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [games-file]",
		Short: "Compare a player's winning streaks with simulated ones",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`analyze reads a player's games from a PGN export and
			compares their winning streaks with the streaks of many
			simulated replays of the same games.

			Every simulated game keeps the players and ratings of the real
			game, and its result is drawn from an Elo model of the pairing
			which includes the chance of a draw. The trials are independent
			and run concurrently.

			Options may also be given in a YAML file, by default at
			$XDG_CONFIG_HOME/streak/config.yaml. Flags override the file.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			conf, err := config.Load(path)
			if err != nil {
				return err
			}

			overrideConfig(cmd, &conf)
			if len(args) == 1 {
				conf.Games = args[0]
			}

			if err := conf.Validate(); err != nil {
				return err
			}

			return analyze(cmd, conf)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Configuration file to use")
	cmd.Flags().StringP("player", "p", "", "Name of the player to analyze")
	cmd.Flags().IntP("trials", "n", config.DefaultTrials, "Number of simulated trials")
	cmd.Flags().Int64P("seed", "s", 0, "Seed of the simulation (0 for a random seed)")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of trials to simulate concurrently")
	cmd.Flags().BoolP("lenient", "l", false, "Ignore games not played by the player")

	return cmd
}

// overrideConfig replaces the configuration with the explicitly set flags.
func overrideConfig(cmd *cobra.Command, conf *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("player") {
		conf.Player, _ = flags.GetString("player")
	}
	if flags.Changed("trials") {
		conf.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("seed") {
		conf.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("concurrency") {
		conf.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("lenient") {
		conf.Lenient, _ = flags.GetBool("lenient")
	}
}

func analyze(cmd *cobra.Command, conf config.Config) error {
	file, err := os.Open(conf.Games)
	if err != nil {
		return err
	}
	defer file.Close()

	logrus.Infof("Loading games from \x1b[33m%s\x1b[0m...", conf.Games)
	games, stats, err := pgn.Parse(file)
	if err != nil {
		return err
	}

	logrus.WithField("skipped", stats.Skipped).Infof("Loaded %d games", stats.Parsed)

	played := match.Involving(games, conf.Player)
	if others := len(games) - len(played); others > 0 {
		if !conf.Lenient {
			return fmt.Errorf(
				"analyze: %d games in %s were not played by %s (use --lenient to ignore them)",
				others, conf.Games, conf.Player,
			)
		}

		logrus.Warnf("Ignoring %d games not played by %s", others, conf.Player)
	}

	if len(played) == 0 {
		return fmt.Errorf("analyze: no games played by %s in %s", conf.Player, conf.Games)
	}

	out := cmd.OutOrStdout()

	actual := streak.WinStreaks(played, conf.Player)
	fmt.Fprintf(out, "\nActual Results (%d games):\n", len(played))
	report.Actual(out, actual)

	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}

	logrus.WithFields(logrus.Fields{
		"seed":        conf.Seed,
		"concurrency": conf.Concurrency,
	}).Infof("Simulating %d trials...", conf.Trials)

	stop := util.StartSpinner(" Simulating...")
	result, err := simulate.Run(cmd.Context(), played, conf.Player, conf.Trials, simulate.Config{
		Concurrency: conf.Concurrency,
		Seed:        conf.Seed,
	})
	stop()

	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSimulated Results (%d trials):\n", result.Trials)
	report.Simulated(out, result)
	fmt.Fprintln(out)

	ws, ds, ls := match.Record(played, conf.Player)
	summary := report.Summary{
		Player: conf.Player,

		Wins:   ws,
		Draws:  ds,
		Losses: ls,

		Longest:   actual.Max(),
		Simulated: result,
	}

	summary.Print(out)
	return nil
}

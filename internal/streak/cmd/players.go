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

	"github.com/spf13/cobra"

	"laptudirm.com/x/streak/pkg/match"
	"laptudirm.com/x/streak/pkg/pgn"
)

func Players() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players games-file",
		Short: "Lists the players in a PGN export by number of games",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			games, _, err := pgn.Parse(file)
			if err != nil {
				return err
			}

			players := match.Players(games)
			if len(players) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\x1b[31mNo Games Found.\x1b[0m")
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit > 0 && limit < len(players) {
				players = players[:limit]
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\u001B[32mPlayers\u001B[0m:")
			fmt.Fprintln(cmd.OutOrStdout())
			for _, player := range players {
				name := fmt.Sprintf("\x1b[34m%s\x1b[0m:", player.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "- %-30s %d games\n", name, player.Games)
			}

			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 10, "Number of players to list (0 for all)")
	return cmd
}

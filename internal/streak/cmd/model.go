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

	"github.com/spf13/cobra"

	"laptudirm.com/x/streak/pkg/elo"
)

// streak model
func Model() *cobra.Command {
	return &cobra.Command{
		Use:   "model white-elo black-elo",
		Short: "Show the outcome probabilities of a pairing",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			white, err := elo.ParseRating(args[0])
			if err != nil {
				return err
			}

			black, err := elo.ParseRating(args[1])
			if err != nil {
				return err
			}

			e := elo.Expected(white, black)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\x1b[34mWhite\x1b[0m (%d) wins: %6.2f%%\n", white, e.White*100)
			fmt.Fprintf(out, "\x1b[34mBlack\x1b[0m (%d) wins: %6.2f%%\n", black, e.Black*100)
			fmt.Fprintf(out, "\x1b[33mDraw\x1b[0m:%13s%6.2f%%\n", "", e.Draw*100)
			return nil
		},
	}
}

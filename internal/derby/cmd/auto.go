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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"laptudirm.com/x/derby/pkg/race"
	"laptudirm.com/x/derby/pkg/schedule"
	"laptudirm.com/x/derby/pkg/track"
)

const SPIN = 31

func Auto() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Watch a race played by an automated clicker",
		Args:  cobra.NoArgs,
		Long: heredoc.Docf(`auto plays a single race with an automated clicker and
			draws the race after every click.

			The available clickers are %v. The clicker and the
			pause between clicks are read from the configuration, and
			can be overridden with flags.`, schedule.Names),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flag("clicker").Changed {
				config.Clicker, _ = cmd.Flags().GetString("clicker")
			}

			if cmd.Flag("delay").Changed {
				config.Delay, _ = cmd.Flags().GetDuration("delay")
			}

			clicker, err := schedule.New(config.Clicker, clickerSeed(cmd, config))
			if err != nil {
				return err
			}

			r, err := race.New(config.Colors)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			t := track.New(r, out)
			if err := t.Render(); err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			outcome, clicks, err := schedule.Run(t, clicker, func(outcome race.Outcome) error {
				if err := t.Render(); err != nil {
					return err
				}

				if outcome.Kind == race.Advanced && config.Delay > 0 {
					s.Start()
					time.Sleep(config.Delay)
					s.Stop()
				}

				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(
				out, "\x1b[32m%s wins\x1b[0m after %d clicks.\n",
				r.Participants()[outcome.ID].Color, clicks,
			)
			return nil
		},
	}

	cmd.Flags().String("clicker", "round-robin", "Clicker which plays the race")
	cmd.Flags().Duration("delay", 0, "Pause between two clicks")
	cmd.Flags().Int64("seed", 0, "Seed of the random clicker (default from configuration)")

	return cmd
}

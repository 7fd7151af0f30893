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
	"github.com/spf13/cobra"

	"laptudirm.com/x/derby/pkg/series"
)

func Series() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Run a series of automated races and show the score board",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			seriesConfig := config.SeriesConfig()
			if cmd.Flag("races").Changed {
				seriesConfig.Races, _ = cmd.Flags().GetInt("races")
			}

			if cmd.Flag("concurrency").Changed {
				seriesConfig.Concurrency, _ = cmd.Flags().GetInt("concurrency")
			}

			if cmd.Flag("clicker").Changed {
				seriesConfig.Clicker, _ = cmd.Flags().GetString("clicker")
			}

			s, err := series.New(seriesConfig)
			if err != nil {
				return err
			}

			err = s.Start()
			s.Report(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntP("races", "n", 0, "Number of races to run")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of races run at the same time")
	cmd.Flags().String("clicker", "", "Clicker which plays the races")

	return cmd
}

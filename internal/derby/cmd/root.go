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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	derby "laptudirm.com/x/derby/pkg/common"
	"laptudirm.com/x/derby/pkg/config"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "derby",
		Short: "Race diamonds to the finish line, one click at a time",
		Long: heredoc.Doc(`derby is a race between colored diamonds. Every click on a
			diamond moves it one step forward, and the first diamond to
			reach the finish line wins. Once a diamond has won, no other
			diamond can move until the race is reset.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Derby's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Race configuration file (default "+derby.ConfigFile+")")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Auto())
	root.AddCommand(Series())
	root.AddCommand(Colors())

	return root
}

// loadConfig loads the file given with --config, or the default
// configuration file, creating it if needed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cmd.Flag("config").Value.String()
	if path == "" {
		return config.LoadOrCreate(derby.ConfigFile)
	}

	return config.Load(path)
}

// clickerSeed returns the seed given with --seed, or the configured seed.
func clickerSeed(cmd *cobra.Command, c *config.Config) int64 {
	if cmd.Flag("seed").Changed {
		seed, _ := cmd.Flags().GetInt64("seed")
		return seed
	}

	return c.Series.Seed
}

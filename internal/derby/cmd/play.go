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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/derby/pkg/race"
	"laptudirm.com/x/derby/pkg/track"
)

func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a race interactively",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a race between the configured colors and reads
			clicks from the standard input, one per line.

			A line with a participant's id or color clicks its diamond.
			A line with "r" or "reset" brings every diamond back to the
			start, and "q" or "quit" ends the game. The race is drawn
			again after every line.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r, err := race.New(config.Colors)
			if err != nil {
				return err
			}

			return play(track.New(r, cmd.OutOrStdout()), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func play(t *track.Track, in io.Reader, out io.Writer) error {
	if err := t.Render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue

		case "q", "quit":
			return nil

		case "r", "reset":
			t.Reset()
			fmt.Fprintln(out, "Race reset.")

		default:
			outcome, err := click(t, line)
			switch {
			case errors.Is(err, race.ErrUnknownParticipant):
				fmt.Fprintf(out, "\x1b[31mNo diamond %q.\x1b[0m\n", line)
				continue
			case err != nil:
				return err
			}

			report(out, t, outcome)
		}

		if err := t.Render(); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// click clicks the diamond named by an id or a color.
func click(t *track.Track, name string) (race.Outcome, error) {
	if id, err := strconv.Atoi(name); err == nil {
		return t.Click(id)
	}

	return t.ClickColor(name)
}

func report(out io.Writer, t *track.Track, outcome race.Outcome) {
	color := t.Race().Participants()[outcome.ID].Color

	switch outcome.Kind {
	case race.Won:
		fmt.Fprintf(out, "\x1b[32m%s wins!\x1b[0m Reset to race again.\n", color)
	case race.Rejected:
		logrus.Debugf("Click on %s ignored, the race is over", color)
		fmt.Fprintln(out, "The race is over. Reset to race again.")
	}
}

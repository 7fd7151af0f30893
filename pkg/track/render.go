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

package track

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/derby/pkg/race"
)

const (
	// StepWidth is the number of columns a token moves per step.
	StepWidth = 3

	// laneWidth is the number of columns between the start and end lines.
	laneWidth = race.FinishLine*StepWidth + 1

	diamond = "◆"
)

var tokenColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var winnerScore = color.New(color.FgRed, color.Bold)

// Column returns the column of a token at the given progress, counted from
// the start line.
func Column(progress int) int {
	return progress * StepWidth
}

// Render draws the track: the start and end lines, one lane per participant
// with its token, and every participant's score. The winner's score is
// highlighted.
func (track *Track) Render() error {
	var b strings.Builder

	fmt.Fprintf(&b, "%-*s%s\n", laneWidth+1, "Start", "End")

	winner, finished := track.race.Status().Winner()
	for _, participant := range track.race.Participants() {
		column := Column(participant.Progress)

		b.WriteString("|")
		b.WriteString(strings.Repeat(" ", column))
		b.WriteString(track.token(participant.Color))
		b.WriteString(strings.Repeat(" ", laneWidth-column-1))
		b.WriteString("| ")

		label := fmt.Sprintf("%-8s", track.title.String(participant.Color))
		score := fmt.Sprintf("%2d", participant.Progress)
		if finished && participant.ID == winner {
			score = winnerScore.Sprint(score) + " winner"
		}

		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(score)
		b.WriteString("\n")
	}

	_, err := io.WriteString(track.out, b.String())
	return err
}

func (track *Track) token(name string) string {
	if attr, found := tokenColors[strings.ToLower(name)]; found {
		return color.New(attr).Sprint(diamond)
	}

	return diamond
}

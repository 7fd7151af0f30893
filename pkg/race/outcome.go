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

package race

import "fmt"

// Kind is the kind of an advance's outcome.
type Kind int

const (
	// Advanced means the participant moved but did not finish.
	Advanced Kind = iota

	// Won means the participant reached the finish line and won.
	Won

	// Rejected means the race is over and nothing moved.
	Rejected
)

func (kind Kind) String() string {
	switch kind {
	case Advanced:
		return "advanced"
	case Won:
		return "won"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of advancing a participant. ID and Progress are
// the participant's id and progress after the advance.
type Outcome struct {
	Kind Kind

	ID       int
	Progress int
}

func (outcome Outcome) String() string {
	switch outcome.Kind {
	case Advanced:
		return fmt.Sprintf("#%d advances to %d", outcome.ID, outcome.Progress)
	case Won:
		return fmt.Sprintf("#%d wins at %d", outcome.ID, outcome.Progress)
	case Rejected:
		return fmt.Sprintf("#%d rejected: race is over", outcome.ID)
	}

	return "illegal outcome"
}

// Status is the status of a race: it is either running, or it has been
// finished by a winner.
type Status struct {
	winner int
}

// Running is the status of a race without a winner.
var Running = Status{winner: noWinner}

// Finished returns the status of a race won by the given participant.
func Finished(winner int) Status {
	return Status{winner: winner}
}

// Running reports whether the race is still running.
func (status Status) Running() bool {
	return status.winner == noWinner
}

// Winner returns the race's winner, if there is one.
func (status Status) Winner() (int, bool) {
	return status.winner, status.winner != noWinner
}

func (status Status) String() string {
	if status.Running() {
		return "running"
	}

	return fmt.Sprintf("finished (#%d won)", status.winner)
}

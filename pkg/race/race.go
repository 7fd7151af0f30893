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

// Package race implements the state machine behind a click driven race.
// A Race tracks the progress of every participant, records the winner once
// some participant reaches the finish line, and rejects any further moves
// until it is reset.
//
// A Race is not safe for concurrent use. Every call runs to completion and
// the race must be owned by a single goroutine.
package race

import (
	"fmt"
)

// FinishLine is the progress a participant needs to win the race.
const FinishLine = 10

// noWinner is the winner value of a race which is still running.
const noWinner = -1

// New creates a new race with one participant for every color. The
// participant ids are assigned in the order of the colors, starting at 0.
// The colors must be non-empty and distinct from each other.
func New(colors []string) (*Race, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("new race: %w: no participant colors", ErrInvalidConfiguration)
	}

	race := Race{
		participants: make([]Participant, len(colors)),
		colors:       make(map[string]int, len(colors)),
		winner:       noWinner,
	}

	for id, color := range colors {
		if color == "" {
			return nil, fmt.Errorf("new race: %w: participant %d has an empty color", ErrInvalidConfiguration, id)
		}

		if other, found := race.colors[color]; found {
			return nil, fmt.Errorf(
				"new race: %w: participants %d and %d share the color %q",
				ErrInvalidConfiguration, other, id, color,
			)
		}

		race.colors[color] = id
		race.participants[id] = Participant{ID: id, Color: color}
	}

	return &race, nil
}

// Race is a single race between a fixed set of participants.
type Race struct {
	participants []Participant
	colors       map[string]int // color -> participant id

	// winner is the id of the participant that reached the finish
	// line, or noWinner if the race is still running.
	winner int
}

// Advance moves the given participant one step forward. If the move takes
// the participant to the finish line, the race is finished and a Won
// outcome is returned. Advancing in a finished race has no effect and
// returns a Rejected outcome.
func (race *Race) Advance(id int) (Outcome, error) {
	if err := race.check(id); err != nil {
		return Outcome{}, fmt.Errorf("advance: %w", err)
	}

	// The race is frozen until it is reset.
	if race.winner != noWinner {
		return Outcome{Kind: Rejected, ID: id, Progress: race.participants[id].Progress}, nil
	}

	participant := &race.participants[id]
	participant.Progress++

	if participant.Progress == FinishLine {
		race.winner = id
		return Outcome{Kind: Won, ID: id, Progress: participant.Progress}, nil
	}

	return Outcome{Kind: Advanced, ID: id, Progress: participant.Progress}, nil
}

// Reset brings every participant back to the start. It reports whether the
// race had been finished, in which case input should be enabled again.
func (race *Race) Reset() (unfrozen bool) {
	for i := range race.participants {
		race.participants[i].Progress = 0
	}

	unfrozen = race.winner != noWinner
	race.winner = noWinner
	return unfrozen
}

// Status returns the current status of the race.
func (race *Race) Status() Status {
	return Status{winner: race.winner}
}

// Progress returns the progress of the given participant.
func (race *Race) Progress(id int) (int, error) {
	if err := race.check(id); err != nil {
		return 0, fmt.Errorf("progress: %w", err)
	}

	return race.participants[id].Progress, nil
}

// Participants returns a snapshot of the race's participants, ordered by id.
func (race *Race) Participants() []Participant {
	participants := make([]Participant, len(race.participants))
	copy(participants, race.participants)
	return participants
}

// Len returns the number of participants in the race.
func (race *Race) Len() int {
	return len(race.participants)
}

// Lookup returns the id of the participant with the given color.
func (race *Race) Lookup(color string) (int, bool) {
	id, found := race.colors[color]
	return id, found
}

func (race *Race) check(id int) error {
	if id < 0 || id >= len(race.participants) {
		return &UnknownParticipantError{ID: id, Participants: len(race.participants)}
	}

	return nil
}

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

// Package track is the presentation side of a race. A Track owns a click
// listener for every participant, forwards clicks from attached listeners
// to the race, freezes every listener once the race is won, and draws the
// race on a terminal.
package track

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"laptudirm.com/x/derby/pkg/race"
)

// New creates a track for the given race which draws to out. A listener is
// attached for every participant.
func New(r *race.Race, out io.Writer) *Track {
	track := Track{
		ID:        uuid.New(),
		race:      r,
		out:       out,
		listening: make([]bool, r.Len()),
		title:     cases.Title(language.English),
	}

	track.log = logrus.WithField("track", track.ID.String())
	track.attach()
	return &track
}

// Track connects user input and the terminal to a race.
type Track struct {
	ID uuid.UUID

	race *race.Race
	out  io.Writer
	log  *logrus.Entry

	// listening[id] is true if clicks on the participant id are
	// dispatched to the race.
	listening []bool

	title cases.Caser
}

// Race returns the race being shown on the track.
func (track *Track) Race() *race.Race {
	return track.race
}

// Len returns the number of participants on the track.
func (track *Track) Len() int {
	return track.race.Len()
}

// Listening reports whether clicks on the given participant are forwarded
// to the race.
func (track *Track) Listening(id int) bool {
	return id >= 0 && id < len(track.listening) && track.listening[id]
}

// Click handles a click on the given participant's token. Clicks on a
// token without a listener are ignored and reported as Rejected.
func (track *Track) Click(id int) (race.Outcome, error) {
	progress, err := track.race.Progress(id)
	if err != nil {
		return race.Outcome{}, fmt.Errorf("click: %w", err)
	}

	if !track.listening[id] {
		track.log.WithField("participant", id).Debug("Ignoring click on frozen token")
		return race.Outcome{Kind: race.Rejected, ID: id, Progress: progress}, nil
	}

	outcome, err := track.race.Advance(id)
	if err != nil {
		return outcome, fmt.Errorf("click: %w", err)
	}

	switch outcome.Kind {
	case race.Won:
		track.log.WithFields(logrus.Fields{
			"participant": id,
			"progress":    outcome.Progress,
		}).Info("Race won")
		track.freeze()

	case race.Rejected:
		track.log.WithField("participant", id).Debug("Race rejected click")

	default:
		track.log.WithFields(logrus.Fields{
			"participant": id,
			"progress":    outcome.Progress,
		}).Trace("Token advanced")
	}

	return outcome, nil
}

// ClickColor handles a click on the token with the given color. Colors
// are matched case-insensitively when there is no exact match, so the
// labels shown on the board can be used as well.
func (track *Track) ClickColor(color string) (race.Outcome, error) {
	id, found := track.lookup(color)
	if !found {
		return race.Outcome{}, fmt.Errorf("click: %w: no participant with color %q", race.ErrUnknownParticipant, color)
	}

	return track.Click(id)
}

func (track *Track) lookup(color string) (int, bool) {
	if id, found := track.race.Lookup(color); found {
		return id, true
	}

	for _, participant := range track.race.Participants() {
		if strings.EqualFold(participant.Color, color) {
			return participant.ID, true
		}
	}

	return 0, false
}

// Reset brings every token back to the start. Listeners are re-attached
// only if the race had been won or some token was frozen; it reports
// whether that happened.
func (track *Track) Reset() bool {
	unfrozen := track.race.Reset()
	unfrozen = track.frozen() || unfrozen
	if unfrozen {
		track.attach()
	}

	track.log.WithField("unfrozen", unfrozen).Debug("Race reset")
	return unfrozen
}

// frozen reports whether any token has its listener detached.
func (track *Track) frozen() bool {
	for _, listening := range track.listening {
		if !listening {
			return true
		}
	}

	return false
}

// attach attaches a listener to every token.
func (track *Track) attach() {
	for id := range track.listening {
		track.listening[id] = true
	}
}

// freeze detaches the listeners from every token.
func (track *Track) freeze() {
	for id := range track.listening {
		track.listening[id] = false
	}
}

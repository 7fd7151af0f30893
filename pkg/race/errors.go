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

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a race is created with no
	// colors, an empty color, or the same color twice.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownParticipant is returned when an id does not refer to any
	// participant of the race.
	ErrUnknownParticipant = errors.New("unknown participant")
)

// UnknownParticipantError describes an id outside of a race. It matches
// ErrUnknownParticipant with errors.Is.
type UnknownParticipantError struct {
	ID           int
	Participants int
}

func (err *UnknownParticipantError) Error() string {
	return fmt.Sprintf("%s: id %d not in [0, %d)", ErrUnknownParticipant, err.ID, err.Participants)
}

func (err *UnknownParticipantError) Unwrap() error {
	return ErrUnknownParticipant
}

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

// Participant is a single racer. The ID and Color of a participant never
// change during a race, while the Progress is the number of steps it has
// taken since the last reset.
type Participant struct {
	ID    int
	Color string

	Progress int
}

func (participant Participant) String() string {
	return fmt.Sprintf("%s (#%d) at %d/%d", participant.Color, participant.ID, participant.Progress, FinishLine)
}

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

// Package schedule provides automated clickers which decide the order in
// which the participants of a race are clicked.
package schedule

import (
	"fmt"
	"math/rand"
)

// New returns the clicker with the given name. The seed is only used by
// clickers which make random choices.
func New(name string, seed int64) (Clicker, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	case "random":
		return &Random{rng: rand.New(rand.NewSource(seed))}, nil
	case "gauntlet":
		return &Gauntlet{}, nil
	default:
		return nil, fmt.Errorf("new clicker: invalid clicker %s", name)
	}
}

// Names lists the names accepted by New.
var Names = []string{"round-robin", "random", "gauntlet"}

// Clicker picks the next participant to be clicked. Initialize must be
// called with the number of participants before the first call to Next,
// and again whenever the race is restarted.
type Clicker interface {
	Initialize(int)
	Next() int
}

// RoundRobin clicks every participant in turn, in order of their ids.
type RoundRobin struct {
	player_count int
	click_number int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.player_count = n
	rr.click_number = 0
}

func (rr *RoundRobin) Next() int {
	id := rr.click_number % rr.player_count
	rr.click_number++
	return id
}

// Random clicks a uniformly random participant every time.
type Random struct {
	player_count int
	rng          *rand.Rand
}

func (r *Random) Initialize(n int) {
	r.player_count = n
}

func (r *Random) Next() int {
	return r.rng.Intn(r.player_count)
}

// Gauntlet clicks the first participant on every other click, while the
// rest of the participants take turns on the remaining clicks.
type Gauntlet struct {
	player_count int
	click_number int
	challenger   int
}

func (g *Gauntlet) Initialize(n int) {
	g.player_count = n
	g.click_number = 0
	g.challenger = 0
}

func (g *Gauntlet) Next() int {
	g.click_number++
	if g.player_count == 1 || g.click_number%2 == 1 {
		return 0
	}

	id := 1 + g.challenger
	g.challenger = (g.challenger + 1) % (g.player_count - 1)
	return id
}

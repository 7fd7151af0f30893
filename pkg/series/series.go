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

// Package series runs many autoplayed races and keeps a score board of
// the participants' wins.
package series

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/derby/pkg/internal/util"
	"laptudirm.com/x/derby/pkg/race"
	"laptudirm.com/x/derby/pkg/schedule"
	"laptudirm.com/x/derby/pkg/track"
)

// Config describes a series of races.
type Config struct {
	// The colors of the participants of every race.
	Colors []string

	// Name of the clicker which plays the races.
	Clicker string

	Races       int   // Number of races to run.
	Concurrency int   // Number of races run at the same time.
	Seed        int64 // Seed of the first race, later races add their number.
}

// New validates the configuration and creates a series from it.
func New(config Config) (*Series, error) {
	if _, err := race.New(config.Colors); err != nil {
		return nil, fmt.Errorf("new series: %w", err)
	}

	if _, err := schedule.New(config.Clicker, config.Seed); err != nil {
		return nil, fmt.Errorf("new series: %w", err)
	}

	if config.Races < 1 {
		return nil, errors.New("new series: at least one race is needed")
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	var series Series
	series.Config = config
	series.Scores = make([]Score, len(config.Colors))
	for i, color := range config.Colors {
		series.Scores[i].Color = color
	}

	series.heats = make(chan Heat)
	series.results = make(chan Result)
	series.complete = make(chan bool)

	return &series, nil
}

type Series struct {
	Config Config

	heats    chan Heat
	results  chan Result
	complete chan bool

	started bool

	Finished int
	Failed   int
	Scores   []Score
}

// Score is a participant's record over the series.
type Score struct {
	Color  string
	Wins   int
	Clicks int // Clicks made on the participant's token.
}

// Heat is a single race of the series.
type Heat struct {
	Number int
	Seed   int64
}

// Result is the result of a heat.
type Result struct {
	Heat

	Winner int
	Clicks []int // Clicks made on every participant's token.
	Err    error
}

// Start runs every race of the series and returns once all of them have
// finished. Each race is played from start to end by a single worker.
// A series can only be started once.
func (series *Series) Start() error {
	if series.started {
		return errors.New("series: already started")
	}
	series.started = true

	go series.ResultHandler()
	for i := 0; i < series.Config.Concurrency; i++ {
		go series.Thread()
	}

	for number := 1; number <= series.Config.Races; number++ {
		series.heats <- Heat{
			Number: number,
			Seed:   series.Config.Seed + int64(number),
		}
	}

	close(series.heats)
	<-series.complete

	if series.Failed > 0 {
		return fmt.Errorf("series: %d of %d races failed", series.Failed, series.Config.Races)
	}

	return nil
}

func (series *Series) Thread() {
	for heat := range series.heats {
		series.results <- series.RunHeat(heat)
	}
}

// RunHeat plays a single race to the end.
func (series *Series) RunHeat(heat Heat) Result {
	result := Result{
		Heat:   heat,
		Winner: -1,
		Clicks: make([]int, len(series.Config.Colors)),
	}

	r, err := race.New(series.Config.Colors)
	if err != nil {
		result.Err = err
		return result
	}

	clicker, err := schedule.New(series.Config.Clicker, heat.Seed)
	if err != nil {
		result.Err = err
		return result
	}

	logrus.Debugf("\x1b[33mStarting\x1b[0m Race #%d (seed %d)", heat.Number, heat.Seed)

	outcome, _, err := schedule.Run(track.New(r, io.Discard), clicker, func(outcome race.Outcome) error {
		result.Clicks[outcome.ID]++
		return nil
	})
	if err != nil {
		result.Err = err
		return result
	}

	result.Winner = outcome.ID
	return result
}

func (series *Series) ResultHandler() {
	for result := range series.results {
		series.Finished++

		if result.Err != nil {
			series.Failed++
			logrus.Errorf("Race #%d failed: %v", result.Number, result.Err)
		} else {
			series.Scores[result.Winner].Wins++
			for id, clicks := range result.Clicks {
				series.Scores[id].Clicks += clicks
			}

			logrus.Infof(
				"\x1b[32mFinished\x1b[0m Race #%d: %s wins\n",
				result.Number, series.Config.Colors[result.Winner],
			)
		}

		if series.Finished == series.Config.Races {
			close(series.results)
			series.complete <- true
			return
		}
	}
}

// Standings returns the scores ordered by wins, with ties ordered by color.
func (series *Series) Standings() []Score {
	standings := make([]Score, len(series.Scores))
	copy(standings, series.Scores)

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}

		return util.NaturalLess(standings[i].Color, standings[j].Color)
	})

	return standings
}

// Report prints the score board of the series.
func (series *Series) Report(w io.Writer) {
	fmt.Fprintln(w, "╔═════════════════════════════════════════════╗")
	fmt.Fprintf(w, "║ %3s %-18s %5s %6s %7s ║\n", "#", "Color", "Wins", "Win%", "Clicks")
	fmt.Fprintln(w, "╠═════════════════════════════════════════════╣")
	for i, score := range series.Standings() {
		share := 0.0
		if series.Finished > 0 {
			share = 100 * float64(score.Wins) / float64(series.Finished)
		}

		fmt.Fprintf(
			w, "║ %2d. %-18s %5d %5.1f%% %7d ║\n",
			i+1, score.Color, score.Wins, share, score.Clicks,
		)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════╝")
}

package schedule

import (
	"fmt"

	"laptudirm.com/x/derby/pkg/race"
)

// Target is something with clickable participants, like a track.
type Target interface {
	Len() int
	Click(id int) (race.Outcome, error)
}

// Run clicks the target's participants in the order picked by the clicker
// until one of them wins the race. The after function, if not nil, is
// called after every click; an error from it stops the run. Run returns
// the winning outcome and the number of clicks it took.
//
// Every click in a running race moves some participant, so a race with n
// participants always has a winner after n*(FinishLine-1)+1 clicks.
func Run(target Target, clicker Clicker, after func(race.Outcome) error) (race.Outcome, int, error) {
	n := target.Len()
	clicker.Initialize(n)

	limit := n*(race.FinishLine-1) + 1
	for clicks := 1; clicks <= limit; clicks++ {
		outcome, err := target.Click(clicker.Next())
		if err != nil {
			return race.Outcome{}, clicks, err
		}

		if after != nil {
			if err := after(outcome); err != nil {
				return outcome, clicks, err
			}
		}

		switch outcome.Kind {
		case race.Won:
			return outcome, clicks, nil
		case race.Rejected:
			return outcome, clicks, fmt.Errorf("run: click on #%d rejected by a finished race", outcome.ID)
		}
	}

	return race.Outcome{}, limit, fmt.Errorf("run: no winner after %d clicks", limit)
}

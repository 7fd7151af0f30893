package race_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/derby/pkg/race"
)

func newRace(t *testing.T, colors ...string) *race.Race {
	t.Helper()

	r, err := race.New(colors)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestNew(t *testing.T) {
	r := newRace(t, "red", "blue")

	assert.Equal(t, race.Running, r.Status())
	assert.Equal(t, 2, r.Len())

	for id := 0; id < r.Len(); id++ {
		progress, err := r.Progress(id)
		require.NoError(t, err)
		assert.Equal(t, 0, progress)
	}

	participants := r.Participants()
	assert.Equal(t, []race.Participant{
		{ID: 0, Color: "red"},
		{ID: 1, Color: "blue"},
	}, participants)
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"duplicate", []string{"red", "red"}},
		{"duplicate not adjacent", []string{"red", "blue", "green", "blue"}},
		{"empty color", []string{"red", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := race.New(tt.colors)
			require.Error(t, err)
			assert.True(t, errors.Is(err, race.ErrInvalidConfiguration))
			assert.Nil(t, r)
		})
	}
}

func TestAdvanceToWin(t *testing.T) {
	r := newRace(t, "red", "blue")

	for k := 1; k < race.FinishLine; k++ {
		outcome, err := r.Advance(0)
		require.NoError(t, err)
		assert.Equal(t, race.Outcome{Kind: race.Advanced, ID: 0, Progress: k}, outcome)
		assert.True(t, r.Status().Running())
	}

	outcome, err := r.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, race.Outcome{Kind: race.Won, ID: 0, Progress: race.FinishLine}, outcome)
	assert.Equal(t, race.Finished(0), r.Status())

	winner, ok := r.Status().Winner()
	assert.True(t, ok)
	assert.Equal(t, 0, winner)

	// The race is frozen for everyone, including the winner.
	outcome, err = r.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, race.Rejected, outcome.Kind)

	outcome, err = r.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, race.Rejected, outcome.Kind)

	progress, err := r.Progress(1)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	progress, err = r.Progress(0)
	require.NoError(t, err)
	assert.Equal(t, race.FinishLine, progress)
	assert.Equal(t, race.Finished(0), r.Status())
}

func TestReset(t *testing.T) {
	r := newRace(t, "red", "blue")

	// Resetting a fresh race is harmless.
	assert.False(t, r.Reset())
	assert.Equal(t, race.Running, r.Status())

	for i := 0; i < race.FinishLine; i++ {
		_, err := r.Advance(0)
		require.NoError(t, err)
	}
	_, err := r.Advance(1)
	require.NoError(t, err)
	require.False(t, r.Status().Running())

	assert.True(t, r.Reset())
	assert.Equal(t, race.Running, r.Status())
	for id := 0; id < r.Len(); id++ {
		progress, err := r.Progress(id)
		require.NoError(t, err)
		assert.Equal(t, 0, progress)
	}

	// A second reset has nothing left to unfreeze.
	assert.False(t, r.Reset())
	assert.Equal(t, race.Running, r.Status())

	// The race can be won again, by someone else.
	for i := 1; i < race.FinishLine; i++ {
		outcome, err := r.Advance(1)
		require.NoError(t, err)
		assert.Equal(t, race.Advanced, outcome.Kind)
	}
	outcome, err := r.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, race.Won, outcome.Kind)
	assert.Equal(t, race.Finished(1), r.Status())
}

func TestResetWhileRunning(t *testing.T) {
	r := newRace(t, "red", "blue", "green")

	_, err := r.Advance(2)
	require.NoError(t, err)
	_, err = r.Advance(2)
	require.NoError(t, err)

	assert.False(t, r.Reset())
	progress, err := r.Progress(2)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
	assert.Equal(t, race.Running, r.Status())
}

func TestUnknownParticipant(t *testing.T) {
	r := newRace(t, "red", "blue")

	_, err := r.Advance(0)
	require.NoError(t, err)

	for _, id := range []int{-1, 2, 100} {
		outcome, err := r.Advance(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, race.ErrUnknownParticipant))
		assert.Equal(t, race.Outcome{}, outcome)

		var unknown *race.UnknownParticipantError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, id, unknown.ID)
		assert.Equal(t, 2, unknown.Participants)

		_, err = r.Progress(id)
		assert.True(t, errors.Is(err, race.ErrUnknownParticipant))
	}

	assert.Equal(t, []race.Participant{
		{ID: 0, Color: "red", Progress: 1},
		{ID: 1, Color: "blue"},
	}, r.Participants())
}

func TestLookup(t *testing.T) {
	r := newRace(t, "red", "blue", "green")

	id, found := r.Lookup("green")
	assert.True(t, found)
	assert.Equal(t, 2, id)

	_, found = r.Lookup("purple")
	assert.False(t, found)
}

func TestParticipantsIsSnapshot(t *testing.T) {
	r := newRace(t, "red")

	participants := r.Participants()
	participants[0].Progress = 7
	participants[0].Color = "blue"

	progress, err := r.Progress(0)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
	assert.Equal(t, "red", r.Participants()[0].Color)
}

func TestSingleParticipant(t *testing.T) {
	r := newRace(t, "red")

	var outcome race.Outcome
	for i := 0; i < race.FinishLine; i++ {
		var err error
		outcome, err = r.Advance(0)
		require.NoError(t, err)
	}

	assert.Equal(t, race.Won, outcome.Kind)
	assert.Equal(t, race.Finished(0), r.Status())
}

// TestRandomClicks drives races with random clicks and resets, checking
// the invariants of the race after every step.
func TestRandomClicks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	colors := []string{"red", "blue", "green", "yellow"}

	for round := 0; round < 50; round++ {
		r := newRace(t, colors...)
		winners := 0

		for step := 0; step < 200; step++ {
			if rng.Intn(40) == 0 {
				r.Reset()
				winners = 0
				continue
			}

			before := r.Status()
			id := rng.Intn(len(colors))
			outcome, err := r.Advance(id)
			require.NoError(t, err)

			switch outcome.Kind {
			case race.Won:
				winners++
				assert.True(t, before.Running())
				assert.Equal(t, race.FinishLine, outcome.Progress)
			case race.Rejected:
				assert.False(t, before.Running())
				assert.Equal(t, before, r.Status())
			case race.Advanced:
				assert.True(t, r.Status().Running())
			}

			assert.LessOrEqual(t, winners, 1)

			atFinish := 0
			for _, participant := range r.Participants() {
				assert.GreaterOrEqual(t, participant.Progress, 0)
				assert.LessOrEqual(t, participant.Progress, race.FinishLine)
				if participant.Progress == race.FinishLine {
					atFinish++
					winner, ok := r.Status().Winner()
					assert.True(t, ok)
					assert.Equal(t, participant.ID, winner)
				}
			}
			assert.LessOrEqual(t, atFinish, 1)
		}
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "#0 advances to 3", race.Outcome{Kind: race.Advanced, ID: 0, Progress: 3}.String())
	assert.Equal(t, "#1 wins at 10", race.Outcome{Kind: race.Won, ID: 1, Progress: 10}.String())
	assert.Equal(t, "#2 rejected: race is over", race.Outcome{Kind: race.Rejected, ID: 2}.String())
	assert.Equal(t, "illegal outcome", race.Outcome{Kind: race.Kind(9)}.String())

	assert.Equal(t, "running", race.Running.String())
	assert.Equal(t, "finished (#3 won)", race.Finished(3).String())

	assert.Equal(t, "red (#0) at 4/10", race.Participant{ID: 0, Color: "red", Progress: 4}.String())
}

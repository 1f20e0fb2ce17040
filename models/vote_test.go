package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteTransition(t *testing.T) {
	cases := []struct {
		name      string
		existing  VoteType
		requested VoteType
		action    VoteAction
		delta     int
	}{
		{"no vote then up", "", VoteUp, VoteInsert, 1},
		{"no vote then down", "", VoteDown, VoteInsert, -1},
		{"up then up removes", VoteUp, VoteUp, VoteRemove, -1},
		{"down then down removes", VoteDown, VoteDown, VoteRemove, 1},
		{"up then down switches", VoteUp, VoteDown, VoteSwitch, -2},
		{"down then up switches", VoteDown, VoteUp, VoteSwitch, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, delta := VoteTransition(tc.existing, tc.requested)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.delta, delta)
		})
	}
}

func TestVoteTransitionRoundTrip(t *testing.T) {
	// Voting up then up again leaves the tally where it started.
	tally := 5
	_, delta := VoteTransition("", VoteUp)
	tally += delta
	_, delta = VoteTransition(VoteUp, VoteUp)
	tally += delta
	assert.Equal(t, 5, tally)

	// Up then switch to down nets -1 from the start.
	tally = 5
	_, delta = VoteTransition("", VoteUp)
	tally += delta
	_, delta = VoteTransition(VoteUp, VoteDown)
	tally += delta
	assert.Equal(t, 4, tally)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCommitEvent() ActivityEvent {
	return ActivityEvent{
		Type:      EventCommit,
		Repo:      "team/service",
		SHA:       "a1b2c3d4",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func validMergeRequestEvent() ActivityEvent {
	return ActivityEvent{
		Type:           EventMergeRequestApproved,
		Repo:           "team/service",
		MergeRequestID: 42,
		Title:          "Fix login timeout",
		Timestamp:      time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestValidateAcceptsWellFormedEvents(t *testing.T) {
	commit := validCommitEvent()
	assert.NoError(t, commit.Validate())

	mr := validMergeRequestEvent()
	assert.NoError(t, mr.Validate())
}

func TestValidateRejectsMalformedEvents(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ActivityEvent)
	}{
		{"empty repo", func(e *ActivityEvent) { e.Repo = "" }},
		{"zero timestamp", func(e *ActivityEvent) { e.Timestamp = time.Time{} }},
		{"commit without sha", func(e *ActivityEvent) { e.SHA = "" }},
		{"unknown type", func(e *ActivityEvent) { e.Type = "push" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validCommitEvent()
			tc.mutate(&e)
			err := e.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}

	mr := validMergeRequestEvent()
	mr.MergeRequestID = 0
	assert.ErrorIs(t, mr.Validate(), ErrInvalidEvent)
}

func TestSyncStateSeenAndAdvance(t *testing.T) {
	var state SyncState
	commit := validCommitEvent()
	mr := validMergeRequestEvent()

	// 新事件在水位线之外
	assert.False(t, state.Seen(&commit))
	assert.False(t, state.Seen(&mr))

	state.Advance(&commit)
	state.Advance(&mr)

	// 推进后同一事件视为已处理
	assert.True(t, state.Seen(&commit))
	assert.True(t, state.Seen(&mr))

	// 水位线按事件类型独立推进
	later := validCommitEvent()
	later.Timestamp = commit.Timestamp.Add(time.Hour)
	assert.False(t, state.Seen(&later))

	state.Advance(&later)
	assert.Equal(t, later.Timestamp, state.LastCommitAt)
	assert.Equal(t, mr.Timestamp, state.LastMergeRequestAt)
}

func TestSyncStateAdvanceNeverMovesBackwards(t *testing.T) {
	var state SyncState
	commit := validCommitEvent()
	state.Advance(&commit)

	earlier := validCommitEvent()
	earlier.Timestamp = commit.Timestamp.Add(-time.Hour)
	state.Advance(&earlier)

	assert.Equal(t, commit.Timestamp, state.LastCommitAt)
}

package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mec/calendar-engine/calendar"
	"github.com/mec/calendar-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_TrainingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := calendar.Training{
		ID:                1,
		Title:             "Field Training Exercise",
		Type:              calendar.TrainingExercise,
		Date:              "2025-01-15",
		StartTime:         "08:00",
		EndTime:           "17:00",
		Location:          "Training Area 1",
		RequiredPlatforms: []int{1, 2},
		Description:       "Full day field training",
	}
	require.NoError(t, store.SaveTraining(ctx, in))

	trainings, err := store.ListTrainings(ctx)
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, in, trainings[0])
}

func TestStore_LeaveRoundTrip_ApprovalFlagsIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := calendar.Leave{
		ID:           1,
		UserID:       101,
		UserName:     "CPL John Tan",
		PlatformID:   1,
		Type:         calendar.LeaveOff,
		Date:         "2025-01-15",
		Time:         calendar.HalfDayAM,
		ApprovedByIC: true,
		ApprovedByPC: false,
		Details:      "Medical appointment",
	}
	require.NoError(t, store.SaveLeave(ctx, in))

	leaves, err := store.ListLeaves(ctx)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, in, leaves[0])
	assert.True(t, leaves[0].ApprovedByIC)
	assert.False(t, leaves[0].ApprovedByPC)
}

func TestStore_ListOrderedByDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLeave(ctx, calendar.Leave{ID: 2, UserName: "B", PlatformID: 1, Type: calendar.LeaveOff, Date: "2025-01-20"}))
	require.NoError(t, store.SaveLeave(ctx, calendar.Leave{ID: 1, UserName: "A", PlatformID: 1, Type: calendar.LeaveOff, Date: "2025-01-05"}))

	leaves, err := store.ListLeaves(ctx)
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, "2025-01-05", leaves[0].Date)
	assert.Equal(t, "2025-01-20", leaves[1].Date)
}

func TestStore_LoadPayload_AssemblesAllCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePayload(ctx, calendar.Payload{
		Trainings: []calendar.Training{{ID: 1, Title: "Range", Type: calendar.TrainingTraining, Date: "2025-01-15"}},
		Leaves:    []calendar.Leave{{ID: 1, UserName: "CPL John Tan", PlatformID: 1, Type: calendar.LeaveOff, Date: "2025-01-15"}},
		Platforms: []calendar.Platform{{ID: 1, Name: "Alpha", PersonnelCount: 12}},
	}))

	p, err := store.LoadPayload(ctx)
	require.NoError(t, err)
	assert.Len(t, p.Trainings, 1)
	assert.Len(t, p.Leaves, 1)
	assert.Len(t, p.Platforms, 1)
	assert.Equal(t, calendar.UserInfo{}, p.UserInfo, "identity is per-session, never stored")
}

func TestStore_Reset_ClearsEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePlatform(ctx, calendar.Platform{ID: 1, Name: "Alpha", PersonnelCount: 12}))
	require.NoError(t, store.Reset(ctx))

	p, err := store.LoadPayload(ctx)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

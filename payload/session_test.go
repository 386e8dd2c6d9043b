package payload_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mec/calendar-engine/calendar"
	"github.com/mec/calendar-engine/payload"
)

func TestSession_OutsideHost_ErrNoHostContext(t *testing.T) {
	_, err := payload.Session{InHost: false, DataParam: "ignored"}.Resolve()

	assert.ErrorIs(t, err, calendar.ErrNoHostContext)
	assert.True(t, calendar.IsSessionError(err))
}

func TestSession_AllChannelsEmpty_ErrNoPayload(t *testing.T) {
	// Host present, nothing handed over: a blocking "no data" message,
	// NOT an empty calendar.
	_, err := payload.Session{InHost: true}.Resolve()

	assert.ErrorIs(t, err, calendar.ErrNoPayload)
}

func TestSession_ChannelPriority_DataParamWins(t *testing.T) {
	s := payload.Session{
		InHost:     true,
		DataParam:  url.QueryEscape(`{"trainings":[{"id":1,"date":"2025-01-15"}],"leaves":[]}`),
		StartParam: `{"trainings":[{"id":99,"date":"2025-03-03"}],"leaves":[]}`,
		InitData:   map[string]any{"user": map[string]any{"username": "johntan"}},
	}

	p, err := s.Resolve()

	require.NoError(t, err)
	require.Len(t, p.Trainings, 1)
	assert.Equal(t, 1, p.Trainings[0].ID, "data param outranks start param")
}

func TestSession_StartParamFallback(t *testing.T) {
	s := payload.Session{
		InHost:     true,
		StartParam: `{"trainings":[],"leaves":[{"id":5,"user_name":"CPL John Tan","platform_id":1,"type":"OFF","date":"2025-01-15"}]}`,
	}

	p, err := s.Resolve()

	require.NoError(t, err)
	require.Len(t, p.Leaves, 1)
	assert.Equal(t, 5, p.Leaves[0].ID)
}

func TestSession_InitDataFallback_IdentityOnly(t *testing.T) {
	s := payload.Session{
		InHost:   true,
		InitData: map[string]any{"user": map[string]any{"id": 7, "username": "johntan"}},
	}

	p, err := s.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "johntan", p.UserInfo.Username)
	assert.True(t, p.IsEmpty(), "bag channel yields an empty-state calendar")
}

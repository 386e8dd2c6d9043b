package bot_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mec/calendar-engine/bot"
	"github.com/mec/calendar-engine/calendar"
)

func TestSessionErrorMessage_DistinctWordingPerError(t *testing.T) {
	// The two session errors must surface as DIFFERENT user messages.
	noHost := bot.SessionErrorMessage(calendar.ErrNoHostContext)
	noData := bot.SessionErrorMessage(calendar.ErrNoPayload)

	assert.Equal(t, bot.MsgNoHostContext, noHost)
	assert.Equal(t, bot.MsgNoPayload, noData)
	assert.NotEqual(t, noHost, noData)
}

func TestSessionErrorMessage_WrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("bridge: %w", calendar.ErrNoPayload)
	assert.Equal(t, bot.MsgNoPayload, bot.SessionErrorMessage(wrapped))
}

func TestSessionErrorMessage_OtherErrors_Generic(t *testing.T) {
	got := bot.SessionErrorMessage(errors.New("boom"))
	assert.NotEqual(t, bot.MsgNoHostContext, got)
	assert.NotEqual(t, bot.MsgNoPayload, got)
	assert.NotEmpty(t, got)
}

func TestFormatDay_ConflictDayWithViewerLeave(t *testing.T) {
	mine := calendar.Leave{
		ID: 1, UserName: "CPL John Tan", PlatformID: 1, Type: calendar.LeaveOff,
		Date: "2025-01-15", Time: calendar.HalfDayAM, ApprovedByIC: true,
	}
	day := calendar.DaySummary{
		Date:         "2025-01-15",
		DayTrainings: []calendar.Training{{ID: 1, Title: "Field Training Exercise", Type: calendar.TrainingExercise, Location: "Training Area 1"}},
		DayLeaves:    []calendar.Leave{mine, {ID: 2, UserName: "LCP Alex Lim", Type: calendar.LeaveLeave, Date: "2025-01-15"}},
		UserLeaves:   []calendar.Leave{mine},
		HasConflict:  true,
	}

	text := bot.FormatDay(day)

	assert.Contains(t, text, "⚠️")
	assert.Contains(t, text, "Field Training Exercise")
	assert.Contains(t, text, "CPL John Tan — OFF (AM) IC:✅ PC:⏳")
	assert.Contains(t, text, "← YOU")
	assert.Equal(t, 1, strings.Count(text, "← YOU"), "only the viewer's leave is marked")
}

func TestFormatDay_EmptyDay(t *testing.T) {
	day := calendar.AggregateDay(nil, nil, "2025-01-15", nil)

	text := bot.FormatDay(day)

	assert.Contains(t, text, "Nothing scheduled.")
	assert.NotContains(t, text, "⚠️")
}

func TestFormatStrength_RendersAvailability(t *testing.T) {
	platforms := []calendar.Platform{{ID: 1, Name: "Alpha", PersonnelCount: 12}}
	leaves := []calendar.Leave{{ID: 1, UserName: "CPL John Tan", PlatformID: 1, Type: calendar.LeaveOff, Date: "2025-01-15"}}

	text := bot.FormatStrength("2025-01-15", calendar.StrengthByPlatform(platforms, leaves, "2025-01-15"))

	assert.Contains(t, text, "Alpha: 11/12 available (91.7%)")
}

func TestFormatStrength_NoPlatforms(t *testing.T) {
	assert.Equal(t, "No platforms on record.", bot.FormatStrength("2025-01-15", nil))
}

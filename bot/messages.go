/*
messages.go - Chat message formatting

PURPOSE:
  Renders engine outputs as plain chat text. Mirrors the mini-app's
  visual language: ⚔️ for trainings, 👤 for leaves, ⚠️ for conflict days,
  ✅/⏳ for the two independent approval flags.
*/
package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mec/calendar-engine/calendar"
)

const (
	msgHelp = "📅 Unit Calendar\n\n" +
		"/calendar — open the schedule calendar\n" +
		"/today — today's trainings and leaves\n" +
		"/strength — today's platform strength"

	msgUnknownCommand = "Unknown command. Use /help to see what I can do."
	msgOpenCalendar   = "Tap below to open the schedule calendar."
	msgLoadFailed     = "Failed to load schedule data. Please try again."

	// Surfaced by the mini-app, defined here so both sides of the bridge
	// agree on the wording.
	MsgNoHostContext = "Please open this app from Telegram to view your schedule."
	MsgNoPayload     = "No schedule data available. Please use the /calendar command in Telegram."
)

// SessionErrorMessage maps the two session errors to their user-facing
// wording. Any other error gets the generic failure text.
func SessionErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, calendar.ErrNoHostContext):
		return MsgNoHostContext
	case errors.Is(err, calendar.ErrNoPayload):
		return MsgNoPayload
	default:
		return msgLoadFailed
	}
}

// FormatDay renders a day summary the way the detail panel shows it.
func FormatDay(day calendar.DaySummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 %s\n", day.Date)
	fmt.Fprintf(&sb, "%d trainings • %d personnel on leave\n", len(day.DayTrainings), len(day.DayLeaves))

	if day.HasConflict {
		sb.WriteString("⚠️ Training and leave on the same day\n")
	}

	if len(day.DayTrainings) > 0 {
		sb.WriteString("\n⚔️ Trainings\n")
		for _, t := range day.DayTrainings {
			fmt.Fprintf(&sb, "• %s (%s)", t.Title, strings.ToLower(string(t.Type)))
			if t.StartTime != "" || t.EndTime != "" {
				fmt.Fprintf(&sb, " %s-%s", t.StartTime, t.EndTime)
			}
			if t.Location != "" {
				fmt.Fprintf(&sb, " @ %s", t.Location)
			}
			sb.WriteString("\n")
		}
	}

	if len(day.DayLeaves) > 0 {
		sb.WriteString("\n👤 On leave\n")
		for _, l := range day.DayLeaves {
			fmt.Fprintf(&sb, "• %s — %s", l.UserName, l.Type)
			if l.IsHalfDay() {
				fmt.Fprintf(&sb, " (%s)", l.Time)
			}
			fmt.Fprintf(&sb, " IC:%s PC:%s", approvalMark(l.ApprovedByIC), approvalMark(l.ApprovedByPC))
			if isOwn(day.UserLeaves, l) {
				sb.WriteString(" ← YOU")
			}
			sb.WriteString("\n")
		}
	}

	if len(day.DayTrainings) == 0 && len(day.DayLeaves) == 0 {
		sb.WriteString("Nothing scheduled.\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatStrength renders per-platform availability as chat lines.
func FormatStrength(date string, strengths []calendar.PlatformStrength) string {
	if len(strengths) == 0 {
		return "No platforms on record."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🛡 Platform strength — %s\n", date)
	for _, s := range strengths {
		fmt.Fprintf(&sb, "• %s: %d/%d available (%s%%)\n", s.Name, s.Available, s.Personnel, s.Availability)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func approvalMark(approved bool) string {
	if approved {
		return "✅"
	}
	return "⏳"
}

func isOwn(userLeaves []calendar.Leave, l calendar.Leave) bool {
	for _, ul := range userLeaves {
		if ul.ID == l.ID {
			return true
		}
	}
	return false
}

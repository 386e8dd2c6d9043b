/*
Package bot is the chat-platform bridge for the schedule calendar.

PURPOSE:
  Delivers schedule data to users inside the chat platform. Two surfaces:

  1. /calendar opens the mini-app with the full payload URL-encoded in the
     "data" query parameter - the first retrieval channel the mini-app's
     host bridge checks.
  2. /today and /strength render the same roll-ups the mini-app header
     shows, as plain chat messages for users who never open the app.

WHY THE URL CARRIES THE PAYLOAD:
  The mini-app is static; it has no session with this server. Encoding
  the payload into the opening URL means the app works even when it
  cannot reach the API origin from the webview.

SEE ALSO:
  - payload/session.go: The channels the mini-app resolves, in order
  - messages.go: Chat message formatting
*/
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mec/calendar-engine/calendar"
	"github.com/mec/calendar-engine/store/sqlite"
)

// Bot wraps the chat client and its dependencies.
type Bot struct {
	api       *tgbotapi.BotAPI
	store     *sqlite.Store
	webAppURL string
}

// New creates a bot for the given token. webAppURL is the base URL the
// mini-app is served from.
func New(token, webAppURL string, store *sqlite.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot client: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{api: api, store: store, webAppURL: webAppURL}, nil
}

// Run consumes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	logrus.Infof("[%s] %s", message.From.UserName, message.Text)

	if !message.IsCommand() {
		b.reply(message.Chat.ID, msgHelp)
		return
	}

	switch message.Command() {
	case "start", "help":
		b.reply(message.Chat.ID, msgHelp)
	case "calendar":
		b.sendCalendar(message)
	case "today":
		b.sendToday(message)
	case "strength":
		b.sendStrength(message)
	default:
		b.reply(message.Chat.ID, msgUnknownCommand)
	}
}

// sendCalendar answers with a button opening the mini-app, the payload
// URL-encoded into the opening URL.
func (b *Bot) sendCalendar(message *tgbotapi.Message) {
	ctx := context.Background()
	p, err := b.store.LoadPayload(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load payload")
		b.reply(message.Chat.ID, msgLoadFailed)
		return
	}
	p.UserInfo = viewerFromMessage(message)

	openURL, err := b.CalendarURL(p)
	if err != nil {
		logrus.WithError(err).Error("failed to build calendar URL")
		b.reply(message.Chat.ID, msgLoadFailed)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, msgOpenCalendar)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📅 Open Calendar", openURL),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Error("failed to send calendar message")
	}
}

// sendToday renders the header roll-up for today's date.
func (b *Bot) sendToday(message *tgbotapi.Message) {
	ctx := context.Background()
	p, err := b.store.LoadPayload(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load payload")
		b.reply(message.Chat.ID, msgLoadFailed)
		return
	}

	viewer := viewerFromMessage(message)
	filtered := calendar.FilterLeaves(p.Leaves, calendar.DefaultFilters())
	day := calendar.AggregateDay(p.Trainings, filtered, calendar.Today(), &viewer)
	b.reply(message.Chat.ID, FormatDay(day))
}

// sendStrength renders today's per-platform availability.
func (b *Bot) sendStrength(message *tgbotapi.Message) {
	ctx := context.Background()
	p, err := b.store.LoadPayload(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load payload")
		b.reply(message.Chat.ID, msgLoadFailed)
		return
	}

	strengths := calendar.StrengthByPlatform(p.Platforms, p.Leaves, calendar.Today())
	b.reply(message.Chat.ID, FormatStrength(calendar.Today(), strengths))
}

// CalendarURL builds the mini-app opening URL with the payload in the
// "data" query parameter.
func (b *Bot) CalendarURL(p calendar.Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return b.webAppURL + "?data=" + url.QueryEscape(string(data)), nil
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Error("failed to send message")
	}
}

// viewerFromMessage derives the viewer identity from the chat account.
// Only the fields the sender actually exposes are filled; a user without
// a username simply gets no "YOU" highlighting.
func viewerFromMessage(message *tgbotapi.Message) calendar.UserInfo {
	if message.From == nil {
		return calendar.UserInfo{}
	}
	return calendar.UserInfo{
		ID:        message.From.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
	}
}

package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reporter renders dashboard views as chat messages.
type Reporter interface {
	TodayReport(ctx context.Context, sport string) (string, error)
	ScheduleReport(ctx context.Context, sport, team string) (string, error)
	StandingsReport(ctx context.Context, sport, which string) (string, error)
	TeamReport(ctx context.Context, sport, name string) (string, error)
	LeadersReport(ctx context.Context, sport, card string) (string, error)
	PlayerReport(ctx context.Context, sport, name string) (string, error)
}

const helpText = "Available commands:\n" +
	"/today - Today's games\n" +
	"/schedule [team] - This week's schedule\n" +
	"/standings [east|west|league|division] - Standings\n" +
	"/team <team> - Team roster leaders and recent games\n" +
	"/leaders [card] - League leaders\n" +
	"/player <name> - A player's last five games"

type Handler struct {
	reporter Reporter
	sport    string
}

func NewHandler(reporter Reporter, sport string) *Handler {
	return &Handler{reporter: reporter, sport: sport}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Welcome to Courtside! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "today":
		h.reply(&msg, "fetching today's games", func() (string, error) {
			return h.reporter.TodayReport(ctx, h.sport)
		})
	case "schedule":
		h.reply(&msg, "fetching schedule", func() (string, error) {
			return h.reporter.ScheduleReport(ctx, h.sport, args)
		})
	case "standings":
		h.reply(&msg, "fetching standings", func() (string, error) {
			return h.reporter.StandingsReport(ctx, h.sport, args)
		})
	case "team":
		if args == "" {
			msg.Text = "Please provide a team name. Usage: /team <team name>"
			return msg
		}
		h.reply(&msg, "getting team", func() (string, error) {
			return h.reporter.TeamReport(ctx, h.sport, args)
		})
	case "leaders":
		h.reply(&msg, "fetching leaders", func() (string, error) {
			return h.reporter.LeadersReport(ctx, h.sport, args)
		})
	case "player":
		if args == "" {
			msg.Text = "Please provide a player name. Usage: /player <player name>"
			return msg
		}
		h.reply(&msg, "getting player", func() (string, error) {
			return h.reporter.PlayerReport(ctx, h.sport, args)
		})
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, action string, report func() (string, error)) {
	text, err := report()
	if err != nil {
		msg.Text = fmt.Sprintf("Error %s: %v", action, err)
		msg.ParseMode = ""
		return
	}
	msg.Text = text
}

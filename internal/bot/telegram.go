package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of tgbotapi.BotAPI the update loop replies through.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramBot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

// NewTelegramBot answers commands from any chat. When chatID is set, only
// that chat is served.
func NewTelegramBot(token string, chatID int64, reporter Reporter, sport string) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		api:     api,
		handler: NewHandler(reporter, sport),
		chatID:  chatID,
	}, nil
}

// Start long-polls for commands until ctx is cancelled.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.api.Self.UserName, "chat_id", t.chatID)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	serve(ctx, updates, t.api, t.handler, t.chatID)
	return nil
}

func serve(ctx context.Context, updates <-chan tgbotapi.Update, out sender, h *Handler, chatID int64) {
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if !accepts(update, chatID) {
				continue
			}

			msg := h.HandleCommand(ctx, update)
			if _, err := out.Send(msg); err != nil {
				slog.Error("Error sending message", "chat_id", msg.ChatID, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func accepts(update tgbotapi.Update, chatID int64) bool {
	if update.Message == nil || !update.Message.IsCommand() {
		return false
	}
	if chatID != 0 && update.Message.Chat.ID != chatID {
		slog.Warn("Ignoring command from unknown chat", "chat_id", update.Message.Chat.ID)
		return false
	}
	return true
}

package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"telegram-llm-relay/internal/chat"
	pkgLog "telegram-llm-relay/pkg/log"
	pkgTelegram "telegram-llm-relay/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	// HandleWebhook accepts updates pushed by Telegram.
	HandleWebhook(c *gin.Context)

	// Poll long-polls getUpdates until ctx is cancelled.
	Poll(ctx context.Context, timeoutSeconds int) error

	// Wait blocks until every in-flight update has been handled.
	Wait()
}

// Bot is the subset of the Bot API client the handler uses.
type Bot interface {
	GetUpdates(ctx context.Context, offset int64, timeout int) ([]pkgTelegram.Update, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendForceReply(ctx context.Context, chatID int64, text string) error
}

// Options configures the delivery handler.
type Options struct {
	// WebhookSecret must match the X-Telegram-Bot-Api-Secret-Token header on
	// webhook requests. Empty disables the check (polling mode).
	WebhookSecret string
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Bot, opts Options) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		bot:           bot,
		webhookSecret: opts.WebhookSecret,
	}
}

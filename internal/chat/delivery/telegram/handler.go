package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"html"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"telegram-llm-relay/internal/chat"
	"telegram-llm-relay/internal/model"
	pkgLog "telegram-llm-relay/pkg/log"
	pkgResponse "telegram-llm-relay/pkg/response"
	pkgTelegram "telegram-llm-relay/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Bot

	webhookSecret string
	inflight      sync.WaitGroup
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine, since a model call can outlast Telegram's webhook
// timeout.
//
// @Summary     Telegram webhook
// @Description Receives a Telegram Update and relays its text to the language model.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Param       update body     pkgTelegram.Update true "Telegram update"
// @Param       X-Telegram-Bot-Api-Secret-Token header string false "secret_token given to setWebhook"
// @Success     200    {object} pkgResponse.Resp
// @Failure     400    {object} pkgResponse.Resp
// @Failure     401    {object} pkgResponse.Resp
// @Router      /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.validSecret(c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected webhook request from %s: bad secret token", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.dispatch(update.Message)

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// dispatch handles msg in its own goroutine, detached from any request
// context. A panic is logged and swallowed so one bad update cannot take the
// process down.
func (h *handler) dispatch(msg *pkgTelegram.Message) {
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		ctx := pkgLog.WithTraceID(context.Background())
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(ctx, "telegram handler: panic while handling update: %v\n%s", r, debug.Stack())
			}
		}()

		if err := h.processMessage(ctx, msg); err != nil {
			h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		}
	}()
}

// Wait blocks until every dispatched message has been handled.
func (h *handler) Wait() {
	h.inflight.Wait()
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Chat == nil {
		return fmt.Errorf("message %d has no chat", msg.MessageID)
	}
	// Stickers, photos and the like carry no text.
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	if cmd, ok := parseCommand(msg.Text); ok {
		switch cmd {
		case "start":
			return h.bot.SendForceReply(ctx, msg.Chat.ID, welcomeMessage(msg.From))
		case "help":
			return h.bot.SendMessage(ctx, msg.Chat.ID, chat.HelpMessage)
		default:
			// Unknown commands are not relayed to the model.
			return nil
		}
	}

	out := h.uc.Reply(ctx, scopeOf(msg), chat.ReplyInput{
		Text:            msg.Text,
		ConversationKey: fmt.Sprintf("%d", msg.Chat.ID),
	})

	h.l.Debug(ctx, "telegram handler: replying", "chat_id", msg.Chat.ID, "outcome", out.Outcome.String())

	text := out.Text
	if text == "" {
		h.l.Warnf(ctx, "telegram handler: empty reply (outcome %s), sending apology", out.Outcome)
		text = chat.ApologyReply
	}

	err := h.bot.SendMessage(ctx, msg.Chat.ID, text)
	if err == nil || text == chat.ApologyReply {
		return err
	}

	h.l.Errorf(ctx, "telegram handler: failed to send reply, sending apology: %v", err)
	if err := h.bot.SendMessage(ctx, msg.Chat.ID, chat.ApologyReply); err != nil {
		return fmt.Errorf("failed to send apology: %w", err)
	}
	return nil
}

// validSecret reports whether token matches the configured webhook secret.
func (h *handler) validSecret(token string) bool {
	if h.webhookSecret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookSecret)) == 1
}

// parseCommand returns the bot command in text, without the leading slash
// or any @botname suffix.
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := strings.Fields(text[1:])
	if len(cmd) == 0 {
		return "", true
	}
	name, _, _ := strings.Cut(cmd[0], "@")
	return strings.ToLower(name), true
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
		sc.FirstName = msg.From.FirstName
	}
	return sc
}

func welcomeMessage(from *pkgTelegram.User) string {
	name := "there"
	if from != nil && from.FirstName != "" {
		name = html.EscapeString(from.FirstName)
	}
	return fmt.Sprintf(chat.WelcomeTemplate, name)
}

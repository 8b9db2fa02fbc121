package telegram

import "time"

const (
	// DefaultAPIBase is the Bot API root; the token is appended as /bot<token>.
	DefaultAPIBase = "https://api.telegram.org"

	// MaxMessageLength is the Bot API limit for sendMessage text.
	MaxMessageLength = 4096

	// Telegram allows roughly 30 messages per second per bot.
	sendRatePerSecond = 30
	sendBurst         = 5

	defaultHTTPTimeout = 30 * time.Second

	ParseModeHTML = "HTML"

	// SecretTokenHeader carries the secret_token given to setWebhook.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"
)

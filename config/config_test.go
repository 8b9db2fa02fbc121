package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"telegram-llm-relay/internal/conversation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "123:abc"
llm:
  model: "tinyllama-1.1b-chat"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Telegram.Mode != TelegramModePolling || cfg.Telegram.PollTimeout != 30 {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if cfg.LLM.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("base url = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Temperature != 0.5 || cfg.LLM.MaxTokens != 200 {
		t.Errorf("generation params = %v / %d", cfg.LLM.Temperature, cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("timeout = %s", cfg.LLM.Timeout)
	}
	if cfg.Conversation.Scope != "global" || cfg.Conversation.SystemPrompt != conversation.DefaultSystemPrompt {
		t.Errorf("conversation = %+v", cfg.Conversation)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "from-file"
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_BASE_URL", "http://10.0.0.5:1234/v1")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("bot token = %q", cfg.Telegram.BotToken)
	}
	if cfg.LLM.Model != "env-model" || cfg.LLM.BaseURL != "http://10.0.0.5:1234/v1" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing token", "llm:\n  model: m\n", ErrBotTokenRequired},
		{"missing model", "telegram:\n  bot_token: t\n", ErrModelRequired},
		{"webhook without url", "telegram:\n  bot_token: t\n  mode: webhook\nllm:\n  model: m\n", ErrWebhookURLRequired},
		{"webhook without secret", "telegram:\n  bot_token: t\n  mode: webhook\n  webhook_url: https://x/webhook/telegram\nllm:\n  model: m\n", ErrWebhookSecretRequired},
		{"webhook secret with bad characters", "telegram:\n  bot_token: t\n  mode: webhook\n  webhook_url: https://x/webhook/telegram\n  webhook_secret: \"not allowed!\"\nllm:\n  model: m\n", ErrWebhookSecretInvalid},
		{"zero max tokens", "telegram:\n  bot_token: t\nllm:\n  model: m\n  max_tokens: 0\n", ErrMaxTokensInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadFile(writeConfig(t, "telegram:\n  bot_token: t\n  mode: carrier-pigeon\nllm:\n  model: m\n")); err == nil {
		t.Error("expected error for unknown telegram.mode")
	}
}

func TestLoadFile_ExplicitZeroTemperature(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: t
llm:
  model: m
  temperature: 0
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", cfg.LLM.Temperature)
	}
}

func TestLoadFile_Webhook(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: t
  mode: webhook
  webhook_url: https://relay.example.com/webhook/telegram
  webhook_secret: s3cret_Token-1
llm:
  model: m
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.Mode != TelegramModeWebhook || cfg.Telegram.WebhookSecret != "s3cret_Token-1" {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
}

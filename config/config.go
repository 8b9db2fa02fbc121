package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"telegram-llm-relay/internal/conversation"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay
	Telegram     TelegramConfig
	LLM          LLMConfig
	Conversation ConversationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

const (
	TelegramModePolling = "polling"
	TelegramModeWebhook = "webhook"
)

type TelegramConfig struct {
	BotToken    string
	Mode        string // "polling" or "webhook"
	WebhookURL  string
	PollTimeout int // seconds

	// WebhookSecret is passed to setWebhook as secret_token and checked on
	// every webhook request. Required in webhook mode.
	WebhookSecret string
}

// LLMConfig describes the OpenAI-compatible completion endpoint.
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type ConversationConfig struct {
	SystemPrompt string
	Scope        string // "global" or "chat"
	MaxChats     int
}

var (
	ErrBotTokenRequired      = errors.New("telegram bot token is required (telegram.bot_token or TELEGRAM_BOT_TOKEN)")
	ErrModelRequired         = errors.New("model identifier is required (llm.model or LLM_MODEL)")
	ErrWebhookURLRequired    = errors.New("telegram.webhook_url is required in webhook mode")
	ErrWebhookSecretRequired = errors.New("telegram.webhook_secret is required in webhook mode")
	ErrWebhookSecretInvalid  = errors.New("telegram.webhook_secret must be 1-256 characters of A-Z, a-z, 0-9, _ and -")
	ErrMaxTokensInvalid      = errors.New("llm.max_tokens must be positive")
)

// Telegram's accepted alphabet for secret_token.
var webhookSecretPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}$`)

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.Mode = strings.ToLower(v.GetString("telegram.mode"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.PollTimeout = v.GetInt("telegram.poll_timeout")

	// LLM
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")

	// Conversation
	cfg.Conversation.SystemPrompt = v.GetString("conversation.system_prompt")
	cfg.Conversation.Scope = strings.ToLower(v.GetString("conversation.scope"))
	cfg.Conversation.MaxChats = v.GetInt("conversation.max_chats")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("telegram.mode", TelegramModePolling)
	v.SetDefault("telegram.poll_timeout", 30)

	// LM Studio defaults
	v.SetDefault("llm.base_url", "http://localhost:1234/v1")
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.max_tokens", 200)
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("conversation.system_prompt", conversation.DefaultSystemPrompt)
	v.SetDefault("conversation.scope", "global")
	v.SetDefault("conversation.max_chats", 1000)

	// Flat env names (TELEGRAM_BOT_TOKEN, LLM_MODEL, ...) resolve through the
	// "." -> "_" replacer once the keys are known to viper.
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.webhook_url", "")
	v.SetDefault("telegram.webhook_secret", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
}

func (c *Config) validate() error {
	if c.Telegram.BotToken == "" {
		return ErrBotTokenRequired
	}
	if c.LLM.Model == "" {
		return ErrModelRequired
	}
	if c.LLM.MaxTokens <= 0 {
		return ErrMaxTokensInvalid
	}
	switch c.Telegram.Mode {
	case TelegramModePolling:
	case TelegramModeWebhook:
		if c.Telegram.WebhookURL == "" {
			return ErrWebhookURLRequired
		}
		if c.Telegram.WebhookSecret == "" {
			return ErrWebhookSecretRequired
		}
		if !webhookSecretPattern.MatchString(c.Telegram.WebhookSecret) {
			return ErrWebhookSecretInvalid
		}
	default:
		return fmt.Errorf("unknown telegram.mode %q (want %q or %q)",
			c.Telegram.Mode, TelegramModePolling, TelegramModeWebhook)
	}
	return nil
}

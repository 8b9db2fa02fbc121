package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"telegram-llm-relay/config"
	_ "telegram-llm-relay/docs" // Swagger docs
	tgDelivery "telegram-llm-relay/internal/chat/delivery/telegram"
	"telegram-llm-relay/internal/chat/usecase"
	"telegram-llm-relay/internal/conversation"
	"telegram-llm-relay/internal/httpserver"
	"telegram-llm-relay/pkg/completion"
	"telegram-llm-relay/pkg/log"
	"telegram-llm-relay/pkg/telegram"
)

// @title       Telegram LLM Relay
// @description Relays Telegram chat messages to an OpenAI-compatible completion endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Telegram LLM relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Completion endpoint: %s (model %s)", cfg.LLM.BaseURL, cfg.LLM.Model)

	// 3. Chat domain
	llmClient, err := completion.New(completion.Config{
		BaseURL:    cfg.LLM.BaseURL,
		Model:      cfg.LLM.Model,
		APIKey:     cfg.LLM.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
	})
	if err != nil {
		logger.Error(ctx, "Failed to create completion client: ", err)
		os.Exit(1)
	}

	registry, err := conversation.NewRegistry(conversation.RegistryConfig{
		Scope:        conversation.Scope(cfg.Conversation.Scope),
		SystemPrompt: cfg.Conversation.SystemPrompt,
		MaxChats:     cfg.Conversation.MaxChats,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create conversation registry: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Conversation scope: %s", registry.Scope())

	chatUC := usecase.New(logger, llmClient, registry, usecase.Options{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	bot := telegram.NewBot(cfg.Telegram.BotToken)
	telegramHandler := tgDelivery.New(logger, chatUC, bot, tgDelivery.Options{
		WebhookSecret: cfg.Telegram.WebhookSecret,
	})

	// 4. Inbound transport
	var webhookHandler tgDelivery.Handler
	switch cfg.Telegram.Mode {
	case config.TelegramModeWebhook:
		if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			logger.Error(ctx, "Failed to set Telegram webhook: ", err)
			os.Exit(1)
		}
		logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
		webhookHandler = telegramHandler
	default:
		if err := bot.DeleteWebhook(ctx); err != nil {
			logger.Warnf(ctx, "Failed to clear Telegram webhook before polling: %v", err)
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	if cfg.Telegram.Mode == config.TelegramModePolling {
		g.Go(func() error { return telegramHandler.Poll(gctx, cfg.Telegram.PollTimeout) })
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Relay stopped with error: ", err)
	}

	telegramHandler.Wait()
	logger.Info(ctx, "Relay stopped gracefully")
}

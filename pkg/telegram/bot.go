package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", DefaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		limiter:    rate.NewLimiter(rate.Limit(sendRatePerSecond), sendBurst),
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty
// secretToken is echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token
// header of every webhook request.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	payload := map[string]string{"url": webhookURL}
	if secretToken != "" {
		payload["secret_token"] = secretToken
	}
	if _, err := b.call(ctx, "setWebhook", payload); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// DeleteWebhook removes any registered webhook so getUpdates can be used.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	if _, err := b.call(ctx, "deleteWebhook", map[string]bool{"drop_pending_updates": false}); err != nil {
		return fmt.Errorf("telegram deleteWebhook failed: %w", err)
	}
	return nil
}

// GetUpdates long-polls for updates with update_id >= offset.
// timeout is the server-side wait in seconds.
func (b *Bot) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("timeout", strconv.Itoa(timeout))
	params.Set("allowed_updates", `["message"]`)

	// The HTTP client timeout must outlive the long poll.
	pollCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second+defaultHTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pollCtx, http.MethodGet,
		b.apiURL+"/getUpdates?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create getUpdates request: %w", err)
	}

	client := *b.httpClient
	client.Timeout = 0
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates request failed: %w", err)
	}
	defer resp.Body.Close()

	apiResp, err := decodeResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates failed: %w", err)
	}

	var updates []Update
	if err := json.Unmarshal(apiResp.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to parse getUpdates result: %w", err)
	}
	return updates, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, SendMessageRequest{ChatID: chatID, Text: truncate(text, MaxMessageLength)})
}

// SendForceReply sends an HTML message that opens the reply box for the
// mentioned user.
func (b *Bot) SendForceReply(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        truncate(text, MaxMessageLength),
		ParseMode:   ParseModeHTML,
		ReplyMarkup: &ForceReply{ForceReply: true, Selective: true},
	})
}

func (b *Bot) send(ctx context.Context, payload SendMessageRequest) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	if _, err := b.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// call POSTs payload as JSON to the given Bot API method.
func (b *Bot) call(ctx context.Context, method string, payload any) (*APIResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) (*APIResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, apiResp.Description)
	}
	return &apiResp, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}

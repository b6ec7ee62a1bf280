package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	defaultTimeout = 10 * time.Second
)

// Bot is a minimal Telegram Bot API client: it registers the webhook and sends
// plain-text replies.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the bot endpoint, token included. Used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook points Telegram at webhookURL. A non-empty secretToken is echoed
// back by Telegram in the X-Telegram-Bot-Api-Secret-Token header of every call.
func (b *Bot) SetWebhook(webhookURL, secretToken string) error {
	return b.call("setWebhook", SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message"},
	})
}

// SendMessage sends a plain text message to a chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.call("sendMessage", SendMessageRequest{ChatID: chatID, Text: text})
}

func (b *Bot) call(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	resp, err := b.httpClient.Post(fmt.Sprintf("%s/%s", b.apiURL, method), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: status %d: decode response: %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed (%d): %s", method, apiResp.ErrorCode, apiResp.Description)
	}
	return nil
}

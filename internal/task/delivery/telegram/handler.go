package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
	pkgResponse "task-tracker/pkg/response"
	pkgTelegram "task-tracker/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 at once and runs the commands in a background goroutine;
// Telegram retries updates that are not acknowledged within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Polls, edits, channel posts and so on.
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			if msg.Chat != nil {
				_ = h.bot.SendMessage(msg.Chat.ID, failureText)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs every non-blank line of the message as its own command and
// sends the replies back in one message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Chat == nil {
		return errNoChat
	}
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	switch strings.TrimSpace(msg.Text) {
	case cmdStart, cmdHelp:
		return h.send(msg.Chat.ID, helpText)
	}

	var replies []string
	for _, line := range splitLines(msg.Text) {
		out, err := h.uc.Execute(ctx, task.ExecuteInput{Line: line})
		if err != nil {
			return err
		}
		replies = append(replies, out.Reply)
	}

	return h.send(msg.Chat.ID, strings.Join(replies, "\n\n"))
}

func (h *handler) send(chatID int64, text string) error {
	for _, part := range chunk(text, maxMessageLen) {
		if err := h.bot.SendMessage(chatID, part); err != nil {
			return err
		}
	}
	return nil
}

// splitLines drops blank lines and a trailing carriage return. Other whitespace
// is kept as typed.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// chunk cuts text into pieces of at most size runes, preferring line breaks.
func chunk(text string, size int) []string {
	var parts []string
	for {
		runes := []rune(text)
		if len(runes) <= size {
			return append(parts, text)
		}
		cut := string(runes[:size])
		if i := strings.LastIndex(cut, "\n"); i > 0 {
			cut = cut[:i]
		}
		parts = append(parts, cut)
		text = strings.TrimPrefix(text[len(cut):], "\n")
	}
}

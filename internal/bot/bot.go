// Package bot provides the Telegram adapter. It is a thin client of the
// HTTP API: every incoming message becomes one chat request keyed by the
// Telegram chat ID.
package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/model"
	"github.com/psychohealer/psychohealer/pkg/logger"
)

const welcomeMessage = `Welcome to PsychoHealer Bot!

I'm here to provide psychological support and guidance.
Just send me a message about what's on your mind, and I'll help you through it.

Commands:
/help - Show help information
/clear - Clear our conversation history`

const helpMessage = `How to use PsychoHealer Bot:

- Simply type your thoughts, feelings, or questions
- I'll provide supportive psychological guidance
- Our conversation is private and confidential

Examples:
- "I'm feeling anxious about work"
- "How can I manage stress better?"
- "I'm having trouble with relationships"

Note: This is for general support, not professional therapy.`

// maxBotVideos caps how many recommendations fit in one Telegram message.
const maxBotVideos = 3

// Bot long-polls Telegram updates and relays queries to the API server.
type Bot struct {
	api        *tgbotapi.BotAPI
	client     *http.Client
	apiBaseURL string
	logger     *logger.Logger
}

// New creates a bot for the given token, talking to the API at apiBaseURL.
func New(token, apiBaseURL string, log *logger.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("Telegram bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return &Bot{
		api:        api,
		client:     &http.Client{Timeout: 60 * time.Second},
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		logger:     log,
	}, nil
}

// Run polls updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot polling started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeMessage)
		return
	case "help":
		b.reply(msg.Chat.ID, helpMessage)
		return
	case "clear":
		b.reply(msg.Chat.ID, "Conversation history cleared! Let's start fresh.")
		return
	}

	userID := strconv.FormatInt(msg.Chat.ID, 10)
	resp, err := b.chat(ctx, msg.Text, userID)
	if err != nil {
		b.logger.Error("chat request failed", zap.Error(err), zap.String("user_id", userID))
		b.reply(msg.Chat.ID, "I'm having trouble reaching the service right now. Please try again in a moment.")
		return
	}

	b.reply(msg.Chat.ID, formatResponse(resp))
}

func (b *Bot) chat(ctx context.Context, query, userID string) (*model.ChatResponse, error) {
	body, err := json.Marshal(model.ChatRequest{Query: query, UserID: userID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.apiBaseURL+"/api/v1/psychology/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat endpoint returned status %d", httpResp.StatusCode)
	}

	var resp model.ChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("failed to send Telegram message", zap.Error(err))
	}
}

// formatResponse renders the API response plus a short video list.
func formatResponse(resp *model.ChatResponse) string {
	var sb strings.Builder
	sb.WriteString(resp.Response)

	if len(resp.YouTubeVideos) > 0 {
		sb.WriteString("\n\n🎥 Recommended Videos:\n")
		videos := resp.YouTubeVideos
		if len(videos) > maxBotVideos {
			videos = videos[:maxBotVideos]
		}
		for i, v := range videos {
			fmt.Fprintf(&sb, "%d. %s\n%s\n", i+1, v.Title, v.URL)
		}
	}

	return sb.String()
}

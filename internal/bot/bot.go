package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"teatally/internal/logger"
	"teatally/internal/models"
)

// Handler runs the Telegram bot loop and translates chat commands into
// backend calls. All domain logic lives behind the Client; the bot only
// registers identities and hands out auth links.
type Handler struct {
	bot *tgbotapi.BotAPI
	api *Client
}

// NewHandler creates a bot handler for the given bot token.
func NewHandler(botToken string, api *Client) (*Handler, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Handler{bot: bot, api: api}, nil
}

// Start consumes Telegram updates until the context is cancelled.
func (h *Handler) Start(ctx context.Context) error {
	logger.Get().Infof("Authorized on account %s", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Every contact registers or refreshes the user before anything else.
	if err := h.api.RegisterUser(ctx, message.From.ID, message.From.UserName, fullName(message.From)); err != nil {
		logger.Get().Errorw("failed to register user", "telegram_id", message.From.ID, "error", err)
		h.reply(message.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	if !message.IsCommand() {
		h.reply(message.Chat.ID, "I only understand commands. Try /help.")
		return
	}

	switch message.Command() {
	case "start":
		h.handleStart(message)
	case "rate":
		h.handleLink(ctx, message, models.PurposeRatingPage,
			"Here is your rating page:")
	case "results":
		h.handleLink(ctx, message, models.PurposeResultPage,
			"Here are the results:")
	case "admin":
		h.handleLink(ctx, message, models.PurposeAdminPanel,
			"Here is your admin panel link. It works once:")
	case "help":
		h.handleStart(message)
	default:
		h.reply(message.Chat.ID, "Unknown command. Try /help.")
	}
}

func (h *Handler) handleStart(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, strings.Join([]string{
		"Welcome to TeaTally, the collective tea tasting table.",
		"",
		"/rate <tasting-id> - get a link to rate the current samples",
		"/results <tasting-id> - get a link to the tasting results",
		"/admin - get an admin panel link (admins only)",
	}, "\n"))
}

func (h *Handler) handleLink(ctx context.Context, message *tgbotapi.Message, purpose models.LinkPurpose, caption string) {
	var linkContext map[string]string
	if arg := strings.TrimSpace(message.CommandArguments()); arg != "" {
		linkContext = map[string]string{"tasting_id": arg}
	}

	url, expires, err := h.api.IssueLink(ctx, message.From.ID, string(purpose), linkContext)
	if err != nil {
		h.reply(message.Chat.ID, linkErrorText(err))
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("%s\n%s\n\nValid until %s.",
		caption, url, expires.Local().Format("15:04")))
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		logger.Get().Errorw("failed to send message", "chat_id", chatID, "error", err)
	}
}

// linkErrorText maps backend error codes to user-facing chat messages.
func linkErrorText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case "FORBIDDEN":
			return "This command is for admins only."
		case "USER_NOT_FOUND":
			return "You are not registered yet. Send /start first."
		case "INVALID_INPUT":
			return "That does not look right. Try /help."
		}
	}
	return "Something went wrong, please try again later."
}

func fullName(user *tgbotapi.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	return name
}

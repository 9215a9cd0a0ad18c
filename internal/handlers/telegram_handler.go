package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teatally/internal/errors"
	"teatally/internal/services"
)

// TelegramHandler handles registration calls from the bot gateway.
type TelegramHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewTelegramHandler creates a new TelegramHandler.
func NewTelegramHandler(userService services.UserServicer, auditService services.AuditServicer) *TelegramHandler {
	return &TelegramHandler{userService: userService, auditService: auditService}
}

// RegisterRequest represents the registration payload sent by the bot gateway.
type RegisterRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
}

// Register registers a Telegram user (called by the bot gateway)
// @Summary     Register a Telegram user
// @Description Create or refresh a user record keyed by Telegram ID (internal endpoint)
// @Tags        internal
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "Telegram identity"
// @Success     200 {object} object "Registration status"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /telegram/register [post]
// @Security    BotKey
func (h *TelegramHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.RegisterFromTelegram(req.TelegramID, req.Username, req.FullName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "REGISTER_TELEGRAM", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teatally/internal/errors"
	"teatally/internal/models"
	"teatally/internal/services"
)

// AuthLinkHandler handles auth-link issuance and resolution.
type AuthLinkHandler struct {
	authLinkService services.AuthLinkServicer
	auditService    services.AuditServicer
}

// NewAuthLinkHandler creates a new AuthLinkHandler.
func NewAuthLinkHandler(authLinkService services.AuthLinkServicer, auditService services.AuditServicer) *AuthLinkHandler {
	return &AuthLinkHandler{authLinkService: authLinkService, auditService: auditService}
}

// IssueLinkRequest represents the request to issue an auth link.
type IssueLinkRequest struct {
	TelegramID int64             `json:"telegram_id" binding:"required"`
	Purpose    string            `json:"purpose" binding:"required,link_purpose"`
	Context    map[string]string `json:"context"`
}

// IssueLink issues a time-boxed capability link (called by the bot gateway)
// @Summary     Issue an auth link
// @Description Issue an opaque, purpose-scoped link for a registered Telegram user (internal endpoint)
// @Tags        internal
// @Accept      json
// @Produce     json
// @Param       request body IssueLinkRequest true "Link parameters"
// @Success     200 {object} object "Link URL"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin purpose without admin flag"
// @Failure     404 {object} ErrorResponse "Unknown Telegram identity"
// @Router      /auth/link [post]
// @Security    BotKey
func (h *AuthLinkHandler) IssueLink(c *gin.Context) {
	var req IssueLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	link, url, err := h.authLinkService.Issue(req.TelegramID, models.LinkPurpose(req.Purpose), req.Context)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(link.UserID, "ISSUE_AUTH_LINK", "auth_link", link.ID, c.ClientIP(),
		map[string]interface{}{"purpose": req.Purpose})

	c.JSON(http.StatusOK, gin.H{
		"url":        url,
		"expires_at": link.ExpiresAt,
	})
}

// ResolveLink resolves an auth link token
// @Summary     Resolve an auth link
// @Description Resolve a token to its bound user, purpose, and context payload
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       token query string true "Link token"
// @Success     200 {object} object "Resolved link"
// @Failure     404 {object} ErrorResponse "Unknown token"
// @Failure     410 {object} ErrorResponse "Token expired"
// @Failure     409 {object} ErrorResponse "Token already used"
// @Router      /auth/resolve [get]
func (h *AuthLinkHandler) ResolveLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "token query parameter is required"))
		return
	}

	resolved, err := h.authLinkService.Resolve(token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":   resolved.User.ID,
			"name": resolved.User.DisplayName(),
		},
		"purpose": resolved.Purpose,
		"context": resolved.Context,
	}
	if resolved.AdminToken != "" {
		resp["admin_token"] = resolved.AdminToken
	}

	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teatally/internal/errors"
	"teatally/internal/services"
)

// RatingHandler handles rating submission and retrieval requests.
type RatingHandler struct {
	ratingService services.RatingServicer
	auditService  services.AuditServicer
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService services.RatingServicer, auditService services.AuditServicer) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, auditService: auditService}
}

// SubmitRatingRequest represents the request payload for submitting a rating.
type SubmitRatingRequest struct {
	UserID      uint           `json:"user_id" binding:"required"`
	TeaSampleID uint           `json:"tea_sample_id" binding:"required"`
	Data        map[string]int `json:"data" binding:"required"`
}

// SubmitRating handles rating submission
// @Summary     Submit a rating
// @Description Submit or replace a user's rating for a tea sample
// @Tags        ratings
// @Accept      json
// @Produce     json
// @Param       request body SubmitRatingRequest true "Rating values keyed by dimension code"
// @Success     200 {object} models.Rating "Stored rating"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User or sample not found"
// @Failure     422 {object} ErrorResponse "Unknown dimension or value out of range"
// @Router      /ratings [post]
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rating, err := h.ratingService.Submit(req.UserID, req.TeaSampleID, req.Data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.UserID, "SUBMIT_RATING", "rating", rating.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// GetUserRatings handles listing one user's ratings within a tasting
// @Summary     Get a user's ratings
// @Description Get all ratings a user has submitted for a tasting, ordered by sample position
// @Tags        ratings
// @Produce     json
// @Param       id        path int true "User ID"
// @Param       tastingId path int true "Tasting ID"
// @Success     200 {array} models.Rating "Ratings"
// @Failure     404 {object} ErrorResponse "User or tasting not found"
// @Router      /users/{id}/tastings/{tastingId}/ratings [get]
func (h *RatingHandler) GetUserRatings(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tastingID, err := parsePathID(c, "tastingId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ratings, err := h.ratingService.GetUserRatings(userID, tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

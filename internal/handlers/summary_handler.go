package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"teatally/internal/services"
)

// SummaryHandler handles aggregation and export requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles the tasting summary request
// @Summary     Get tasting summary
// @Description Get per-sample and per-dimension averages, participant count, and verdicts for a tasting
// @Tags        summaries
// @Produce     json
// @Param       id path int true "Tasting ID"
// @Success     200 {object} services.TastingSummary "Tasting summary"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id}/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.TastingSummary(tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetUserProfile handles the per-user taste profile request
// @Summary     Get user taste profile
// @Description Get one user's values per sample next to the group means, for radar charts
// @Tags        summaries
// @Produce     json
// @Param       id        path int true "User ID"
// @Param       tastingId path int true "Tasting ID"
// @Success     200 {object} services.UserProfile "User profile"
// @Failure     404 {object} ErrorResponse "User or tasting not found"
// @Router      /users/{id}/tastings/{tastingId}/profile [get]
func (h *SummaryHandler) GetUserProfile(c *gin.Context) {
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

	profile, err := h.summaryService.UserProfile(userID, tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ExportCSV handles the raw ratings export request
// @Summary     Export ratings as CSV
// @Description Download every rating of a tasting as a CSV file (admin only)
// @Tags        summaries
// @Produce     text/csv
// @Security    BearerAuth
// @Param       id path int true "Tasting ID"
// @Success     200 {string} string "CSV payload"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id}/export [get]
func (h *SummaryHandler) ExportCSV(c *gin.Context) {
	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.summaryService.ExportCSV(tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=tasting_%d_ratings.csv", tastingID))
	c.Data(http.StatusOK, "text/csv", data)
}

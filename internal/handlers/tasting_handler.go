package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "teatally/internal/errors"
	"teatally/internal/pagination"
	"teatally/internal/services"
)

// TastingHandler handles tasting, sample, and dimension requests.
type TastingHandler struct {
	tastingService services.TastingServicer
	auditService   services.AuditServicer
}

// NewTastingHandler creates a new TastingHandler.
func NewTastingHandler(tastingService services.TastingServicer, auditService services.AuditServicer) *TastingHandler {
	return &TastingHandler{tastingService: tastingService, auditService: auditService}
}

// CreateTastingRequest represents the request payload for creating a tasting.
type CreateTastingRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// UpdateTastingRequest represents the request payload for updating a tasting.
type UpdateTastingRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// AddSampleRequest represents the request payload for adding a tea sample.
type AddSampleRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
	Position    int    `json:"position" binding:"required,min=1"`
}

// UpdateSampleRequest represents the request payload for updating a tea sample.
type UpdateSampleRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=200"`
	Description string `json:"description"`
	Position    *int   `json:"position" binding:"omitempty,min=1"`
}

// AddDimensionRequest represents the request payload for declaring a dimension.
type AddDimensionRequest struct {
	Code     string `json:"code" binding:"required,dimension_code"`
	Name     string `json:"name"`
	MinValue int    `json:"min_value"`
	MaxValue int    `json:"max_value" binding:"required"`
}

// CreateTasting handles the creation of a new tasting
// @Summary     Create a tasting
// @Description Create a new tasting event (admin only)
// @Tags        tastings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTastingRequest true "Tasting details"
// @Success     201 {object} models.Tasting "Tasting created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tastings [post]
func (h *TastingHandler) CreateTasting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tasting, err := h.tastingService.CreateTasting(userID, req.Title, req.Description, req.ScheduledAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TASTING", "tasting", tasting.ID, c.ClientIP(),
		map[string]interface{}{"title": req.Title})

	c.JSON(http.StatusCreated, gin.H{"tasting": tasting})
}

// UpdateTasting handles updating a tasting
// @Summary     Update a tasting
// @Description Update title, description, or schedule of a tasting (admin only)
// @Tags        tastings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Tasting ID"
// @Param       request body UpdateTastingRequest true "Updated tasting details"
// @Success     200 {object} models.Tasting "Updated tasting"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id} [put]
func (h *TastingHandler) UpdateTasting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tasting, err := h.tastingService.UpdateTasting(tastingID, req.Title, req.Description, req.ScheduledAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TASTING", "tasting", tasting.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"tasting": tasting})
}

// GetTasting handles the retrieval of a tasting with samples and dimensions
// @Summary     Get tasting by ID
// @Description Get a tasting with its samples and dimensions
// @Tags        tastings
// @Produce     json
// @Param       id path int true "Tasting ID"
// @Success     200 {object} models.Tasting "Tasting details"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id} [get]
func (h *TastingHandler) GetTasting(c *gin.Context) {
	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tasting, err := h.tastingService.GetTastingByID(tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasting": tasting})
}

// ListTastings handles listing tastings
// @Summary     List tastings
// @Description Get a paginated list of tastings, newest first (admin only)
// @Tags        tastings
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Tasting] "Paginated tastings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tastings [get]
func (h *TastingHandler) ListTastings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tastingService.ListTastings(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddSample handles adding a tea sample to a tasting
// @Summary     Add a tea sample
// @Description Add a tea sample at an explicit position within the tasting (admin only)
// @Tags        tastings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Tasting ID"
// @Param       request body AddSampleRequest true "Sample details"
// @Success     201 {object} models.TeaSample "Sample created"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Failure     409 {object} ErrorResponse "Position already taken"
// @Router      /tastings/{id}/samples [post]
func (h *TastingHandler) AddSample(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sample, err := h.tastingService.AddSample(tastingID, req.Name, req.Description, req.Position)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_SAMPLE", "tea_sample", sample.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "position": req.Position})

	c.JSON(http.StatusCreated, gin.H{"sample": sample})
}

// UpdateSample handles updating a tea sample
// @Summary     Update a tea sample
// @Description Update name, description, or position of a tea sample (admin only)
// @Tags        tastings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Sample ID"
// @Param       request body UpdateSampleRequest true "Updated sample details"
// @Success     200 {object} models.TeaSample "Updated sample"
// @Failure     404 {object} ErrorResponse "Sample not found"
// @Failure     409 {object} ErrorResponse "Position already taken"
// @Router      /samples/{id} [put]
func (h *TastingHandler) UpdateSample(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sampleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sample, err := h.tastingService.UpdateSample(sampleID, req.Name, req.Description, req.Position)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SAMPLE", "tea_sample", sample.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"sample": sample})
}

// ListSamples handles listing a tasting's samples
// @Summary     List tea samples
// @Description Get a tasting's samples ordered by position
// @Tags        tastings
// @Produce     json
// @Param       id path int true "Tasting ID"
// @Success     200 {array} models.TeaSample "Samples"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id}/samples [get]
func (h *TastingHandler) ListSamples(c *gin.Context) {
	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	samples, err := h.tastingService.ListSamples(tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"samples": samples})
}

// AddDimension handles declaring a rating dimension for a tasting
// @Summary     Add a rating dimension
// @Description Declare a named, bounded rating axis for a tasting (admin only)
// @Tags        tastings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Tasting ID"
// @Param       request body AddDimensionRequest true "Dimension details"
// @Success     201 {object} models.RatingDimension "Dimension created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Failure     409 {object} ErrorResponse "Code already declared"
// @Router      /tastings/{id}/dimensions [post]
func (h *TastingHandler) AddDimension(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dimension, err := h.tastingService.AddDimension(tastingID, req.Code, req.Name, req.MinValue, req.MaxValue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_DIMENSION", "rating_dimension", dimension.ID, c.ClientIP(),
		map[string]interface{}{"code": req.Code})

	c.JSON(http.StatusCreated, gin.H{"dimension": dimension})
}

// ListDimensions handles listing a tasting's dimensions
// @Summary     List rating dimensions
// @Description Get a tasting's declared dimensions
// @Tags        tastings
// @Produce     json
// @Param       id path int true "Tasting ID"
// @Success     200 {array} models.RatingDimension "Dimensions"
// @Failure     404 {object} ErrorResponse "Tasting not found"
// @Router      /tastings/{id}/dimensions [get]
func (h *TastingHandler) ListDimensions(c *gin.Context) {
	tastingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	dimensions, err := h.tastingService.ListDimensions(tastingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dimensions": dimensions})
}

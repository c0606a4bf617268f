package handlers

import (
	"errors"
	"net/http"

	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CaptureHandler handles HTTP requests for prompt captures
type CaptureHandler struct {
	service        service.CaptureServiceInterface
	maxPromptBytes int
}

// NewCaptureHandler creates a new capture handler
func NewCaptureHandler(service service.CaptureServiceInterface, maxPromptBytes int) *CaptureHandler {
	return &CaptureHandler{service: service, maxPromptBytes: maxPromptBytes}
}

// CreateCapture handles POST /api/v1/captures
// @Summary Capture a prompt submission
// @Description Ingest one prompt submission, scan it for sensitive data and return the detection acknowledgment
// @Tags captures
// @Accept json
// @Produce json
// @Param capture body service.CaptureRequest true "Capture data"
// @Success 201 {object} service.CaptureResponse "Prompt captured and scanned"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 413 {object} map[string]interface{} "Prompt text too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /captures [post]
func (h *CaptureHandler) CreateCapture(c *gin.Context) {
	var req service.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if len(req.PromptText) > h.maxPromptBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Prompt text exceeds the capture size limit"})
		return
	}

	ack, err := h.service.Capture(c.Request.Context(), &req)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capture request", "details": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrFindingsNotPersisted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture prompt"})
		return
	}

	c.JSON(http.StatusCreated, ack)
}

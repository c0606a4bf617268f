package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsHandler handles HTTP requests for the aggregation dashboards.
// The organization scope always comes from the validated token claims, never
// from the request itself.
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetSummary handles GET /api/v1/analytics/summary
// @Summary Organization capture summary
// @Description Totals, independent per-severity prompt counts, per-tool counts and active subjects within the lookback window
// @Tags analytics
// @Produce json
// @Param days query int false "Lookback window in days (default 30)"
// @Success 200 {object} service.SummaryResponse "Summary"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	orgID, ok := organizationFromContext(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), orgID, queryInt(c, "days", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrend handles GET /api/v1/analytics/trend
// @Summary Per-day capture trend
// @Description Per-day prompt counts and counts of prompts with at least one critical or high finding
// @Tags analytics
// @Produce json
// @Param days query int false "Lookback window in days (default 30)"
// @Success 200 {object} service.TrendResponse "Trend"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	orgID, ok := organizationFromContext(c)
	if !ok {
		return
	}

	trend, err := h.service.Trend(c.Request.Context(), orgID, queryInt(c, "days", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trend"})
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetFlagged handles GET /api/v1/analytics/flagged
// @Summary Flagged prompt listing
// @Description Paginated (prompt, finding) pairs ordered by capture time descending, optionally filtered by severity
// @Tags analytics
// @Produce json
// @Param days query int false "Lookback window in days (default 30)"
// @Param severity query string false "Severity filter (critical, high, medium, low)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.FlaggedListResponse "Flagged findings"
// @Failure 400 {object} map[string]interface{} "Invalid severity filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/flagged [get]
func (h *AnalyticsHandler) GetFlagged(c *gin.Context) {
	orgID, ok := organizationFromContext(c)
	if !ok {
		return
	}

	listing, err := h.service.Flagged(
		c.Request.Context(),
		orgID,
		queryInt(c, "days", 0),
		c.Query("severity"),
		queryInt(c, "page", 1),
		queryInt(c, "page_size", 20),
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSeverity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flagged findings"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// GetSubjectActivity handles GET /api/v1/analytics/subjects
// @Summary Per-subject activity
// @Description Per-subject prompt totals and high-risk prompt counts, highest total first
// @Tags analytics
// @Produce json
// @Param days query int false "Lookback window in days (default 30)"
// @Success 200 {object} service.SubjectActivityResponse "Subject activity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/subjects [get]
func (h *AnalyticsHandler) GetSubjectActivity(c *gin.Context) {
	orgID, ok := organizationFromContext(c)
	if !ok {
		return
	}

	activity, err := h.service.SubjectActivity(c.Request.Context(), orgID, queryInt(c, "days", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subject activity"})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// organizationFromContext extracts the organization scope set by the auth
// middleware, writing the error response itself when absent
func organizationFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("organization_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing organization scope"})
		return uuid.Nil, false
	}
	orgID, ok := value.(uuid.UUID)
	if !ok || orgID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid organization scope"})
		return uuid.Nil, false
	}
	return orgID, true
}

// queryInt parses an integer query parameter with a fallback
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

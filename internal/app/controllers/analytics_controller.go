package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/services"
)

// AnalyticsController serves the analytics screen payload
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetAnalytics recomputes the analytics metrics from raw rows
// @Summary Get analytics
// @Description Completion rates, grade distribution and monthly submission trend. A failed fetch degrades its collection to empty rather than failing the request.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse} "Analytics payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	analytics := c.analyticsService.Compute(ctx, userID)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      analytics,
		Timestamp: time.Now(),
	})
}

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/studytrack/internal/app/services"
	"github.com/okandemir/studytrack/internal/middleware"
)

// ExportController serves the data-export downloads
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportJSON downloads the full snapshot as JSON
// @Summary Export data as JSON
// @Description Streams all of the student's data as a JSON file download
// @Tags export
// @Produce json
// @Security BearerAuth
// @Success 200 {file} file "student-data-<timestamp>.json"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Export failed"
// @Router /export/json [get]
func (c *ExportController) ExportJSON(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	filename, body, err := c.exportService.ExportJSON(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/json", body)
}

// ExportPDF downloads the full snapshot as a PDF report
// @Summary Export data as PDF
// @Description Streams a paginated PDF report of all the student's data
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "student-data-<timestamp>.pdf"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Export failed"
// @Router /export/pdf [get]
func (c *ExportController) ExportPDF(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	filename, body, err := c.exportService.ExportPDF(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", body)
}

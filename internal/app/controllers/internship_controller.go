package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/services"
	"github.com/okandemir/studytrack/internal/middleware"
)

// InternshipController handles internship CRUD endpoints
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// ListInternships returns all of the user's internships
// @Summary List internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Internships, most recent start first"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [get]
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	internships, err := c.internshipService.List(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internships,
		Timestamp: time.Now(),
	})
}

// GetInternship returns one internship
// @Summary Get internship by ID
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship} "Internship"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [get]
func (c *InternshipController) GetInternship(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	internship, err := c.internshipService.Get(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// CreateInternship adds an internship
// @Summary Create internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InternshipRequest true "Internship payload"
// @Success 201 {object} dto.APIResponse{data=models.Internship} "Created internship"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [post]
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.InternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// UpdateInternship overwrites an internship
// @Summary Update internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.InternshipRequest true "Internship payload"
// @Success 200 {object} dto.APIResponse{data=models.Internship} "Updated internship"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [put]
func (c *InternshipController) UpdateInternship(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.InternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Update(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// DeleteInternship removes an internship
// @Summary Delete internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [delete]
func (c *InternshipController) DeleteInternship(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.internshipService.Delete(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship deleted"},
		Timestamp: time.Now(),
	})
}

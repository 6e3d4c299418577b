// Package controllers contains the gin HTTP handlers. Controllers bind and
// sanity-check the request, delegate to a service, and wrap the result in
// the standard response envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/middleware"
)

// currentUserID reads the authenticated user id set by the auth middleware.
// It aborts with 401 when missing, which only happens on a wiring mistake.
func currentUserID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("User information not found")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseIDParam parses the :id path parameter
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

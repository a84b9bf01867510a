package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// CoachController handles coach endpoints
type CoachController struct {
	coachService services.CoachService
}

// NewCoachController creates a new CoachController
func NewCoachController(coachService services.CoachService) *CoachController {
	return &CoachController{
		coachService: coachService,
	}
}

// GetCoaches retrieves active coaches
// @Summary List coaches
// @Description Retrieves active coaches in display order
// @Tags coaches
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Coach} "Coaches retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches [get]
func (c *CoachController) GetCoaches(ctx *gin.Context) {
	coaches, err := c.coachService.GetCoaches(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(coaches))
}

// GetCoachesAdmin retrieves all coaches including inactive ones
// @Summary List all coaches (admin)
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Coach} "Coaches retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/coaches [get]
func (c *CoachController) GetCoachesAdmin(ctx *gin.Context) {
	coaches, err := c.coachService.GetCoaches(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(coaches))
}

// GetCoachByID retrieves a single coach
// @Summary Get coach details
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} dto.APIResponse{data=models.Coach} "Coach retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches/{id} [get]
func (c *CoachController) GetCoachByID(ctx *gin.Context) {
	coach, err := c.coachService.GetCoachByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(coach))
}

// CreateCoach creates a coach
// @Summary Create a coach
// @Description Creates a coach from multipart form data with an optional image
// @Tags coaches
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param nameEn formData string true "English name"
// @Param nameAr formData string true "Arabic name"
// @Param image formData file false "Coach image"
// @Success 201 {object} dto.APIResponse{data=models.Coach} "Coach created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/coaches [post]
func (c *CoachController) CreateCoach(ctx *gin.Context) {
	var req dto.CreateCoachRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	coach, err := c.coachService.CreateCoach(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(coach))
}

// UpdateCoach updates a coach
// @Summary Update a coach
// @Description Updates a coach; supports image replacement and removal
// @Tags coaches
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} dto.APIResponse{data=models.Coach} "Coach updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/coaches/{id} [put]
func (c *CoachController) UpdateCoach(ctx *gin.Context) {
	var req dto.UpdateCoachRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	coach, err := c.coachService.UpdateCoach(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(coach))
}

// DeleteCoach deletes a coach
// @Summary Delete a coach
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} dto.APIResponse "Coach deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/coaches/{id} [delete]
func (c *CoachController) DeleteCoach(ctx *gin.Context) {
	if err := c.coachService.DeleteCoach(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Coach deleted successfully"))
}

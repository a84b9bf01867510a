package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// HeroController handles hero section endpoints
type HeroController struct {
	heroService services.HeroService
}

// NewHeroController creates a new HeroController
func NewHeroController(heroService services.HeroService) *HeroController {
	return &HeroController{
		heroService: heroService,
	}
}

// GetHero retrieves the hero content
// @Summary Get hero content
// @Tags hero
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.HeroContent} "Hero content retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Hero content not set up yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hero [get]
func (c *HeroController) GetHero(ctx *gin.Context) {
	hero, err := c.heroService.GetHero(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

// SaveHero creates or replaces the hero content
// @Summary Save hero content
// @Description Creates the hero section on first save, replaces it afterwards. Supports video upload and removal.
// @Tags hero
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param titleEn formData string true "English title"
// @Param titleAr formData string true "Arabic title"
// @Param video formData file false "Hero video"
// @Success 200 {object} dto.APIResponse{data=models.HeroContent} "Hero content saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/hero [put]
func (c *HeroController) SaveHero(ctx *gin.Context) {
	var req dto.SaveHeroRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	video, err := optionalFormFile(ctx, "video")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	hero, err := c.heroService.SaveHero(ctx, &req, video)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

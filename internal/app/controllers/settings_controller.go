package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// SettingsController handles site settings and contact info endpoints
type SettingsController struct {
	settingsService services.SettingsService
	contactService  services.ContactService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService services.SettingsService, contactService services.ContactService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		contactService:  contactService,
	}
}

// GetSettings retrieves the site settings
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.SiteSettings} "Settings retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Settings not set up yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// SaveSettings creates or replaces the site settings
// @Summary Save site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveSiteSettingsRequest true "Site settings"
// @Success 200 {object} dto.APIResponse{data=models.SiteSettings} "Settings saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/settings [put]
func (c *SettingsController) SaveSettings(ctx *gin.Context) {
	var req dto.SaveSiteSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	settings, err := c.settingsService.SaveSettings(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// GetContactInfo retrieves the contact info
// @Summary Get contact info
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.ContactInfo} "Contact info retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Contact info not set up yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contact [get]
func (c *SettingsController) GetContactInfo(ctx *gin.Context) {
	contact, err := c.contactService.GetContactInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact))
}

// SaveContactInfo creates or replaces the contact info
// @Summary Save contact info
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveContactInfoRequest true "Contact info"
// @Success 200 {object} dto.APIResponse{data=models.ContactInfo} "Contact info saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/contact [put]
func (c *SettingsController) SaveContactInfo(ctx *gin.Context) {
	var req dto.SaveContactInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	contact, err := c.contactService.SaveContactInfo(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// GalleryController handles gallery endpoints
type GalleryController struct {
	galleryService services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// GetGalleryImages retrieves active gallery images
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryImage} "Gallery images retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery [get]
func (c *GalleryController) GetGalleryImages(ctx *gin.Context) {
	images, err := c.galleryService.GetGalleryImages(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(images))
}

// GetGalleryImagesAdmin retrieves all gallery images including inactive ones
// @Summary List all gallery images (admin)
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryImage} "Gallery images retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery [get]
func (c *GalleryController) GetGalleryImagesAdmin(ctx *gin.Context) {
	images, err := c.galleryService.GetGalleryImages(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(images))
}

// GetGalleryImageByID retrieves a single gallery image
// @Summary Get gallery image details
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery image ID"
// @Success 200 {object} dto.APIResponse{data=models.GalleryImage} "Gallery image retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Gallery image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery/{id} [get]
func (c *GalleryController) GetGalleryImageByID(ctx *gin.Context) {
	image, err := c.galleryService.GetGalleryImageByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(image))
}

// CreateGalleryImage creates a gallery entry
// @Summary Create a gallery image
// @Description Creates a gallery entry; the image binary is required
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param titleEn formData string true "English title"
// @Param titleAr formData string true "Arabic title"
// @Param image formData file true "Image binary"
// @Success 201 {object} dto.APIResponse{data=models.GalleryImage} "Gallery image created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing image"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery [post]
func (c *GalleryController) CreateGalleryImage(ctx *gin.Context) {
	var req dto.CreateGalleryImageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	galleryImage, err := c.galleryService.CreateGalleryImage(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(galleryImage))
}

// UpdateGalleryImage updates a gallery entry
// @Summary Update a gallery image
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 200 {object} dto.APIResponse{data=models.GalleryImage} "Gallery image updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Gallery image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery/{id} [put]
func (c *GalleryController) UpdateGalleryImage(ctx *gin.Context) {
	var req dto.UpdateGalleryImageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	galleryImage, err := c.galleryService.UpdateGalleryImage(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(galleryImage))
}

// DeleteGalleryImage deletes a gallery entry
// @Summary Delete a gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 200 {object} dto.APIResponse "Gallery image deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Gallery image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery/{id} [delete]
func (c *GalleryController) DeleteGalleryImage(ctx *gin.Context) {
	if err := c.galleryService.DeleteGalleryImage(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Gallery image deleted successfully"))
}

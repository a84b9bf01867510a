package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// TestimonialController handles testimonial endpoints
type TestimonialController struct {
	testimonialService services.TestimonialService
}

// NewTestimonialController creates a new TestimonialController
func NewTestimonialController(testimonialService services.TestimonialService) *TestimonialController {
	return &TestimonialController{
		testimonialService: testimonialService,
	}
}

// GetTestimonials retrieves active testimonials
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Testimonial} "Testimonials retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /testimonials [get]
func (c *TestimonialController) GetTestimonials(ctx *gin.Context) {
	testimonials, err := c.testimonialService.GetTestimonials(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(testimonials))
}

// GetTestimonialsAdmin retrieves all testimonials including inactive ones
// @Summary List all testimonials (admin)
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Testimonial} "Testimonials retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/testimonials [get]
func (c *TestimonialController) GetTestimonialsAdmin(ctx *gin.Context) {
	testimonials, err := c.testimonialService.GetTestimonials(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(testimonials))
}

// GetTestimonialByID retrieves a single testimonial
// @Summary Get testimonial details
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.APIResponse{data=models.Testimonial} "Testimonial retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /testimonials/{id} [get]
func (c *TestimonialController) GetTestimonialByID(ctx *gin.Context) {
	testimonial, err := c.testimonialService.GetTestimonialByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(testimonial))
}

// CreateTestimonial creates a testimonial
// @Summary Create a testimonial
// @Description Creates a testimonial from multipart form data with an optional image
// @Tags testimonials
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param nameEn formData string true "English name"
// @Param rating formData int true "Rating between 1 and 5"
// @Param image formData file false "Author image"
// @Success 201 {object} dto.APIResponse{data=models.Testimonial} "Testimonial created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/testimonials [post]
func (c *TestimonialController) CreateTestimonial(ctx *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	testimonial, err := c.testimonialService.CreateTestimonial(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(testimonial))
}

// UpdateTestimonial updates a testimonial
// @Summary Update a testimonial
// @Tags testimonials
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.APIResponse{data=models.Testimonial} "Testimonial updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/testimonials/{id} [put]
func (c *TestimonialController) UpdateTestimonial(ctx *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	testimonial, err := c.testimonialService.UpdateTestimonial(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(testimonial))
}

// DeleteTestimonial deletes a testimonial
// @Summary Delete a testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.APIResponse "Testimonial deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/testimonials/{id} [delete]
func (c *TestimonialController) DeleteTestimonial(ctx *gin.Context) {
	if err := c.testimonialService.DeleteTestimonial(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Testimonial deleted successfully"))
}

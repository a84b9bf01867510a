package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// ProgramController handles program endpoints
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// GetPrograms retrieves active programs
// @Summary List programs
// @Description Retrieves active programs in display order
// @Tags programs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) GetPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetPrograms(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programs))
}

// GetProgramsAdmin retrieves all programs including inactive ones
// @Summary List all programs (admin)
// @Description Retrieves every program, inactive ones included
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs [get]
func (c *ProgramController) GetProgramsAdmin(ctx *gin.Context) {
	programs, err := c.programService.GetPrograms(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programs))
}

// GetProgramByID retrieves a single program
// @Summary Get program details
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	program, err := c.programService.GetProgramByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program))
}

// CreateProgram creates a program
// @Summary Create a program
// @Description Creates a program from multipart form data with an optional image
// @Tags programs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param titleEn formData string true "English title"
// @Param titleAr formData string true "Arabic title"
// @Param image formData file false "Program image"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program, err := c.programService.CreateProgram(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(program))
}

// UpdateProgram updates a program
// @Summary Update a program
// @Description Updates a program; supports image replacement and removal
// @Tags programs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs/{id} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, err := optionalFormFile(ctx, "image")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program, err := c.programService.UpdateProgram(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program))
}

// DeleteProgram deletes a program
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {object} dto.APIResponse "Program deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Program deleted successfully"))
}

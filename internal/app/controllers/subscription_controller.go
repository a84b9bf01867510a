package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/middleware"
)

// SubscriptionController handles email subscription endpoints
type SubscriptionController struct {
	subscriptionService services.SubscriptionService
}

// NewSubscriptionController creates a new SubscriptionController
func NewSubscriptionController(subscriptionService services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe adds an email to the notification list
// @Summary Subscribe to updates
// @Description Subscribes an email address; re-subscribing a known address reactivates it
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscription information"
// @Success 200 {object} dto.APIResponse{data=dto.SubscribeResponse} "Subscription processed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subscribe [post]
func (c *SubscriptionController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.subscriptionService.Subscribe(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Unsubscribe deactivates a subscription
// @Summary Unsubscribe from updates
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.UnsubscribeRequest true "Email to unsubscribe"
// @Success 200 {object} dto.APIResponse "Unsubscribed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Subscription not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /unsubscribe [delete]
func (c *SubscriptionController) Unsubscribe(ctx *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.subscriptionService.Unsubscribe(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Unsubscribed successfully"))
}

// GetSubscriptions lists all subscriptions
// @Summary List subscriptions (admin)
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EmailSubscription} "Subscriptions retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/subscriptions [get]
func (c *SubscriptionController) GetSubscriptions(ctx *gin.Context) {
	subscriptions, err := c.subscriptionService.GetSubscriptions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subscriptions))
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/app/controllers"
	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/middleware"
)

// SetupRouter configures all application routes. Public routes serve only
// active content; the /admin group requires a valid admin token and sees
// everything, inactive rows included.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	heroController *controllers.HeroController,
	programController *controllers.ProgramController,
	coachController *controllers.CoachController,
	testimonialController *controllers.TestimonialController,
	galleryController *controllers.GalleryController,
	eventController *controllers.EventController,
	subscriptionController *controllers.SubscriptionController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	v1.GET("/hero", heroController.GetHero)
	v1.GET("/programs", programController.GetPrograms)
	v1.GET("/programs/:id", programController.GetProgramByID)
	v1.GET("/coaches", coachController.GetCoaches)
	v1.GET("/coaches/:id", coachController.GetCoachByID)
	v1.GET("/testimonials", testimonialController.GetTestimonials)
	v1.GET("/testimonials/:id", testimonialController.GetTestimonialByID)
	v1.GET("/gallery", galleryController.GetGalleryImages)
	v1.GET("/gallery/:id", galleryController.GetGalleryImageByID)
	v1.GET("/events", eventController.GetEvents)
	v1.GET("/events/:id", eventController.GetEventByID)
	v1.GET("/settings", settingsController.GetSettings)
	v1.GET("/contact", settingsController.GetContactInfo)

	// --- Public subscription routes ---
	v1.POST("/subscribe", subscriptionController.Subscribe)
	v1.DELETE("/unsubscribe", subscriptionController.Unsubscribe)

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		authProtected.GET("/me", authController.GetProfile)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleEditor)))
	{
		admin.PUT("/hero", heroController.SaveHero)

		admin.GET("/programs", programController.GetProgramsAdmin)
		admin.POST("/programs", programController.CreateProgram)
		admin.PUT("/programs/:id", programController.UpdateProgram)
		admin.DELETE("/programs/:id", programController.DeleteProgram)

		admin.GET("/coaches", coachController.GetCoachesAdmin)
		admin.POST("/coaches", coachController.CreateCoach)
		admin.PUT("/coaches/:id", coachController.UpdateCoach)
		admin.DELETE("/coaches/:id", coachController.DeleteCoach)

		admin.GET("/testimonials", testimonialController.GetTestimonialsAdmin)
		admin.POST("/testimonials", testimonialController.CreateTestimonial)
		admin.PUT("/testimonials/:id", testimonialController.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", testimonialController.DeleteTestimonial)

		admin.GET("/gallery", galleryController.GetGalleryImagesAdmin)
		admin.POST("/gallery", galleryController.CreateGalleryImage)
		admin.PUT("/gallery/:id", galleryController.UpdateGalleryImage)
		admin.DELETE("/gallery/:id", galleryController.DeleteGalleryImage)

		admin.GET("/events", eventController.GetEventsAdmin)
		admin.POST("/events", eventController.CreateEvent)
		admin.PUT("/events/:id", eventController.UpdateEvent)
		admin.DELETE("/events/:id", eventController.DeleteEvent)
		admin.GET("/events/:id/notifications", eventController.GetEventNotifications)
		admin.GET("/notifications", eventController.GetRecentNotifications)

		admin.GET("/subscriptions", subscriptionController.GetSubscriptions)

		admin.PUT("/settings", settingsController.SaveSettings)
		admin.PUT("/contact", settingsController.SaveContactInfo)
	}
}

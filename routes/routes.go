package routes

import (
	"consultly/handlers"
	"consultly/middleware"
	"consultly/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all endpoints on the router.
func SetupRoutes(
	r *gin.Engine,
	availabilityHandler *handlers.AvailabilityHandler,
	consultationHandler *handlers.ConsultationHandler,
	providerHandler *handlers.ProviderHandler,
) {
	r.Use(cors.Default())

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())

	providers := api.Group("/providers")
	{
		providers.GET("/:id", providerHandler.Get)
		providers.PATCH("/:id", providerHandler.Update)

		providers.GET("/:id/slots", availabilityHandler.ListSlots)
		providers.GET("/:id/schedule", availabilityHandler.WeeklySchedule)
		providers.POST("/:id/slots",
			middleware.RequireRole(models.RoleProvider),
			availabilityHandler.CreateSlot)
		providers.POST("/:id/slots/bulk",
			middleware.RequireRole(models.RoleProvider),
			availabilityHandler.CreateSlotsBulk)
	}

	slots := api.Group("/slots")
	{
		slots.PATCH("/:slotId",
			middleware.RequireRole(models.RoleProvider),
			availabilityHandler.UpdateSlot)
		slots.DELETE("/:slotId",
			middleware.RequireRole(models.RoleProvider),
			availabilityHandler.DeleteSlot)
	}

	consultations := api.Group("/consultations")
	{
		consultations.POST("",
			middleware.RequireRole(models.RoleSeeker),
			consultationHandler.Create)
		consultations.GET("", consultationHandler.ListMine)
		consultations.GET("/:id", consultationHandler.Get)
		consultations.POST("/:id/transition", consultationHandler.Transition)
		consultations.POST("/:id/rating",
			middleware.RequireRole(models.RoleSeeker),
			consultationHandler.Rate)
	}
}

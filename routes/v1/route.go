package route

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/controllers"
	"github.com/muizrexhepi/menyro-sub000/handlers"
	"github.com/muizrexhepi/menyro-sub000/services"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	stateStorage := onboardingStorage()

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	searchController := controllers.NewSearchController()
	restaurantController := controllers.NewRestaurantController()
	onboardingController := controllers.NewOnboardingController(stateStorage)
	reservationController := controllers.NewReservationController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterUserRoutes(v1Routes, userController)
		handlers.RegisterRestaurantRoutes(v1Routes, restaurantController, searchController)
		handlers.RegisterOnboardingRoutes(v1Routes, onboardingController)
		handlers.RegisterReservationRoutes(v1Routes, reservationController)
	}
}

// onboardingStorage prefers the Redis slot store, falling back to the
// in-process one when Redis is not configured.
func onboardingStorage() services.StateStorage {
	if client := database.GetRedisClient(); client != nil {
		return services.NewRedisStateStorage(client)
	}
	return services.NewMemoryStateStorage()
}

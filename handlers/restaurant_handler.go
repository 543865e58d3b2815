package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/controllers"
	"github.com/muizrexhepi/menyro-sub000/middleware"
)

func RegisterRestaurantRoutes(router *gin.RouterGroup, restaurantController *controllers.RestaurantController, searchController *controllers.SearchController) {
	restaurantGroup := router.Group("/restaurants")
	{
		restaurantGroup.GET("/search", searchController.SearchRestaurants)
		restaurantGroup.GET("/filters", searchController.GetFilterOptions)
		restaurantGroup.GET("/feed", searchController.StreamRestaurantFeed)
		restaurantGroup.GET("/:slug", restaurantController.GetRestaurantBySlug)
	}

	dashboardGroup := router.Group("/dashboard/restaurants")
	dashboardGroup.Use(middleware.AuthMiddleware())
	{
		dashboardGroup.GET("/", restaurantController.GetMyRestaurants)
		dashboardGroup.PUT("/:id/menu", restaurantController.UpdateMenu)
		dashboardGroup.PUT("/:id/working-hours", restaurantController.UpdateWorkingHours)
		dashboardGroup.PUT("/:id/details", restaurantController.UpdateDetails)
	}
}

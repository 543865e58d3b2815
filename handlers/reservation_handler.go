package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/controllers"
	"github.com/muizrexhepi/menyro-sub000/middleware"
)

func RegisterReservationRoutes(router *gin.RouterGroup, reservationController *controllers.ReservationController) {
	reservationGroup := router.Group("/reservations")
	reservationGroup.Use(middleware.AuthMiddleware())
	{
		reservationGroup.POST("/", reservationController.CreateReservation)
		reservationGroup.GET("/", reservationController.GetMyReservations)
	}

	dashboardGroup := router.Group("/dashboard/restaurants")
	dashboardGroup.Use(middleware.AuthMiddleware())
	{
		dashboardGroup.GET("/:id/reservations", reservationController.GetRestaurantReservations)
		dashboardGroup.PUT("/:id/reservations/:reservationId", reservationController.UpdateReservationStatus)
	}
}

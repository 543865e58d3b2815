package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/controllers"
	"github.com/muizrexhepi/menyro-sub000/middleware"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController) {
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("/profile", userController.GetUserProfile)
		userGroup.PUT("/profile", userController.UpdateUserProfile)
	}
}

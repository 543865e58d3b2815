package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/controllers"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.RegisterUser)
		authGroup.POST("/login", authController.LoginUser)
	}
}

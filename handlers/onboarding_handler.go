package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/controllers"
	"github.com/muizrexhepi/menyro-sub000/middleware"
)

func RegisterOnboardingRoutes(router *gin.RouterGroup, onboardingController *controllers.OnboardingController) {
	onboardingGroup := router.Group("/onboarding")
	onboardingGroup.Use(middleware.AuthMiddleware())
	{
		onboardingGroup.GET("/", onboardingController.GetState)
		onboardingGroup.POST("/next", onboardingController.NextStep)
		onboardingGroup.POST("/prev", onboardingController.PrevStep)
		onboardingGroup.PUT("/step", onboardingController.SetStep)
		onboardingGroup.PUT("/account", onboardingController.UpdateAccount)
		onboardingGroup.PUT("/location", onboardingController.UpdateLocation)
		onboardingGroup.PUT("/contact", onboardingController.UpdateContact)
		onboardingGroup.PUT("/working-hours", onboardingController.UpdateWorkingDay)
		onboardingGroup.PUT("/plan", onboardingController.SetPlan)
		onboardingGroup.POST("/complete", onboardingController.Complete)
		onboardingGroup.DELETE("/", onboardingController.Reset)
	}
}

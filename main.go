package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/config/environment"
	"github.com/muizrexhepi/menyro-sub000/middleware"
	v1 "github.com/muizrexhepi/menyro-sub000/routes/v1"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

func main() {

	// Load environment variables
	environment.Load()

	utils.InitLogger()

	//firebase init
	database.InitFirebase()
	database.InitRedis()

	// Setup Gin router
	r := gin.Default()

	// Pasang middleware error handler
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r)

	port := environment.GetPort()
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

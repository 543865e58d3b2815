package environment

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the optional .env file into the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

// GetFirebaseAPIKey returns the web API key used for the
// identitytoolkit sign-in endpoint.
func GetFirebaseAPIKey() string {
	return os.Getenv("FIREBASE_WEB_API_KEY")
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetRedisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

func GetRedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

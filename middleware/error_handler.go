package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/utils"
)

// ErrorHandlerMiddleware Middleware untuk menangani error secara global
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var customErr *utils.CustomError
			if errors.As(err, &customErr) {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			// Jika bukan CustomError, anggap sebagai Internal Server Error
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

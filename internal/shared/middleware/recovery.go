package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into a 500 error page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				if !c.Writer.Written() {
					c.HTML(http.StatusInternalServerError, ErrorView, gin.H{
						"title":   "Error",
						"message": http.StatusText(http.StatusInternalServerError),
						"status":  http.StatusInternalServerError,
					})
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}

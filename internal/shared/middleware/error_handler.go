package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/shared/apperror"
)

// ErrorView is the template rendered for every failed request.
const ErrorView = "error"

// ErrorHandler renders the last error a handler attached with c.Error.
// The status comes from the error's HTTPStatus method, 500 otherwise.
// showDetails adds the raw error text to the page (development only).
func ErrorHandler(showDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.Status(err)

		if status >= 500 {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
		}

		data := gin.H{
			"title":   "Error",
			"message": apperror.Message(err),
			"status":  status,
		}
		if showDetails {
			data["details"] = err.Error()
		}

		c.HTML(status, ErrorView, data)
	}
}

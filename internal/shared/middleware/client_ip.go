package middleware

import (
	"github.com/gin-gonic/gin"

	"locallibrary/internal/shared/utils"
)

const ClientIPKey = "client_ip"

// ClientIP resolves the client address once per request and stores it
// under "client_ip" for the logger and the rate limiter.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIPKey, utils.ExtractClientIP(c))
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString(ClientIPKey); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}

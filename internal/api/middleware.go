package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/auth"
	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/models"
)

// identityHeader carries the authenticated identity set by the upstream
// auth layer. Authentication itself is out of scope here.
const identityHeader = "X-Auth-Email"

// requestLogger logs HTTP requests
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("HTTP request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}

// requireAuthorized guards admin routes with the configured allow-list.
// A missing identity is 401; an identity off the list is 403.
func requireAuthorized(authorizer *auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetHeader(identityHeader)
		if identity == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		if !authorizer.IsAuthorized(identity) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": models.ErrUnauthorized.Error(),
			})
			return
		}

		c.Next()
	}
}

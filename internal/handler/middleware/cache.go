package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses that carry per-buyer data as uncacheable.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}

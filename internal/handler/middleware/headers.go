package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses built from live backend data as uncacheable.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}

package middleware

import (
	"net/http"
	"strings"

	"card-shuffler-go/internal/config"

	"github.com/gin-gonic/gin"
)

var loopbackOrigins = []string{
	"http://localhost:",
	"http://127.0.0.1:",
	"http://[::1]:",
	"https://localhost:",
	"https://127.0.0.1:",
	"https://[::1]:",
}

// DevCORS lets a frontend served from another loopback port read the deck
// API. Outside development it only passes requests through.
func DevCORS(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := strings.TrimSpace(c.GetHeader("Origin"))
		if origin == "" || !cfg.IsDevelopment() {
			c.Next()
			return
		}

		if isLoopbackOrigin(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func isLoopbackOrigin(origin string) bool {
	for _, p := range loopbackOrigins {
		if strings.HasPrefix(origin, p) {
			return true
		}
	}
	return false
}

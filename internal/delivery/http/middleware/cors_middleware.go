package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured site origins. An entry of "*"
// allows any origin without credentials.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	if len(origins) == 0 {
		// cors.New panics on an empty allow list
		config.AllowOriginFunc = func(string) bool { return false }
		return cors.New(config)
	}

	config.AllowOrigins = origins
	return cors.New(config)
}

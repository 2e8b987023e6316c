package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// storefrontCORSConfig allows the storefront and back office origins to call the API
// from the browser. A single "*" opens the API to any origin without credentials.
func storefrontCORSConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		// Accept drives JSON/XML negotiation on the key exchange endpoints.
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

// createCORSMiddleware returns nil when CORS is disabled or no origin is configured.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))
	return cors.New(storefrontCORSConfig(origins))
}

// parseOrigins splits a comma separated origin list, dropping blanks.
func parseOrigins(originsStr string) []string {
	var origins []string
	for part := range strings.SplitSeq(originsStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

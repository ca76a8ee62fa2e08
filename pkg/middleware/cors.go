package middleware

import (
	"net/http"

	"beautycabin/pkg/logger"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

var (
	corsAllowedMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	corsAllowedHeaders = []string{"Content-Type", "Authorization", "Accept"}
)

// CORS allows credentialed cross-origin calls from the listed origins only.
// Requests from other origins still reach the handlers, they just receive no
// Access-Control-Allow-* headers, so browsers refuse to expose the response.
func CORS(allowedOrigins []string, log *logger.Logger) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if origin == "" {
				return true
			}
			if _, ok := allowed[origin]; ok {
				return true
			}
			log.Debug("CORS origin rejected",
				"request_id", RequestIDFromContext(r.Context()),
				"origin", origin,
				"path", r.URL.Path,
			)
			return false
		},
		AllowedMethods:   corsAllowedMethods,
		AllowedHeaders:   corsAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

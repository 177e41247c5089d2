package middleware

import (
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Cors allows the configured web origins. Native clients and curl send no
// Origin header and are not affected.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding",
			"Authorization", AuthTokenHeader,
		},
		// the auth middleware answers preflights after the cors headers are set
		OptionsPassthrough: true,
	})
	log.Debugf("cors: allowed origins %v", allowedOrigins)
	return c.Handler
}

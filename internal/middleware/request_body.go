package middleware

import (
	"io"
	"net/http"
)

// LimitRequestBody caps the body a handler may read at maxKB kilobytes. A
// request announcing a larger body is refused before it reaches the handler.
// Whatever the handler left unread is drained so the connection can be reused.
// A non-positive maxKB disables the cap.
func LimitRequestBody(maxKB int64) func(next http.Handler) http.Handler {
	maxBytes := maxKB << 10
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.ContentLength > maxBytes {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			if maxBytes > 0 && r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}

package middleware

import (
	"net/http"

	apperrors "beautycabin/pkg/errors"
	httputil "beautycabin/pkg/http"
)

// MaxRequestSize caps request bodies at limit bytes. Requests that announce a
// larger Content-Length are rejected up front; the rest are wrapped so that
// decoding fails once the limit is crossed.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				_ = httputil.WriteError(w, apperrors.PayloadTooLarge(limit))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

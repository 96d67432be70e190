package middleware

import (
	"context"
	"net/http"
	"strings"

	h "eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// APIKeyHeader carries the public API key.
const APIKeyHeader = "X-API-Key"

// APIKeyFromContext returns the key accepted by RequireAPIKey, if any.
func APIKeyFromContext(ctx context.Context) (string, bool) {
	k, ok := ctx.Value(apiKeyKey).(string)
	return k, ok
}

// RequireAPIKey rejects requests without a valid X-API-Key header with 401.
func RequireAPIKey(checker domain.APIKeyChecker) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if key == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing api key")
				return
			}
			if !checker.Valid(r.Context(), key) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid api key")
				return
			}
			next(w, r.WithContext(context.WithValue(r.Context(), apiKeyKey, key)))
		}
	}
}

package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/server/auth"
)

type ctxKey int

const userIDKey ctxKey = 0

// withAuth resolves the owner id from the bearer token. WebSocket handshakes
// may carry the token in the "token" query parameter instead, since browser
// clients cannot set headers on a WebSocket dial.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""

		header := r.Header.Get(common.AuthHeaderName)
		if strings.HasPrefix(header, common.BearerPrefix) {
			token = strings.TrimPrefix(header, common.BearerPrefix)
		}
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.UserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

package middleware

import (
	"context"
	"net/http"
	"strings"
)

type CtxKey int

const (
	CtxFieldToken CtxKey = iota
)

// Token pulls the field token from the Authorization header ("Bearer ...") or,
// for clients that cannot set headers such as browsers opening a WebSocket,
// from the token query parameter.
func Token() Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				token = r.URL.Query().Get("token")
			}
			if token == "" {
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxFieldToken, strings.TrimSpace(token))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(CtxFieldToken).(string)
	return token, ok
}

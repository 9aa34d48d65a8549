package middlewares

import (
	"crypto/subtle"
	"net/http"

	httputil "github.com/soapboxsocial/tracker/pkg/http"
)

type authenticationHandler struct {
	token string
}

// NewAuthenticationMiddleware only lets through requests whose Authorization header carries the project token.
func NewAuthenticationMiddleware(token string) *authenticationHandler {
	return &authenticationHandler{
		token: token,
	}
}

func (h authenticationHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		token := req.Header.Get("Authorization")
		if token == "" {
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		r := req.WithContext(httputil.WithToken(req.Context(), token))

		next.ServeHTTP(w, r)
	})
}

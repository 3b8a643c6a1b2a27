package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/session"
)

const ContextSession = "session"

// TokenVerifier turns a bearer token into a session.
type TokenVerifier interface {
	Verify(token string) (*session.State, error)
}

func AdminMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Sessão de administrador necessária.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		st, err := verifier.Verify(parts[1])
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida ou expirada.")
			return
		}
		if !st.IsAdmin() {
			httperr.Abort(c, http.StatusForbidden, "not_admin", "Acesso restrito ao administrador.")
			return
		}

		c.Set(ContextSession, st)
		c.Next()
	}
}

// SessionFrom returns the session set by AdminMiddleware, or a logged-out one.
func SessionFrom(c *gin.Context) *session.State {
	if v, ok := c.Get(ContextSession); ok {
		if st, ok := v.(*session.State); ok {
			return st
		}
	}
	return &session.State{}
}

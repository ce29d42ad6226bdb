package middlewares

import (
	"context"
	"fmt"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate resolves the bearer token to a live session and stores the
// session data in the request context for the controllers and the RBAC
// guard.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no bearer token")))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, session.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, session.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

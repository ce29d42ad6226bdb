package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medipos-service/internal/app/config"
	"medipos-service/internal/app/models"
	"medipos-service/internal/app/services/core/auth"
	"medipos-service/internal/app/services/shared/recordstore"
	"medipos-service/internal/app/services/shared/redis"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newTestMiddlewares(t *testing.T) (*Middlewares, string) {
	t.Helper()
	users := recordstore.NewUserStore()
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	_, err = users.CreateUser(context.Background(), &models.User{
		Email:    "cashier@clinic.test",
		FullName: "Front Desk",
		Password: hash,
		Role:     models.RoleCashier,
	})
	require.NoError(t, err)

	authUsecase := auth.NewAuthUsecase(users, redis.NewMemoryKVRepository(), zap.NewNop(), config.JWT{
		Secret:        "test-secret",
		ExpTimeInHour: 1,
	})
	login, err := authUsecase.Login(context.Background(), &requests.Login{
		Email:    "cashier@clinic.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	m := NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{})
	return m, login.Token
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("echoes a client-supplied id", func(t *testing.T) {
		handler := m.RequestIDMiddleware(okHandler())

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "client-id-1", recorder.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	m, token := newTestMiddlewares(t)

	t.Run("missing token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		m.Authenticate(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer nonsense")
		recorder := httptest.NewRecorder()
		m.Authenticate(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token puts the session in context", func(t *testing.T) {
		var role models.StaffRole
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ = r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(models.StaffRole)
		}))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.RoleCashier, role)
	})
}

func TestRequirePermission(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	requestWithRole := func(role models.StaffRole) *http.Request {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_USER_ROLE_KEY, role)
		return request.WithContext(ctx)
	}

	t.Run("permitted role passes", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		m.RequirePermission(PermissionRecordPayment)(okHandler()).ServeHTTP(recorder, requestWithRole(models.RoleCashier))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		for _, role := range []models.StaffRole{models.RoleDoctor, models.RoleLab, models.RolePharmacy, models.RoleHodLab} {
			recorder := httptest.NewRecorder()
			m.RequirePermission(PermissionRecordPayment)(okHandler()).ServeHTTP(recorder, requestWithRole(role))
			assert.Equal(t, http.StatusForbidden, recorder.Code, "role %s", role)
		}
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		m.RequirePermission(PermissionRecordPayment)(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestPermissionTable(t *testing.T) {
	assert.True(t, RoleHasPermission(models.RoleDoctor, PermissionRecordDiagnosis))
	assert.False(t, RoleHasPermission(models.RoleCashier, PermissionRecordDiagnosis))

	assert.True(t, RoleHasPermission(models.RoleLab, PermissionCompleteService))
	assert.False(t, RoleHasPermission(models.RoleHodLab, PermissionCompleteService))

	assert.True(t, RoleHasPermission(models.RoleHodPharmacy, PermissionViewRevenue))
	assert.False(t, RoleHasPermission(models.RolePharmacy, PermissionViewRevenue))

	assert.True(t, RoleHasPermission(models.RoleAdmin, PermissionManageUsers))
	for _, role := range []models.StaffRole{models.RoleCashier, models.RoleDoctor, models.RoleLab, models.RolePharmacy, models.RoleHodLab, models.RoleHodPharmacy} {
		assert.False(t, RoleHasPermission(role, PermissionManageUsers), "role %s", role)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	handler := limiter.Limit(okHandler())

	for i := 0; i < 2; i++ {
		request := httptest.NewRequest(http.MethodPost, "/login", nil)
		request.RemoteAddr = "10.0.0.1:4000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	request.RemoteAddr = "10.0.0.1:4000"
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	// A different client gets its own bucket.
	other := httptest.NewRequest(http.MethodPost, "/login", nil)
	other.RemoteAddr = "10.0.0.2:4000"
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, other)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

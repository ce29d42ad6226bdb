package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"
	"medipos-service/internal/app/models"
	"medipos-service/internal/app/services/core/auth"
	"medipos-service/internal/app/services/core/reports"
	"medipos-service/internal/app/services/core/users"
	"medipos-service/internal/app/services/shared/catalog"
	"medipos-service/internal/app/services/shared/events"
	"medipos-service/internal/app/services/shared/locker"
	"medipos-service/internal/app/services/shared/receipts"
	"medipos-service/internal/app/services/shared/recordstore"
	"medipos-service/internal/app/services/shared/redis"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medipos-service/internal/app/services/core/workflow"
	"medipos-service/internal/app/services/shared/provisioning"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// routerFixture boots the whole HTTP stack in memory mode, the same
// wiring main uses when APP_STORAGE_MODE is memory, so requests travel
// through cors, rate limiting, auth, RBAC and the real usecases.
type routerFixture struct {
	router    *chi.Mux
	userStore *recordstore.UserStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:            "api",
			Version:                   "v1",
			MaxRequests:               1000,
			LoginMaxAttemptsPerMinute: 100,
			PatientLockTTLInSecond:    5,
		},
		JWT: config.JWT{
			Secret:        "router-test-secret",
			ExpTimeInHour: 1,
		},
	}

	store := recordstore.NewStore()
	userStore := recordstore.NewUserStore()
	catalogService := catalog.NewCatalogService()
	lockerService := locker.NewMemoryLocker()
	kvRepository := redis.NewMemoryKVRepository()

	workflowUsecase := workflow.NewWorkflowUsecase(
		store, store, store, store,
		catalogService,
		lockerService,
		events.NewNoopPublisher(),
		receipts.NewNoopReceiptArchiver(),
		logger,
		time.Duration(internalConfig.App.PatientLockTTLInSecond)*time.Second,
	)
	reportUsecase := reports.NewReportUsecase(store, store, store, store)
	authUsecase := auth.NewAuthUsecase(userStore, kvRepository, logger, internalConfig.JWT)

	provisioningServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"user":{"id":"ext-1"}}`)
	}))
	t.Cleanup(provisioningServer.Close)
	provisioningClient := provisioning.NewHTTPProvisioningClient(config.Provisioning{
		BaseUrl:          provisioningServer.URL,
		TimeoutInSecond:  5,
		ServiceRoleToken: "service-role-token",
	}, logger)
	userUsecase := users.NewUserUsecase(userStore, provisioningClient, logger)

	m := middlewares.NewMiddlewares(logger, authUsecase, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		m,
		controllers.NewPatientController(logger, workflowUsecase, reportUsecase),
		controllers.NewPaymentController(logger, workflowUsecase),
		controllers.NewDiagnosisController(logger, workflowUsecase, reportUsecase),
		controllers.NewServiceController(logger, workflowUsecase, reportUsecase),
		controllers.NewReportController(logger, reportUsecase),
		controllers.NewCatalogController(logger, catalogService),
		controllers.NewAuthController(logger, authUsecase),
		controllers.NewUserController(logger, userUsecase),
	)

	return &routerFixture{router: router, userStore: userStore}
}

func (f *routerFixture) seedStaff(t *testing.T, role models.StaffRole) (email, password string) {
	t.Helper()
	email = fmt.Sprintf("%s@clinic.test", role)
	password = "Sup3rSecret!"
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	_, err = f.userStore.CreateUser(context.Background(), &models.User{
		Email:    email,
		FullName: fmt.Sprintf("Test %s", role),
		Password: hash,
		Role:     role,
	})
	require.NoError(t, err)
	return email, password
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *routerFixture) loginAs(t *testing.T, role models.StaffRole) string {
	t.Helper()
	email, password := f.seedStaff(t, role)
	rr := f.do(t, http.MethodPost, "/auth/login", "", requests.Login{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var login responses.Login
	decodeData(t, rr, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// decodeData unwraps the envelope and re-decodes Data into out.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestRouterFullVisit(t *testing.T) {
	f := newRouterFixture(t)

	cashierToken := f.loginAs(t, models.RoleCashier)
	doctorToken := f.loginAs(t, models.RoleDoctor)
	labToken := f.loginAs(t, models.RoleLab)
	adminToken := f.loginAs(t, models.RoleAdmin)

	rr := f.do(t, http.MethodPost, "/patients/", cashierToken, requests.RegisterPatient{
		Name:           "Jane Doe",
		Age:            34,
		Gender:         "female",
		Contact:        "0801234567",
		PaymentPending: true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var registered responses.RegisterPatient
	decodeData(t, rr, &registered)
	assert.Equal(t, "P0001", registered.PatientID)
	assert.Equal(t, string(models.PatientStatusPaymentPending), registered.Status)

	rr = f.do(t, http.MethodPost, "/payments/", cashierToken, requests.RecordPayment{
		PatientID: registered.PatientID,
		Type:      string(models.PaymentTypeConsultation),
		Amount:    2000,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var receipt responses.PaymentReceipt
	decodeData(t, rr, &receipt)
	assert.Equal(t, "RCP1000", receipt.ReceiptNumber)
	assert.Equal(t, string(models.PatientStatusPaidConsultation), receipt.PatientStatus)

	rr = f.do(t, http.MethodPost, "/diagnoses/", doctorToken, requests.RecordDiagnosis{
		PatientID:  registered.PatientID,
		Diagnosis:  "Malaria",
		LabTestIDs: []string{"1", "4"},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var diagnosis responses.RecordDiagnosis
	decodeData(t, rr, &diagnosis)
	require.NotEmpty(t, diagnosis.LabServiceID)
	assert.Empty(t, diagnosis.PharmacyServiceID)
	assert.Equal(t, string(models.PatientStatusDiagnosed), diagnosis.PatientStatus)

	rr = f.do(t, http.MethodGet, "/patients/"+registered.PatientID+"/services/pending", cashierToken, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var pending []models.Service
	decodeData(t, rr, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, 3300.0, pending[0].TotalAmount)

	rr = f.do(t, http.MethodPost, "/payments/", cashierToken, requests.RecordPayment{
		PatientID: registered.PatientID,
		Type:      string(models.PaymentTypeLab),
		Amount:    3300,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	decodeData(t, rr, &receipt)
	assert.Equal(t, string(models.PatientStatusLabReferred), receipt.PatientStatus)

	rr = f.do(t, http.MethodGet, "/services/queue/lab", labToken, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var queue []models.Service
	decodeData(t, rr, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, models.ServiceStatusPaid, queue[0].Status)

	rr = f.do(t, http.MethodPut, "/services/"+diagnosis.LabServiceID+"/complete", labToken, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/reports/revenue?type=lab", adminToken, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var revenue responses.Revenue
	decodeData(t, rr, &revenue)
	assert.Equal(t, 3300.0, revenue.Revenue)
	assert.Equal(t, 3300.0, revenue.BillableValue)
}

func TestRouterAuthAndRBAC(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("no token is rejected", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/patients/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/patients/", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("doctor cannot record payments", func(t *testing.T) {
		doctorToken := f.loginAs(t, models.RoleDoctor)
		rr := f.do(t, http.MethodPost, "/payments/", doctorToken, requests.RecordPayment{
			PatientID: "P0001",
			Type:      string(models.PaymentTypeConsultation),
			Amount:    2000,
		})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("cashier cannot view revenue", func(t *testing.T) {
		cashierToken := f.loginAs(t, models.RoleCashier)
		rr := f.do(t, http.MethodGet, "/reports/revenue", cashierToken, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("hod can view department reports", func(t *testing.T) {
		hodToken := f.loginAs(t, models.RoleHodLab)
		rr := f.do(t, http.MethodGet, "/reports/top-items?service_type=lab", hodToken, nil)
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		email, _ := f.seedStaff(t, models.RolePharmacy)
		rr := f.do(t, http.MethodPost, "/auth/login", "", requests.Login{Email: email, Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		labToken := f.loginAs(t, models.RoleLab)
		rr := f.do(t, http.MethodPost, "/auth/logout", labToken, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = f.do(t, http.MethodGet, "/services/queue/lab", labToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRouterValidationErrors(t *testing.T) {
	f := newRouterFixture(t)
	cashierToken := f.loginAs(t, models.RoleCashier)

	t.Run("invalid json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients/", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cashierToken)
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/patients/", cashierToken, requests.RegisterPatient{Name: "X"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		adminToken := f.loginAs(t, models.RoleAdmin)
		rr := f.do(t, http.MethodGet, "/patients/?status=vanished", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown report service type", func(t *testing.T) {
		hodToken := f.loginAs(t, models.RoleHodPharmacy)
		rr := f.do(t, http.MethodGet, "/reports/top-items?service_type=surgery", hodToken, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouterAdminCreatesUser(t *testing.T) {
	f := newRouterFixture(t)
	adminToken := f.loginAs(t, models.RoleAdmin)

	rr := f.do(t, http.MethodPost, "/admin/users", adminToken, requests.CreateUser{
		Email:      "new.cashier@clinic.test",
		Password:   "Sup3rSecret!",
		FullName:   "New Cashier",
		Role:       string(models.RoleCashier),
		Department: "front-desk",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created responses.CreateUser
	decodeData(t, rr, &created)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "ext-1", created.ExternalID)

	// The freshly provisioned account can sign in right away.
	login := f.do(t, http.MethodPost, "/auth/login", "", requests.Login{
		Email:    "new.cashier@clinic.test",
		Password: "Sup3rSecret!",
	})
	assert.Equal(t, http.StatusOK, login.Code, login.Body.String())
}

func TestRouterLoginRateLimit(t *testing.T) {
	// The shared fixture allows 100 logins/min which the other tests
	// rely on, so this test wires a dedicated auth router with a tight
	// budget instead.
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:            "api",
			Version:                   "v1",
			MaxRequests:               1000,
			LoginMaxAttemptsPerMinute: 3,
		},
		JWT: config.JWT{Secret: "router-test-secret", ExpTimeInHour: 1},
	}
	userStore := recordstore.NewUserStore()
	authUsecase := auth.NewAuthUsecase(userStore, redis.NewMemoryKVRepository(), logger, internalConfig.JWT)
	authController := controllers.NewAuthController(logger, authUsecase)
	m := middlewares.NewMiddlewares(logger, authUsecase, internalConfig)

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, internalConfig, m, authController)
	})

	body, _ := json.Marshal(requests.Login{Email: "nobody@clinic.test", Password: "whatever"})
	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		last = rr.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

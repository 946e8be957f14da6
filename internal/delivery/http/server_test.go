package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"signup/config"
	"signup/internal/delivery/http/controller"
	"signup/internal/delivery/http/router"
	"signup/internal/domain/entity"
	domainerrors "signup/internal/domain/errors"
	"signup/internal/infra/metrics"
	"signup/internal/infra/validation"
	mockRepo "signup/internal/mocks/repository"
	mockSvc "signup/internal/mocks/service"
	"signup/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo        *echo.Echo
	hasher      *mockSvc.MockPasswordHasher
	accountRepo *mockRepo.MockAccountRepository
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	return cfg
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	hasher := mockSvc.NewMockPasswordHasher(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	collector := metrics.NewCollector(metrics.NewRegistry())

	addAccount := impl.NewAddAccountService(impl.AddAccountServiceParams{
		Hasher:      hasher,
		AccountRepo: accountRepo,
		Logger:      logger,
	})
	signUpController := controller.NewSignUpController(controller.SignUpControllerParams{
		EmailValidator: validation.NewEmailValidator(),
		AddAccount:     addAccount,
		Logger:         logger,
	})

	e := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: collector,
		RouterParams: router.RouterParams{
			Config:           cfg,
			SignUpController: signUpController,
			Metrics:          collector,
		},
	})

	return serverFixtures{
		echo:        e,
		hasher:      hasher,
		accountRepo: accountRepo,
	}
}

func (f serverFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorBody {
	t.Helper()

	var body domainerrors.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

const validSignupBody = `{"name":"John Doe","email":"john@example.com","password":"123456","passwordConfirmation":"123456"}`

func TestSignup_Success(t *testing.T) {
	f := createTestServer(t)

	f.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	f.accountRepo.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) (*entity.Account, error) {
			stored := *account
			stored.ID = "abc1"

			return &stored, nil
		})

	rec := f.do(http.MethodPost, "/api/signup", validSignupBody, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"abc1","name":"John Doe","email":"john@example.com","password":"hashed_123456"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestSignup_MissingEmail(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":"John Doe","password":"123456","passwordConfirmation":"123456"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "MissingParamError", Message: "Missing param: email"}, decodeErrorBody(t, rec))
}

func TestSignup_PasswordMismatch(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":"John Doe","email":"john@example.com","password":"a","passwordConfirmation":"b"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "InvalidParamError", Message: "Invalid param: passwordConfirmation"}, decodeErrorBody(t, rec))
}

func TestSignup_InvalidEmail(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":"John Doe","email":"not-an-email","password":"123456","passwordConfirmation":"123456"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "InvalidParamError", Message: "Invalid param: email"}, decodeErrorBody(t, rec))
}

func TestSignup_MalformedJSONIsMissingName(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "MissingParamError", Message: "Missing param: name"}, decodeErrorBody(t, rec))
}

func TestSignup_EmptyBodyIsMissingName(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing param: name", decodeErrorBody(t, rec).Message)
}

func TestSignup_HasherFailure(t *testing.T) {
	f := createTestServer(t)

	f.hasher.EXPECT().Hash("123456").Return("", errors.New("bcrypt: cost out of range"))

	rec := f.do(http.MethodPost, "/api/signup", validSignupBody, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "ServerError", Message: "Internal server error"}, decodeErrorBody(t, rec))
	f.accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSignup_StoreFailure(t *testing.T) {
	f := createTestServer(t)

	f.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	f.accountRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, errors.New("server selection timeout"))

	rec := f.do(http.MethodPost, "/api/signup", validSignupBody, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "ServerError", Message: "Internal server error"}, decodeErrorBody(t, rec))
	assert.NotContains(t, rec.Body.String(), "timeout")
}

func TestSignup_BodyTooLarge(t *testing.T) {
	f := createTestServer(t)

	huge := `{"name":"` + strings.Repeat("x", 4096) + `"}`
	rec := f.do(http.MethodPost, "/api/signup", huge, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCORS_SimpleRequest(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", map[string]string{echo.HeaderOrigin: "http://example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_Preflight(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodOptions, "/api/signup", "", map[string]string{
		echo.HeaderOrigin:                     "http://example.com",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
}

func TestHealth(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeErrorBody(t, rec).Message)
}

func TestMetricsEndpoint(t *testing.T) {
	f := createTestServer(t)

	f.do(http.MethodPost, "/api/signup", `{}`, nil)
	rec := f.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `signup_http_requests_total{method="POST",route="/api/signup",status="400"} 1`)
}

func TestSignup_MistypedFieldIsReportedInOrder(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":"John","email":123,"password":"a","passwordConfirmation":"a"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "MissingParamError", Message: "Missing param: email"}, decodeErrorBody(t, rec))
}

func TestSignup_MistypedLaterFieldKeepsEarlierOnes(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/api/signup", `{"name":"John","email":"john@example.com","password":"a","passwordConfirmation":false}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing param: passwordConfirmation", decodeErrorBody(t, rec).Message)
}

func TestSignup_StoreReturnsNoAccount(t *testing.T) {
	f := createTestServer(t)

	f.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	f.accountRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, nil)

	rec := f.do(http.MethodPost, "/api/signup", validSignupBody, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrorBody{Name: "ServerError", Message: "Internal server error"}, decodeErrorBody(t, rec))
}

package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valiant-hris/internal/adapters/http/middleware"
	"valiant-hris/internal/adapters/http/routes"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/config"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/jwt"
	"valiant-hris/internal/pkg/password"
	"valiant-hris/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
}

type server struct {
	app    *fiber.App
	users  *services.UserService
	issuer *jwt.Issuer
}

func newServer(t *testing.T, chain ...fiber.Handler) *server {
	t.Helper()
	db := testutil.NewDB(t)

	cfg := &config.Config{
		AppMode:    "dev",
		BcryptCost: password.MinCost,
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: time.Hour,
			Issuer: "test",
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	for _, h := range chain {
		app.Use(h)
	}
	routes.Setup(app, db, cfg, nil)

	return &server{
		app:    app,
		users:  services.NewUserService(repositories.NewUserRepository(db), password.NewHasher(password.MinCost)),
		issuer: jwt.NewIssuer(jwt.Config{Secret: "test-secret", Expiry: time.Hour}),
	}
}

func (s *server) token(t *testing.T, email string, role domain.Role) string {
	t.Helper()
	user, err := s.users.Create(context.Background(), &services.CreateUserInput{
		Name:     "Test " + string(role),
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)

	token, _, err := s.issuer.Issue(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}

func (s *server) call(t *testing.T, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func idOf(t *testing.T, data json.RawMessage) string {
	t.Helper()
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &v))
	require.NotEmpty(t, v.ID)
	return v.ID
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	status, body := s.call(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, 200, status)
	assert.True(t, body.Success)
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t)

	status, body := s.call(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "Maria Santos",
		"email":    "Maria@Valiant.ph",
		"password": "password123",
	})
	require.Equal(t, 201, status, body.Message)
	assert.NotEmpty(t, body.Token)
	assert.Contains(t, string(body.User), `"role":"employee"`)

	status, body = s.call(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "Maria Again",
		"email":    "maria@valiant.ph",
		"password": "password123",
	})
	assert.Equal(t, 409, status)

	status, body = s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "maria@valiant.ph",
		"password": "wrong-password",
	})
	assert.Equal(t, 401, status)
	assert.False(t, body.Success)

	status, body = s.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "maria@valiant.ph",
		"password": "password123",
	})
	require.Equal(t, 200, status)
	token := body.Token
	require.NotEmpty(t, token)

	status, body = s.call(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body.Data), `"email":"maria@valiant.ph"`)
	assert.NotContains(t, string(body.Data), "password")
}

func TestAuthorization(t *testing.T) {
	s := newServer(t)
	employee := s.token(t, "crew@valiant.ph", domain.RoleEmployee)
	admin := s.token(t, "admin@valiant.ph", domain.RoleAdmin)

	status, body := s.call(t, http.MethodGet, "/api/employees", "", nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Access token required", body.Message)

	status, _ = s.call(t, http.MethodGet, "/api/employees", employee, nil)
	assert.Equal(t, 200, status)

	status, body = s.call(t, http.MethodGet, "/api/users", employee, nil)
	assert.Equal(t, 403, status)
	assert.Equal(t, "You don't have permission to access this resource", body.Message)

	status, _ = s.call(t, http.MethodPost, "/api/departments", employee, map[string]string{"name": "Deck"})
	assert.Equal(t, 403, status)

	status, body = s.call(t, http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body.Data), `"total":2`)
}

func TestEmployeeAndPayrollEndpoints(t *testing.T) {
	s := newServer(t)
	admin := s.token(t, "admin@valiant.ph", domain.RoleAdmin)
	manager := s.token(t, "manager@valiant.ph", domain.RoleManager)

	status, body := s.call(t, http.MethodGet, "/api/employees/does-not-exist", manager, nil)
	assert.Equal(t, 404, status)
	assert.False(t, body.Success)

	status, body = s.call(t, http.MethodPost, "/api/departments", admin, map[string]string{"name": "Operations"})
	require.Equal(t, 201, status, body.Message)
	departmentID := idOf(t, body.Data)

	status, body = s.call(t, http.MethodPost, "/api/employees", manager, map[string]interface{}{
		"firstName":    "Juan",
		"lastName":     "Dela Cruz",
		"email":        "juan@valiant.ph",
		"phone":        "09170000000",
		"departmentId": departmentID,
		"position":     "Stevedor",
		"salary":       100,
	})
	require.Equal(t, 201, status, body.Message)
	assert.Contains(t, string(body.Data), `"employeeId":"EMP001"`)
	employeeID := idOf(t, body.Data)

	status, body = s.call(t, http.MethodGet, "/api/employees?status=all", manager, nil)
	assert.Equal(t, 200, status)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)

	payroll := map[string]interface{}{
		"employee":     employeeID,
		"payPeriod":    map[string]string{"startDate": "2024-03-01", "endDate": "2024-03-15"},
		"regularHours": 40,
		"rate":         100,
	}

	status, body = s.call(t, http.MethodPost, "/api/payroll", manager, payroll)
	require.Equal(t, 201, status, body.Message)
	assert.Contains(t, string(body.Data), `"grossPay":4000`)

	status, body = s.call(t, http.MethodPost, "/api/payroll", manager, payroll)
	assert.Equal(t, 409, status)
	assert.Equal(t, "Payroll for this employee and pay period already exists", body.Message)

	status, _ = s.call(t, http.MethodGet, "/api/payroll?startDate=not-a-date", manager, nil)
	assert.Equal(t, 400, status)

	status, _ = s.call(t, http.MethodGet, "/api/payroll/vessel/any?endDate=2024-13-01", manager, nil)
	assert.Equal(t, 400, status)

	status, _ = s.call(t, http.MethodDelete, "/api/employees/"+employeeID, manager, nil)
	assert.Equal(t, 403, status)

	status, _ = s.call(t, http.MethodDelete, "/api/employees/"+employeeID, admin, nil)
	assert.Equal(t, 200, status)
}

func TestStoreTimeoutSurfacesAsUnavailable(t *testing.T) {
	s := newServer(t, middleware.StoreTimeout(time.Nanosecond))
	manager := s.token(t, "manager@valiant.ph", domain.RoleManager)

	status, body := s.call(t, http.MethodGet, "/api/employees", manager, nil)
	assert.Equal(t, 503, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Service temporarily unavailable, please retry", body.Message)
}

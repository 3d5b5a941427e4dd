package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dashcommerce/admin-service/config"
	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testAPI struct {
	router *gin.Engine
	token  string
	t      *testing.T
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Product{},
		&domain.Order{},
	))

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMn = 60

	log := logger.New(logger.ERROR)
	router := SetupRouter(gdb, cfg, prometheus.NewRegistry(), log)

	api := &testAPI{router: router, t: t}
	api.registerAndLogin("admin", "sup3rsecret", "admin@example.com")
	return api
}

// registerAndLogin obtains a bearer token for the protected routes
func (a *testAPI) registerAndLogin(username, password, email string) {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/auth/register", map[string]any{
		"username": username,
		"password": password,
		"email":    email,
	}, false)
	require.Equal(a.t, http.StatusCreated, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, false)
	require.Equal(a.t, http.StatusOK, w.Code)

	var resp domain.TokenResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	a.token = resp.Token
}

func (a *testAPI) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/api/users", "/api/customers", "/api/products", "/api/orders"} {
		w := api.do(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestEmptyListIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/products", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No products found"}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/customers", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No customers found"}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/orders", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No orders found"}`, w.Body.String())
}

func TestGetUpdateDeleteNonexistent(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/products/9999", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, w.Body.String())

	w = api.do(http.MethodPut, "/api/customers/9999", map[string]any{"name": "Ghost"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, "/api/orders/9999", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// update must not have created anything
	w = api.do(http.MethodGet, "/api/customers", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductLifecycle(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/products", map[string]any{
		"name":  "Widget",
		"price": 9.99,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, 9.99, created.Price)
	assert.Nil(t, created.Description)
	assert.Equal(t, 0, created.Stock)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	// description must serialize as explicit null
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	val, present := raw["description"]
	assert.True(t, present)
	assert.Nil(t, val)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Price, fetched.Price)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerPartialUpdate(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/customers", map[string]any{
		"name":  "Ann",
		"email": "ann@example.com",
		"phone": "555-0100",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = api.do(http.MethodPut, fmt.Sprintf("/api/customers/%d", created.ID), map[string]any{
		"email": "ann@corp.example.com",
	}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, "ann@corp.example.com", updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)

	// round-trip get reflects exactly the merged record
	w = api.do(http.MethodGet, fmt.Sprintf("/api/customers/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, updated.Name, fetched.Name)
	assert.Equal(t, updated.Email, fetched.Email)
}

func TestOrderDefaultsAndReferentialCheck(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/customers", map[string]any{
		"name":  "Ann",
		"email": "ann@example.com",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var customer domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))

	w = api.do(http.MethodPost, "/api/orders", map[string]any{
		"customerId":  customer.ID,
		"totalAmount": 42.50,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, customer.ID, order.CustomerID)

	// order referencing a customer that does not exist is a client error
	w = api.do(http.MethodPost, "/api/orders", map[string]any{
		"customerId":  99999,
		"totalAmount": 10.0,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicateIsConflict(t *testing.T) {
	api := newTestAPI(t)

	body := map[string]any{"name": "Ann", "email": "ann@example.com"}
	w := api.do(http.MethodPost, "/api/customers", body, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodPost, "/api/customers", map[string]any{
		"name":  "Other Ann",
		"email": "ann@example.com",
	}, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Customer already exists"}`, w.Body.String())
}

func TestCreateMissingRequiredFieldIsValidationError(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/products", map[string]any{
		"price": 9.99,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsersListNeverExposesPasswords(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/users", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0]["username"])
	assert.NotContains(t, users[0], "password")
}

func TestRegisterDuplicateUser(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "admin",
		"password": "sup3rsecret",
		"email":    "admin@example.com",
	}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())

	w = api.do(http.MethodPost, "/api/auth/login", map[string]any{
		"username": "nobody",
		"password": "whatever",
	}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidIDFormat(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/products/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid product ID format"}`, w.Body.String())
}

func TestHealthAndMetricsAreUnprotected(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

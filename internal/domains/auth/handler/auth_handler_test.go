package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/auth"
	authService "portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/pkg/jwt"
)

type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]auth.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]auth.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, u *auth.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.Email]; exists {
		return 0, auth.ErrEmailAlreadyExists
	}
	m.nextID++
	u.ID = m.nextID
	m.users[u.Email] = *u
	return u.ID, nil
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &u, nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (m *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

func setupAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(authService.NewAuthService(newMemoryUserRepo(), manager))

	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	return router
}

func postJSON(router *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLoginOverHTTP(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := setupAuthRouter(manager)

	creds := map[string]string{"email": "admin@portfolio.com", "password": "admin123"}

	w := postJSON(router, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "admin123")

	// Same email again conflicts.
	w = postJSON(router, "/api/auth/register", creds)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(router, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data auth.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Data.AccessToken)
	assert.Equal(t, "admin@portfolio.com", res.Data.User.Email)

	claims, err := manager.ValidateToken(res.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.Data.User.ID, claims.UserID)
}

func TestLoginFailuresAreUniformOverHTTP(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := setupAuthRouter(manager)

	w := postJSON(router, "/api/auth/register", map[string]string{
		"email":    "admin@portfolio.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := postJSON(router, "/api/auth/login", map[string]string{
		"email":    "nobody@portfolio.com",
		"password": "admin123",
	})
	wrongPassword := postJSON(router, "/api/auth/login", map[string]string{
		"email":    "admin@portfolio.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Identical body, so the endpoint cannot be used to probe for accounts.
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestRegisterValidationOverHTTP(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := setupAuthRouter(manager)

	w := postJSON(router, "/api/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

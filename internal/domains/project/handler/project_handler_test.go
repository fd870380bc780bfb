package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/jwt"
)

type memoryProjectService struct {
	mu       sync.Mutex
	nextID   int64
	projects map[int64]project.Project
}

func newMemoryProjectService() *memoryProjectService {
	return &memoryProjectService{projects: make(map[int64]project.Project)}
}

func (m *memoryProjectService) List(ctx context.Context) ([]project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]project.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryProjectService) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	return &p, nil
}

func (m *memoryProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	status := req.Status
	if status == "" {
		status = project.StatusNew
	}
	p := project.Project{ID: m.nextID, Title: req.Title, Description: req.Description, Status: status, Order: req.Order}
	m.projects[p.ID] = p
	return &p, nil
}

func (m *memoryProjectService) Update(ctx context.Context, id int64, req project.UpdateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	m.projects[id] = p
	return &p, nil
}

func (m *memoryProjectService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

// setupRouter mirrors the production wiring: public reads, bearer-guarded
// mutations.
func setupRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewProjectHandler(newMemoryProjectService())
	requireAuth := middleware.RequireAuth(manager)

	router := gin.New()
	api := router.Group("/api/portfolio")
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.GetByID)
	api.POST("/projects", requireAuth, h.Create)
	api.PUT("/projects/:id", requireAuth, h.Update)
	api.DELETE("/projects/:id", requireAuth, h.Delete)
	return router
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := setupRouter(manager)

	token, err := manager.GenerateAccessToken(1, "admin@portfolio.com")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{"title": "portfolio", "order": 0})

	// Mutation without a token is rejected.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Same request with a bearer token succeeds.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/portfolio/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data project.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, project.StatusNew, created.Data.Status)
	id := created.Data.ID

	// Reads are public.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/portfolio/projects/%d", id), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/projects", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"portfolio"`)

	// Delete, then the entity is gone.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/portfolio/projects/%d", id), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/portfolio/projects/%d", id), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProjectValidationOverHTTP(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := setupRouter(manager)

	token, err := manager.GenerateAccessToken(1, "admin@portfolio.com")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{"status": "SHIPPED"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

func TestListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.ProductSvc = &stubProductService{items: []domain.Product{
		{ID: "p1", Name: "Book", PriceCents: 1000},
	}}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"name":"Book"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if !strings.Contains(body, `"price":10`) {
		t.Fatalf("expected decimal price, got %s", body)
	}
}

func TestCreateItemUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.AuthSvc = &stubAuthService{err: domain.ErrUnauthorized}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"credentials":{"email":"vasya@example.com","password":""},"name":"Book","price":10}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateItemForbiddenForManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.AuthSvc = &stubAuthService{err: domain.ErrForbidden}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"credentials":{"email":"ivan@example.com","password":"test"},"name":"Book","price":10}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateItemCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.AuthSvc = &stubAuthService{role: domain.RoleAdmin}
	deps.ProductSvc = &stubProductService{created: &domain.Product{ID: "p1", Name: "Book", PriceCents: 1000}}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"credentials":{"email":"admin@example.com","password":"god"},"name":"Book","price":10.00}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id":"p1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateItemBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, stubDeps())
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"price":"test"`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.AuthSvc = &stubAuthService{role: domain.RoleManager}
	deps.ProductSvc = &stubProductService{updateErr: domain.ErrNotFound}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"credentials":{"email":"ivan@example.com","password":"test"},"price":12.50}`
	req := httptest.NewRequest(http.MethodPut, "/items/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateItemOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := stubDeps()
	deps.AuthSvc = &stubAuthService{role: domain.RoleManager}
	deps.ProductSvc = &stubProductService{updated: &domain.Product{ID: "p1", Name: "Book", PriceCents: 1250}}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"credentials":{"email":"ivan@example.com","password":"test"},"price":12.50}`
	req := httptest.NewRequest(http.MethodPut, "/items/p1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"price":12.5`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

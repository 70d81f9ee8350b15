package salarysearches

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/auth"
	"career-backend/internal/shared/server/middleware"
)

func TestSalarySearchRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("salary-secret")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	token, err := tokens.Issue(4, "sam")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	router := gin.New()
	NewHandler(&Service{Repo: NewMemoryRepo()}).RegisterRoutes(router.Group("/api", middleware.Auth(tokens)))

	do := func(method, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/salary-searches", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	resp := do(http.MethodPost, `{"jobTitle":"Engineer","location":"Oslo","experience":"junior","salaryRange":{"min":1,"max":2},"notes":"from recruiter"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", resp.Code, resp.Body.String())
	}
	var created struct {
		Message string         `json:"message"`
		Search  map[string]any `json:"search"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Message != "Salary search saved successfully" || created.Search["notes"] != "from recruiter" {
		t.Fatalf("unexpected response: %+v", created)
	}

	for _, body := range []string{`{"jobTitle":"Engineer"}`, `not json`} {
		if resp := do(http.MethodPost, body); resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.Code)
		}
	}

	resp = do(http.MethodGet, "")
	var listed struct {
		Searches []map[string]any `json:"searches"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Searches) != 1 || listed.Searches[0]["jobTitle"] != "Engineer" {
		t.Fatalf("unexpected list: %+v", listed.Searches)
	}

	if resp := do(http.MethodDelete, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on clear, got %d", resp.Code)
	}
	resp = do(http.MethodGet, "")
	if strings.TrimSpace(resp.Body.String()) != `{"searches":[]}` {
		t.Fatalf("expected empty list, got %s", resp.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/salary-searches", nil)
	unauth := httptest.NewRecorder()
	router.ServeHTTP(unauth, req)
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", unauth.Code)
	}
}

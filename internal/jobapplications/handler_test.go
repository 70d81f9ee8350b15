package jobapplications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/auth"
	"career-backend/internal/shared/server/middleware"
)

type testClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c testClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp := httptest.NewRecorder()
	c.router.ServeHTTP(resp, req)
	return resp
}

func newTestClients(t *testing.T) (testClient, testClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("job-app-secret")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	router := gin.New()
	api := router.Group("/api", middleware.Auth(tokens))
	NewHandler(&Service{Repo: NewMemoryRepo()}).RegisterRoutes(api)

	alice, err := tokens.Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	bob, err := tokens.Issue(2, "bob")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return testClient{t: t, router: router, token: alice}, testClient{t: t, router: router, token: bob}
}

func TestJobApplicationLifecycle(t *testing.T) {
	alice, bob := newTestClients(t)

	resp := alice.do(http.MethodPost, "/api/job-applications", `{"company":"Acme","position":"Engineer","salary":120000}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Message != "Job application created successfully" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	path := "/api/job-applications/" + strconv.FormatInt(created.ID, 10)

	resp = alice.do(http.MethodGet, "/api/job-applications", "")
	var listed struct {
		Applications []applicationResponse `json:"applications"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Applications) != 1 || listed.Applications[0].Status != "applied" || listed.Applications[0].Salary != "120000" {
		t.Fatalf("unexpected list: %+v", listed.Applications)
	}

	if resp := bob.do(http.MethodPut, path, `{"company":"x","position":"y"}`); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign update, got %d", resp.Code)
	}
	if resp := bob.do(http.MethodDelete, path, ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign delete, got %d", resp.Code)
	}
	if resp := alice.do(http.MethodPut, path, `{"company":"Acme","position":"Engineer","status":"rejected"}`); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d %s", resp.Code, resp.Body.String())
	}
	if resp := alice.do(http.MethodDelete, path, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", resp.Code)
	}
	if resp := alice.do(http.MethodDelete, path, ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestJobApplicationBadInput(t *testing.T) {
	alice, _ := newTestClients(t)

	if resp := alice.do(http.MethodPost, "/api/job-applications", `{"company":"  "}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank fields, got %d", resp.Code)
	}
	if resp := alice.do(http.MethodPost, "/api/job-applications", `{"company":"a","position":"b","status":"lost"}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d", resp.Code)
	}
	if resp := alice.do(http.MethodDelete, "/api/job-applications/abc", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.Code)
	}
}

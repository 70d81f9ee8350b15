package coverletters

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

func TestCoverLetterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("cover-letter-secret")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	token, err := tokens.Issue(3, "ada")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	router := gin.New()
	api := router.Group("/api", middleware.Auth(tokens))
	NewHandler(&Service{Repo: NewMemoryRepo()}).RegisterRoutes(api)

	do := func(method, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, "/api/cover-letter", nil)
		} else {
			req = httptest.NewRequest(method, "/api/cover-letter", strings.NewReader(body))
		}
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	resp := do(http.MethodGet, "")
	if resp.Code != http.StatusOK || strings.TrimSpace(resp.Body.String()) != `{"coverLetterData":{}}` {
		t.Fatalf("expected empty letter, got %d %s", resp.Code, resp.Body.String())
	}

	resp = do(http.MethodPost, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected empty body to save, got %d %s", resp.Code, resp.Body.String())
	}

	resp = do(http.MethodPut, `{"jobInfo":{"company":"Acme"},"generatedContent":"Dear team"}`)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Cover letter saved successfully") {
		t.Fatalf("unexpected save response: %d %s", resp.Code, resp.Body.String())
	}

	resp = do(http.MethodGet, "")
	var body struct {
		CoverLetterData Letter `json:"coverLetterData"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.CoverLetterData.JobInfo.Company != "Acme" || body.CoverLetterData.GeneratedContent != "Dear team" {
		t.Fatalf("unexpected letter: %+v", body.CoverLetterData)
	}
}

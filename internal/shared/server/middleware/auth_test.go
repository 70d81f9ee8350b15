package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/auth"
)

func newGuardedRouter(t *testing.T, svc *auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(svc))
	router.GET("/api/resume", func(c *gin.Context) {
		id, ok := UserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ownerId": id, "username": UserNameFromContext(c)})
	})
	router.OPTIONS("/api/resume", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	svc, err := auth.NewTokenService("guard-secret")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	router := newGuardedRouter(t, svc)

	req := httptest.NewRequest(http.MethodOptions, "/api/resume", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthStoresOwnerFromToken(t *testing.T) {
	svc, err := auth.NewTokenService("guard-secret")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	router := newGuardedRouter(t, svc)
	token, err := svc.Issue(11, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, header := range []string{"Bearer " + token, "bearer " + token, "  Bearer   " + token + " "} {
		req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("header %q: expected 200, got %d", header, resp.Code)
		}
		var body struct {
			OwnerID  int64  `json:"ownerId"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.OwnerID != 11 || body.Username != "alice" {
			t.Fatalf("unexpected identity: %+v", body)
		}
	}
}

func TestAuthRejectsUniformly(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc, err := auth.NewTokenService("guard-secret", auth.WithClock(clock))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	expiredIssuer, err := auth.NewTokenService("guard-secret", auth.WithClock(func() time.Time { return now.Add(-8 * 24 * time.Hour) }))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	expired, err := expiredIssuer.Issue(5, "old")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	valid, err := svc.Issue(5, "bob")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	router := newGuardedRouter(t, svc)
	headers := []string{
		"",
		"Basic " + valid,
		"Bearer",
		"Bearer " + valid + " extra",
		"Bearer not.a.token",
		"Bearer " + expired,
		valid,
	}

	var firstBody string
	for i, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.Code)
		}
		if i == 0 {
			firstBody = resp.Body.String()
			continue
		}
		if resp.Body.String() != firstBody {
			t.Fatalf("header %q: expected uniform body %s, got %s", header, firstBody, resp.Body.String())
		}
	}
}

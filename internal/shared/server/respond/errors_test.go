package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/apperr"
)

func TestFromErrorMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{apperr.Validation("Invalid email format"), http.StatusBadRequest, "validation_error", "Invalid email format"},
		{apperr.Conflict("taken"), http.StatusConflict, "conflict", "taken"},
		{apperr.Unauthenticated("Invalid email or password"), http.StatusUnauthorized, "unauthorized", "Invalid email or password"},
		{apperr.NotFound("Job application not found"), http.StatusNotFound, "not_found", "Job application not found"},
		{apperr.Persistence(errors.New("pq: deadlock")), http.StatusInternalServerError, "internal_error", "Internal server error"},
		{errors.New("unclassified"), http.StatusInternalServerError, "internal_error", "Internal server error"},
	}

	for _, tc := range cases {
		resp := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(resp)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/resume", nil)

		FromError(c, tc.err)

		if resp.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, resp.Code)
		}
		var body ErrorResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error.Code != tc.code || body.Error.Message != tc.msg {
			t.Fatalf("%v: unexpected body %+v", tc.err, body)
		}
	}
}

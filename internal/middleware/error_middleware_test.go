package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/auth"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return w, body.Error.Code
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain not found", apperrors.ErrProgramNotFound, http.StatusNotFound, "RES_001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "AUTH_003"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "AUTH_002"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "AUTH_005"},
		{"validation failure", apperrors.ErrInvalidRating, http.StatusBadRequest, "VAL_001"},
		{"image required", apperrors.ErrImageRequired, http.StatusBadRequest, "VAL_001"},
		{"already subscribed", apperrors.ErrAlreadySubscribed, http.StatusConflict, "RES_002"},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "RES_002"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, code := handleError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, code)
			}
		})
	}
}

// Wrapped domain errors must keep mapping through their category sentinel.
func TestHandleAPIErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := apperrors.NewResourceNotFoundError("coach vanished")
	w, code := handleError(t, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if code != "RES_001" {
		t.Errorf("expected code RES_001, got %s", code)
	}
}

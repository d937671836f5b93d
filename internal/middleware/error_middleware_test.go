package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"wrong role", apperrors.ErrInsufficientRole, http.StatusForbidden, dto.ErrorCodeWrongRole},
		{"not owner", apperrors.ErrNotOwner, http.StatusForbidden, dto.ErrorCodeNotOwner},
		{"not member", apperrors.ErrNotClassMember, http.StatusForbidden, dto.ErrorCodeNotMember},
		{"book not found", apperrors.ErrWordBookNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrClassNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"already member", apperrors.ErrAlreadyMember, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"student not in class", apperrors.ErrStudentNotInClass, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid student", apperrors.ErrInvalidStudent, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid selector", apperrors.ErrInvalidSelector, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"navigation timeout", apperrors.ErrNavigationTimeout, http.StatusInternalServerError, dto.ErrorCodeCrawlFailed},
		{"browser unavailable", apperrors.ErrBrowserUnavailable, http.StatusInternalServerError, dto.ErrorCodeCrawlFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := classifyError(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("status = %d, want %d", status, tc.wantStatus)
			}
			if detail.Code != tc.wantCode {
				t.Fatalf("code = %s, want %s", detail.Code, tc.wantCode)
			}
		})
	}
}

func TestClassifyErrorHidesInternalCause(t *testing.T) {
	_, detail := classifyError(errors.New("pq: connection refused"))
	if detail.Message == "pq: connection refused" {
		t.Fatal("internal error message leaked to the client")
	}
}

func TestHandleValidationErrorNamesField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validate := validator.New()
	err := validate.Struct(struct {
		Username string `validate:"required"`
	}{})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleValidationError(c, err)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Field != "Username" {
		t.Fatalf("error detail = %+v, want field Username", resp.Error)
	}
}

func TestHandleAPIErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/wordbooks/99", nil)

	HandleAPIError(c, apperrors.ErrWordBookNotFound)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("error response marked as success")
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("unexpected error detail: %+v", resp.Error)
	}
}

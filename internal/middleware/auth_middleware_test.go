package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/okutan/lexbook/internal/pkg/auth"
	"github.com/rs/zerolog"
)

func TestActorFromContextDefaultsToUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	actor := ActorFromContext(c)
	if actor.Authenticated {
		t.Fatal("actor without middleware should be unauthenticated")
	}
	if actor.ID != 0 {
		t.Fatalf("actor ID = %d, want 0", actor.ID)
	}
}

func TestActorFromContextReturnsStoredActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	want := authz.Actor{ID: 7, Role: models.RoleTeacher, Authenticated: true}
	c.Set(ContextActorKey, want)

	got := ActorFromContext(c)
	if got != want {
		t.Fatalf("actor = %+v, want %+v", got, want)
	}
}

type stubIdentityResolver struct {
	user *models.User
	err  error
}

func (s *stubIdentityResolver) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

// A valid token for a deleted user must read as a bad token, while a failing
// identity lookup must surface as a server error, never as 401.
func TestAuthenticateIdentityLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	token, _, err := jwtService.GenerateToken(42, string(models.RoleTeacher))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	cases := []struct {
		name       string
		users      *stubIdentityResolver
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "existing user passes",
			users:      &stubIdentityResolver{user: &models.User{ID: 42, Role: models.RoleTeacher}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "deleted user reads as invalid token",
			users:      &stubIdentityResolver{err: apperrors.ErrUserNotFound},
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidToken,
		},
		{
			name:       "store outage is a server error",
			users:      &stubIdentityResolver{err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mw := NewAuthMiddleware(jwtService, tc.users, zerolog.Nop())

			recorder := httptest.NewRecorder()
			_, router := gin.CreateTestContext(recorder)
			router.GET("/me", mw.Authenticate(), func(c *gin.Context) {
				actor := ActorFromContext(c)
				if !actor.Authenticated || actor.ID != 42 {
					t.Errorf("handler saw actor %+v, want authenticated user 42", actor)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}
			if tc.wantCode != "" {
				var resp dto.ErrorResponse
				if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Error == nil || resp.Error.Code != tc.wantCode {
					t.Fatalf("error detail = %+v, want code %s", resp.Error, tc.wantCode)
				}
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		actor      *authz.Actor
		role       models.RoleType
		wantStatus int
	}{
		{
			name:       "matching role passes",
			actor:      &authz.Actor{ID: 1, Role: models.RoleTeacher, Authenticated: true},
			role:       models.RoleTeacher,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong role is forbidden",
			actor:      &authz.Actor{ID: 2, Role: models.RoleStudent, Authenticated: true},
			role:       models.RoleTeacher,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing actor is unauthorized",
			actor:      nil,
			role:       models.RoleTeacher,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			_, router := gin.CreateTestContext(recorder)

			router.GET("/guarded", func(c *gin.Context) {
				if tc.actor != nil {
					c.Set(ContextActorKey, *tc.actor)
				}
			}, RequireRole(tc.role), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}
		})
	}
}

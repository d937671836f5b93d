package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/okutan/lexbook/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// ContextActorKey is the context key the authentication middleware stores the
// acting user under.
const ContextActorKey = "actor"

// IdentityResolver loads the user a verified token names
type IdentityResolver interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware verifies bearer tokens and resolves the acting user
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      IdentityResolver
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users IdentityResolver, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// Authenticate validates the Authorization header, loads the user the token
// names and stores the resulting actor in the request context. Requests with
// a valid token for a since deleted user are rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortWithError(c, apperrors.ErrTokenExpired)
				return
			}
			abortWithError(c, apperrors.ErrTokenInvalid)
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// A valid token for a missing user means the account is gone.
			// Anything else is a lookup failure, not a bad token.
			if errors.Is(err, apperrors.ErrUserNotFound) {
				m.logger.Warn().Int64("userID", claims.UserID).Msg("Token names an unknown user")
				abortWithError(c, apperrors.ErrTokenInvalid)
				return
			}
			abortWithError(c, err)
			return
		}

		actor := authz.Actor{
			ID:            user.ID,
			Role:          user.Role,
			Authenticated: true,
		}
		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor, or an unauthenticated
// zero actor when the middleware did not run.
func ActorFromContext(c *gin.Context) authz.Actor {
	if value, exists := c.Get(ContextActorKey); exists {
		if actor, ok := value.(authz.Actor); ok {
			return actor
		}
	}
	return authz.Actor{}
}

// RequireRole rejects authenticated requests whose actor holds a different
// role. It must be mounted after Authenticate.
func RequireRole(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.Authenticated {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}
		if actor.Role != role {
			abortWithError(c, apperrors.ErrInsufficientRole)
			return
		}
		c.Next()
	}
}

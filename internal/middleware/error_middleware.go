package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/okutan/lexbook/internal/pkg/logger"
)

// HandleAPIError maps an application error to an HTTP status and writes the
// standard error envelope. Unknown errors become 500 and are logged with
// their cause, which is never exposed to the client.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error in request")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func abortWithError(c *gin.Context, err error) {
	status, detail := classifyError(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid authentication token")
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrInsufficientRole):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeWrongRole, "This action requires the teacher role")
	case errors.Is(err, apperrors.ErrNotOwner):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeNotOwner, "Only the owning teacher may do this")
	case errors.Is(err, apperrors.ErrNotClassMember):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeNotMember, "You are not a member of this class")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")

	case apperrors.Is(err, apperrors.ErrWordBookNotFound,
		apperrors.ErrWordNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case apperrors.Is(err, apperrors.ErrUsernameAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrResourceAlreadyExists):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	case apperrors.Is(err, apperrors.ErrAlreadyMember,
		apperrors.ErrStudentNotInClass,
		apperrors.ErrInvalidStudent,
		apperrors.ErrInvalidSelector,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	case apperrors.Is(err, apperrors.ErrNavigationTimeout,
		apperrors.ErrNavigationFailed,
		apperrors.ErrBrowserUnavailable):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeCrawlFailed, message)

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

// HandleValidationError writes a 400 for request binding failures. Validator
// failures name the first offending field so clients can point at it.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
			WithField(fieldErrs[0].Field()).
			WithDetails(fieldErrs[0].Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

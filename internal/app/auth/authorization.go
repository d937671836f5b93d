package auth

import (
	"context"

	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

// GuardService loads resource snapshots and runs the pure guard against them,
// translating deny reasons into application errors. Every mutating service path
// goes through either this wrapper or Authorize directly.
type GuardService struct {
	classRepo *repositories.ClassRepository
}

// NewGuardService creates a new GuardService
func NewGuardService(classRepo *repositories.ClassRepository) *GuardService {
	return &GuardService{
		classRepo: classRepo,
	}
}

// DenyError maps a deny reason to the matching application error.
func DenyError(reason DenyReason) error {
	switch reason {
	case ReasonUnauthenticated:
		return apperrors.ErrUnauthenticated
	case ReasonInsufficientRole:
		return apperrors.ErrInsufficientRole
	case ReasonNotOwner:
		return apperrors.ErrNotOwner
	case ReasonNotMember:
		return apperrors.ErrNotClassMember
	default:
		return apperrors.ErrPermissionDenied
	}
}

// Check runs the guard and converts a denial into an error.
func Check(actor Actor, action Action, resource Resource) error {
	if decision := Authorize(actor, action, resource); !decision.Allowed {
		return DenyError(decision.Reason)
	}
	return nil
}

// SnapshotOf extracts the guard's view of a class.
func SnapshotOf(class *models.Class) *ClassSnapshot {
	return &ClassSnapshot{
		TeacherID:  class.TeacherID,
		StudentIDs: class.StudentIDs,
	}
}

// AuthorizeClassAction loads the class and checks the action against it,
// returning the loaded class on success so callers need not re-read it.
func (s *GuardService) AuthorizeClassAction(ctx context.Context, actor Actor, action Action, classID int64) (*models.Class, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if err := Check(actor, action, Resource{Class: SnapshotOf(class)}); err != nil {
		return nil, err
	}

	return class, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ClassService handles classes and their student rosters
type ClassService struct {
	classRepo *repositories.ClassRepository
	userRepo  *repositories.UserRepository
	guard     *authz.GuardService
	logger    zerolog.Logger
}

// NewClassService creates a new ClassService
func NewClassService(
	classRepo *repositories.ClassRepository,
	userRepo *repositories.UserRepository,
	guard *authz.GuardService,
	logger zerolog.Logger,
) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		userRepo:  userRepo,
		guard:     guard,
		logger:    logger,
	}
}

// List returns the classes visible to the actor. Teachers see classes
// they own, students see classes they are enrolled in.
func (s *ClassService) List(ctx context.Context, actor authz.Actor) ([]*models.Class, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthenticated
	}
	if actor.Role == models.RoleTeacher {
		return s.classRepo.GetByTeacherID(ctx, actor.ID)
	}
	return s.classRepo.GetByStudentID(ctx, actor.ID)
}

// Get returns a single class if the actor owns it or is enrolled in it
func (s *ClassService) Get(ctx context.Context, actor authz.Actor, id int64) (*models.Class, error) {
	class, err := s.guard.AuthorizeClassAction(ctx, actor, authz.ActionClassRead, id)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// Create adds a new class owned by the acting teacher
func (s *ClassService) Create(ctx context.Context, actor authz.Actor, req *dto.CreateClassRequest) (*models.Class, error) {
	if err := authz.Check(actor, authz.ActionClassCreate, authz.Resource{}); err != nil {
		return nil, err
	}

	class := &models.Class{
		Name:       req.Name,
		TeacherID:  actor.ID,
		StudentIDs: []int64{},
		WordBookID: req.WordBookID,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("classID", class.ID).Int64("teacherID", actor.ID).Msg("Class created")
	return class, nil
}

// Update modifies a class, owning teacher only
func (s *ClassService) Update(ctx context.Context, actor authz.Actor, id int64, req *dto.UpdateClassRequest) (*models.Class, error) {
	if _, err := s.guard.AuthorizeClassAction(ctx, actor, authz.ActionClassUpdate, id); err != nil {
		return nil, err
	}
	return s.classRepo.Update(ctx, id, req.Name, req.WordBookID)
}

// Delete removes a class, owning teacher only
func (s *ClassService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if _, err := s.guard.AuthorizeClassAction(ctx, actor, authz.ActionClassDelete, id); err != nil {
		return err
	}

	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("classID", id).Msg("Class deleted")
	return nil
}

// AddStudent enrolls a student into a class roster, owning teacher only
func (s *ClassService) AddStudent(ctx context.Context, actor authz.Actor, classID, studentID int64) (*models.Class, error) {
	if _, err := s.guard.AuthorizeClassAction(ctx, actor, authz.ActionRosterAddStudent, classID); err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", apperrors.ErrInvalidStudent, studentID)
		}
		return nil, err
	}
	if student.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: user %d is not a student", apperrors.ErrInvalidStudent, studentID)
	}

	class, err := s.classRepo.AddStudent(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("classID", classID).Int64("studentID", studentID).Msg("Student added to class")
	return class, nil
}

// RemoveStudent drops a student from a class roster, owning teacher only
func (s *ClassService) RemoveStudent(ctx context.Context, actor authz.Actor, classID, studentID int64) (*models.Class, error) {
	if _, err := s.guard.AuthorizeClassAction(ctx, actor, authz.ActionRosterDropStudent, classID); err != nil {
		return nil, err
	}

	class, err := s.classRepo.RemoveStudent(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("classID", classID).Int64("studentID", studentID).Msg("Student removed from class")
	return class, nil
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/db"
	"github.com/rs/zerolog"
)

// WordBookService handles word book management
type WordBookService struct {
	database     *db.PostgresDB
	wordBookRepo *repositories.WordBookRepository
	wordRepo     *repositories.WordRepository
	logger       zerolog.Logger
}

// NewWordBookService creates a new WordBookService
func NewWordBookService(
	database *db.PostgresDB,
	wordBookRepo *repositories.WordBookRepository,
	wordRepo *repositories.WordRepository,
	logger zerolog.Logger,
) *WordBookService {
	return &WordBookService{
		database:     database,
		wordBookRepo: wordBookRepo,
		wordRepo:     wordRepo,
		logger:       logger,
	}
}

// List returns all word books, newest first
func (s *WordBookService) List(ctx context.Context) ([]*models.WordBook, error) {
	return s.wordBookRepo.GetAll(ctx)
}

// Get returns a single word book by id
func (s *WordBookService) Get(ctx context.Context, id int64) (*models.WordBook, error) {
	return s.wordBookRepo.GetByID(ctx, id)
}

// Create adds a new word book, teacher only
func (s *WordBookService) Create(ctx context.Context, actor authz.Actor, req *dto.CreateWordBookRequest) (*models.WordBook, error) {
	if err := authz.Check(actor, authz.ActionWordBookCreate, authz.Resource{}); err != nil {
		return nil, err
	}

	book := &models.WordBook{
		Title:       req.Title,
		Description: req.Description,
		Source:      req.Source,
	}
	if err := s.wordBookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("wordBookID", book.ID).Msg("Word book created")
	return book, nil
}

// Update modifies a word book's metadata, teacher only
func (s *WordBookService) Update(ctx context.Context, actor authz.Actor, id int64, req *dto.UpdateWordBookRequest) (*models.WordBook, error) {
	if err := authz.Check(actor, authz.ActionWordBookUpdate, authz.Resource{}); err != nil {
		return nil, err
	}

	return s.wordBookRepo.Update(ctx, id, req.Title, req.Description, req.Source)
}

// Delete removes a word book together with all of its words
func (s *WordBookService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if err := authz.Check(actor, authz.ActionWordBookDelete, authz.Resource{}); err != nil {
		return err
	}

	// Read first so a missing book reports not found rather than
	// silently deleting nothing.
	if _, err := s.wordBookRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.wordRepo.DeleteByWordBookIDTx(ctx, tx, id); err != nil {
			return err
		}
		return s.wordBookRepo.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("wordBookID", id).Msg("Word book deleted")
	return nil
}

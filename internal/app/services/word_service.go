package services

import (
	"context"

	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/rs/zerolog"
)

// WordService handles word entries inside word books
type WordService struct {
	wordRepo     *repositories.WordRepository
	wordBookRepo *repositories.WordBookRepository
	logger       zerolog.Logger
}

// NewWordService creates a new WordService
func NewWordService(
	wordRepo *repositories.WordRepository,
	wordBookRepo *repositories.WordBookRepository,
	logger zerolog.Logger,
) *WordService {
	return &WordService{
		wordRepo:     wordRepo,
		wordBookRepo: wordBookRepo,
		logger:       logger,
	}
}

// ListByWordBook returns all words of a word book in insertion order
func (s *WordService) ListByWordBook(ctx context.Context, wordBookID int64) ([]*models.Word, error) {
	if _, err := s.wordBookRepo.GetByID(ctx, wordBookID); err != nil {
		return nil, err
	}
	return s.wordRepo.GetByWordBookID(ctx, wordBookID)
}

// Get returns a single word by id
func (s *WordService) Get(ctx context.Context, id int64) (*models.Word, error) {
	return s.wordRepo.GetByID(ctx, id)
}

// Create adds a single word to a word book, teacher only
func (s *WordService) Create(ctx context.Context, actor authz.Actor, wordBookID int64, req *dto.CreateWordRequest) (*models.Word, error) {
	if err := authz.Check(actor, authz.ActionWordCreate, authz.Resource{}); err != nil {
		return nil, err
	}
	if _, err := s.wordBookRepo.GetByID(ctx, wordBookID); err != nil {
		return nil, err
	}

	word := &models.Word{
		WordBookID:    wordBookID,
		Word:          req.Word,
		Phonetic:      req.Phonetic,
		Pronunciation: req.Pronunciation,
		Definition:    req.Definition,
		Example:       req.Example,
		Image:         req.Image,
	}
	if err := s.wordRepo.Create(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}

// Update modifies a word entry, teacher only
func (s *WordService) Update(ctx context.Context, actor authz.Actor, id int64, req *dto.UpdateWordRequest) (*models.Word, error) {
	if err := authz.Check(actor, authz.ActionWordUpdate, authz.Resource{}); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Word != nil {
		fields["word"] = *req.Word
	}
	if req.Phonetic != nil {
		fields["phonetic"] = *req.Phonetic
	}
	if req.Pronunciation != nil {
		fields["pronunciation"] = *req.Pronunciation
	}
	if req.Definition != nil {
		fields["definition"] = *req.Definition
	}
	if req.Example != nil {
		fields["example"] = *req.Example
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	return s.wordRepo.Update(ctx, id, fields)
}

// Delete removes a word entry, teacher only
func (s *WordService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if err := authz.Check(actor, authz.ActionWordDelete, authz.Resource{}); err != nil {
		return err
	}
	return s.wordRepo.Delete(ctx, id)
}

// Import inserts a batch of words into a word book and refreshes its
// word count from the store.
func (s *WordService) Import(ctx context.Context, actor authz.Actor, wordBookID int64, req *dto.ImportWordsRequest) ([]*models.Word, error) {
	if err := authz.Check(actor, authz.ActionWordImport, authz.Resource{}); err != nil {
		return nil, err
	}
	if _, err := s.wordBookRepo.GetByID(ctx, wordBookID); err != nil {
		return nil, err
	}

	words := make([]*models.Word, 0, len(req.Words))
	for _, entry := range req.Words {
		words = append(words, &models.Word{
			WordBookID:    wordBookID,
			Word:          entry.Word,
			Phonetic:      entry.Phonetic,
			Pronunciation: entry.Pronunciation,
			Definition:    entry.Definition,
			Example:       entry.Example,
			Image:         entry.Image,
		})
	}

	inserted, err := s.wordRepo.InsertMany(ctx, words)
	if err != nil {
		return nil, err
	}

	count, err := s.wordRepo.CountByWordBookID(ctx, wordBookID)
	if err != nil {
		return nil, err
	}
	if err := s.wordBookRepo.UpdateWordCount(ctx, wordBookID, count); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("wordBookID", wordBookID).Int("imported", len(inserted)).Msg("Words imported")
	return inserted, nil
}

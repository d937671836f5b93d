package services

import (
	"context"

	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/pkg/crawler"
	"github.com/rs/zerolog"
)

// AcquisitionService builds word books by crawling external pages
type AcquisitionService struct {
	fetcher      *crawler.Fetcher
	wordBookRepo *repositories.WordBookRepository
	wordRepo     *repositories.WordRepository
	logger       zerolog.Logger
}

// NewAcquisitionService creates a new AcquisitionService
func NewAcquisitionService(
	fetcher *crawler.Fetcher,
	wordBookRepo *repositories.WordBookRepository,
	wordRepo *repositories.WordRepository,
	logger zerolog.Logger,
) *AcquisitionService {
	return &AcquisitionService{
		fetcher:      fetcher,
		wordBookRepo: wordBookRepo,
		wordRepo:     wordRepo,
		logger:       logger,
	}
}

// Acquire fetches a page, extracts its word entries and persists them
// as a new word book. The word count is always reconciled from the
// store, so a partial bulk insert still yields an accurate count.
func (s *AcquisitionService) Acquire(ctx context.Context, actor authz.Actor, req *dto.CrawlWordBookRequest) (*models.WordBook, error) {
	if err := authz.Check(actor, authz.ActionWordBookAcquire, authz.Resource{}); err != nil {
		return nil, err
	}

	cfg := crawler.SelectorConfig{}
	if req.Selector != nil {
		cfg = crawler.SelectorConfig{
			Container:  req.Selector.Container,
			Word:       req.Selector.Word,
			Phonetic:   req.Selector.Phonetic,
			Definition: req.Selector.Definition,
		}
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	content, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	extraction, err := crawler.Extract(content, cfg)
	if err != nil {
		return nil, err
	}

	book := &models.WordBook{
		Title:       extraction.Title,
		Description: extraction.Description,
		Source:      req.URL,
	}
	if err := s.wordBookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	if len(extraction.Words) > 0 {
		words := make([]*models.Word, 0, len(extraction.Words))
		for _, candidate := range extraction.Words {
			words = append(words, &models.Word{
				WordBookID: book.ID,
				Word:       candidate.Word,
				Phonetic:   candidate.Phonetic,
				Definition: candidate.Definition,
			})
		}

		copied, err := s.wordRepo.BulkCopy(ctx, words)
		if err != nil {
			// The book survives a failed bulk insert. The count
			// below reflects whatever actually landed.
			s.logger.Error().Err(err).
				Int64("wordBookID", book.ID).
				Int64("copied", copied).
				Msg("Bulk insert of crawled words failed")
		}
	}

	count, err := s.wordRepo.CountByWordBookID(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	if err := s.wordBookRepo.UpdateWordCount(ctx, book.ID, count); err != nil {
		return nil, err
	}
	book.WordCount = count

	s.logger.Info().
		Int64("wordBookID", book.ID).
		Str("source", req.URL).
		Int("wordCount", count).
		Msg("Word book acquired from page")

	return book, nil
}

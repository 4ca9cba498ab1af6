package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ripcody/VocabularyApp/internal/dictionary/wordsapi"
)

//go:generate mockgen -source=service.go -destination=../mocks/dictionary/mock_service.go -package=mock_dictionary

// Provider is an external dictionary that can resolve words the local store
// does not have.
type Provider interface {
	Lookup(ctx context.Context, word string) (wordsapi.Response, error)
}

// WordService exposes word lookup, search and statistics operations.
type WordService interface {
	Lookup(ctx context.Context, word string) (LookupResult, error)
	GetFromCache(ctx context.Context, word string) (*WordRecord, error)
	Search(ctx context.Context, term string, maxResults int) ([]WordRecord, error)
	GetStatistics(ctx context.Context) (Statistics, error)
}

// Service implements WordService on top of the local repository with an
// external provider fallback.
type Service struct {
	repository WordRepository
	provider   Provider
	logger     zerolog.Logger
}

// NewService creates a new Service.
func NewService(repository WordRepository, provider Provider, logger zerolog.Logger) *Service {
	return &Service{
		repository: repository,
		provider:   provider,
		logger:     logger,
	}
}

// Lookup resolves a word from the local store first, then the external
// provider. A provider hit is persisted locally so the next lookup is local.
// A word unknown to both sources yields a not-found result, not an error.
func (s *Service) Lookup(ctx context.Context, word string) (LookupResult, error) {
	record, err := s.repository.FindByWord(ctx, word)
	if err != nil {
		return LookupResult{}, fmt.Errorf("find word in store: %w", err)
	}
	if record != nil {
		return LookupResult{Found: true, Entry: record}, nil
	}

	response, err := s.provider.Lookup(ctx, word)
	if errors.Is(err, wordsapi.ErrWordNotFound) {
		return LookupResult{
			Found:   false,
			Message: fmt.Sprintf("no definition found for %q", word),
		}, nil
	}
	if err != nil {
		return LookupResult{}, fmt.Errorf("look up word externally: %w", err)
	}

	record = recordFromResponse(response)
	if err := s.repository.Upsert(ctx, record); err != nil {
		// The caller still gets the definition when only the cache write fails.
		s.logger.Warn().Err(err).Str("word", word).Msg("failed to persist external lookup")
	}

	return LookupResult{Found: true, Entry: record}, nil
}

// GetFromCache returns the locally stored record, or nil when absent.
// No external call is made.
func (s *Service) GetFromCache(ctx context.Context, word string) (*WordRecord, error) {
	record, err := s.repository.FindByWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("find word in store: %w", err)
	}
	return record, nil
}

// Search returns locally stored records partially matching term.
func (s *Service) Search(ctx context.Context, term string, maxResults int) ([]WordRecord, error) {
	records, err := s.repository.Search(ctx, term, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return records, nil
}

// GetStatistics returns aggregate counts over the local store.
func (s *Service) GetStatistics(ctx context.Context) (Statistics, error) {
	stats, err := s.repository.GetStatistics(ctx)
	if err != nil {
		return Statistics{}, fmt.Errorf("aggregate statistics: %w", err)
	}
	return stats, nil
}

func recordFromResponse(response wordsapi.Response) *WordRecord {
	senses := make(SenseList, 0, len(response.Results))
	for _, result := range response.Results {
		sense := Sense{
			Definition:   result.Definition,
			PartOfSpeech: result.PartOfSpeech,
		}
		if len(result.Examples) > 0 {
			sense.Example = result.Examples[0]
		}
		senses = append(senses, sense)
	}
	return &WordRecord{
		Word:       response.Word,
		Phonetic:   response.Pronunciation.All,
		SourceType: SourceTypeWordsAPI,
		Senses:     senses,
	}
}

package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// WordRepository defines operations for managing word records.
type WordRepository interface {
	FindByWord(ctx context.Context, word string) (*WordRecord, error)
	Search(ctx context.Context, term string, maxResults int) ([]WordRecord, error)
	Upsert(ctx context.Context, record *WordRecord) error
	GetStatistics(ctx context.Context) (Statistics, error)
}

// DBWordRepository implements WordRepository using MySQL.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// FindByWord returns the record for an exact word, or nil when absent.
func (r *DBWordRepository) FindByWord(ctx context.Context, word string) (*WordRecord, error) {
	var record WordRecord
	err := r.db.GetContext(ctx, &record, "SELECT * FROM words WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find word %q: %w", word, err)
	}
	return &record, nil
}

// Search returns records whose word partially matches term, ordered by word.
func (r *DBWordRepository) Search(ctx context.Context, term string, maxResults int) ([]WordRecord, error) {
	pattern := "%" + escapeLikePattern(term) + "%"
	var records []WordRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM words WHERE word LIKE ? ORDER BY word LIMIT ?",
		pattern, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search words by %q: %w", term, err)
	}
	return records, nil
}

// Upsert inserts or updates a word record.
func (r *DBWordRepository) Upsert(ctx context.Context, record *WordRecord) error {
	_, err := r.db.NamedExecContext(ctx,
		"INSERT INTO words (word, phonetic, source_type, senses) VALUES (:word, :phonetic, :source_type, :senses) ON DUPLICATE KEY UPDATE phonetic = VALUES(phonetic), source_type = VALUES(source_type), senses = VALUES(senses)",
		record)
	if err != nil {
		return fmt.Errorf("upsert word %q: %w", record.Word, err)
	}
	return nil
}

// GetStatistics aggregates counts over the word store.
func (r *DBWordRepository) GetStatistics(ctx context.Context) (Statistics, error) {
	stats := Statistics{
		ByPartOfSpeech: map[string]int{},
		BySourceType:   map[string]int{},
	}

	var summary struct {
		TotalWords    int          `db:"total_words"`
		LastUpdatedAt sql.NullTime `db:"last_updated_at"`
	}
	if err := r.db.GetContext(ctx, &summary,
		"SELECT COUNT(*) AS total_words, MAX(updated_at) AS last_updated_at FROM words"); err != nil {
		return Statistics{}, fmt.Errorf("count words: %w", err)
	}
	stats.TotalWords = summary.TotalWords
	if summary.LastUpdatedAt.Valid {
		updatedAt := summary.LastUpdatedAt.Time.UTC()
		stats.LastUpdatedAt = &updatedAt
	}

	type groupCount struct {
		Name  string `db:"name"`
		Count int    `db:"count"`
	}

	var bySource []groupCount
	if err := r.db.SelectContext(ctx, &bySource,
		"SELECT source_type AS name, COUNT(*) AS count FROM words GROUP BY source_type"); err != nil {
		return Statistics{}, fmt.Errorf("count words by source type: %w", err)
	}
	for _, row := range bySource {
		stats.BySourceType[row.Name] = row.Count
	}

	// Part of speech lives inside the senses JSON column, one entry per sense.
	var byPartOfSpeech []groupCount
	if err := r.db.SelectContext(ctx, &byPartOfSpeech,
		"SELECT s.name AS name, COUNT(*) AS count FROM words w, JSON_TABLE(w.senses, '$[*]' COLUMNS (name VARCHAR(32) PATH '$.partOfSpeech')) s GROUP BY s.name"); err != nil {
		return Statistics{}, fmt.Errorf("count words by part of speech: %w", err)
	}
	for _, row := range byPartOfSpeech {
		stats.ByPartOfSpeech[row.Name] = row.Count
	}

	return stats, nil
}

// escapeLikePattern escapes LIKE wildcards so user input matches literally.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(term)
}

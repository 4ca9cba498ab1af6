package dictionary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "mysql"), mock
}

func wordColumns() []string {
	return []string{"word", "phonetic", "source_type", "senses", "created_at", "updated_at"}
}

func TestDBWordRepository_FindByWord(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *WordRecord
		wantErr   bool
	}{
		{
			name: "returns the record",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(wordColumns()).
					AddRow("hello", "həˈloʊ", SourceTypeWordsAPI,
						[]byte(`[{"definition":"an expression of greeting","partOfSpeech":"noun"}]`), now, now)
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WithArgs("hello").
					WillReturnRows(rows)
			},
			want: &WordRecord{
				Word:       "hello",
				Phonetic:   "həˈloʊ",
				SourceType: SourceTypeWordsAPI,
				Senses: SenseList{
					{Definition: "an expression of greeting", PartOfSpeech: "noun"},
				},
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "absent word returns nil without error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WithArgs("hello").
					WillReturnRows(sqlmock.NewRows(wordColumns()))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WithArgs("hello").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewDBWordRepository(db)
			tt.setupMock(mock)

			got, err := repo.FindByWord(context.Background(), "hello")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_Search(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		term       string
		maxResults int
		setupMock  func(mock sqlmock.Sqlmock)
		wantWords  []string
		wantErr    bool
	}{
		{
			name:       "partial match ordered by word",
			term:       "app",
			maxResults: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(wordColumns()).
					AddRow("apple", "", SourceTypeWordsAPI, []byte(`[]`), now, now).
					AddRow("application", "", SourceTypeWordsAPI, []byte(`[]`), now, now)
				mock.ExpectQuery("SELECT \\* FROM words WHERE word LIKE \\? ORDER BY word LIMIT \\?").
					WithArgs("%app%", 10).
					WillReturnRows(rows)
			},
			wantWords: []string{"apple", "application"},
		},
		{
			name:       "escapes LIKE wildcards in the term",
			term:       "100%_sure",
			maxResults: 5,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word LIKE \\? ORDER BY word LIMIT \\?").
					WithArgs(`%100\%\_sure%`, 5).
					WillReturnRows(sqlmock.NewRows(wordColumns()))
			},
			wantWords: nil,
		},
		{
			name:       "db error",
			term:       "app",
			maxResults: 10,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word LIKE \\? ORDER BY word LIMIT \\?").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewDBWordRepository(db)
			tt.setupMock(mock)

			got, err := repo.Search(context.Background(), tt.term, tt.maxResults)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			words := make([]string, 0, len(got))
			for _, record := range got {
				words = append(words, record.Word)
			}
			if tt.wantWords == nil {
				assert.Empty(t, words)
			} else {
				assert.Equal(t, tt.wantWords, words)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_Upsert(t *testing.T) {
	record := &WordRecord{
		Word:       "hello",
		Phonetic:   "həˈloʊ",
		SourceType: SourceTypeWordsAPI,
		Senses: SenseList{
			{Definition: "an expression of greeting", PartOfSpeech: "noun"},
		},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts the record",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO words").
					WithArgs("hello", "həˈloʊ", SourceTypeWordsAPI,
						[]byte(`[{"definition":"an expression of greeting","partOfSpeech":"noun"}]`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO words").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewDBWordRepository(db)
			tt.setupMock(mock)

			err := repo.Upsert(context.Background(), record)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_GetStatistics(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates counts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDBWordRepository(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total_words, MAX\\(updated_at\\) AS last_updated_at FROM words").
			WillReturnRows(sqlmock.NewRows([]string{"total_words", "last_updated_at"}).AddRow(3, now))
		mock.ExpectQuery("SELECT source_type AS name, COUNT\\(\\*\\) AS count FROM words GROUP BY source_type").
			WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).
				AddRow(SourceTypeWordsAPI, 2).
				AddRow(SourceTypeImport, 1))
		mock.ExpectQuery("JSON_TABLE").
			WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).
				AddRow("noun", 2).
				AddRow("verb", 1))

		got, err := repo.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, got.TotalWords)
		assert.Equal(t, map[string]int{SourceTypeWordsAPI: 2, SourceTypeImport: 1}, got.BySourceType)
		assert.Equal(t, map[string]int{"noun": 2, "verb": 1}, got.ByPartOfSpeech)
		require.NotNil(t, got.LastUpdatedAt)
		assert.Equal(t, now, *got.LastUpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store has no last update time", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDBWordRepository(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total_words, MAX\\(updated_at\\) AS last_updated_at FROM words").
			WillReturnRows(sqlmock.NewRows([]string{"total_words", "last_updated_at"}).AddRow(0, nil))
		mock.ExpectQuery("SELECT source_type AS name, COUNT\\(\\*\\) AS count FROM words GROUP BY source_type").
			WillReturnRows(sqlmock.NewRows([]string{"name", "count"}))
		mock.ExpectQuery("JSON_TABLE").
			WillReturnRows(sqlmock.NewRows([]string{"name", "count"}))

		got, err := repo.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0, got.TotalWords)
		assert.Empty(t, got.BySourceType)
		assert.Empty(t, got.ByPartOfSpeech)
		assert.Nil(t, got.LastUpdatedAt)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDBWordRepository(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total_words").
			WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.GetStatistics(context.Background())
		assert.Error(t, err)
	})
}

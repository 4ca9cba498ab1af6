package dictionary

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Source types recorded on a word record.
const (
	SourceTypeWordsAPI = "wordsapi"
	SourceTypeImport   = "import"
)

// Sense is a single meaning of a word.
type Sense struct {
	Definition   string `json:"definition"`
	PartOfSpeech string `json:"partOfSpeech"`
	Example      string `json:"example,omitempty"`
}

// SenseList stores senses as a JSON column.
type SenseList []Sense

func (s SenseList) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal senses: %w", err)
	}
	return data, nil
}

func (s *SenseList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported senses column type %T", src)
	}
}

// WordRecord represents a word persisted in the local store.
type WordRecord struct {
	Word       string    `db:"word" json:"word"`
	Phonetic   string    `db:"phonetic" json:"phonetic,omitempty"`
	SourceType string    `db:"source_type" json:"sourceType"`
	Senses     SenseList `db:"senses" json:"senses"`
	CreatedAt  time.Time `db:"created_at" json:"-"`
	UpdatedAt  time.Time `db:"updated_at" json:"-"`
}

// LookupResult is the outcome of a combined local and external lookup.
// Found distinguishes "no such word" from a failed lookup, which is
// reported through an error instead.
type LookupResult struct {
	Found   bool        `json:"found"`
	Message string      `json:"message,omitempty"`
	Entry   *WordRecord `json:"entry,omitempty"`
}

// Statistics aggregates the contents of the local word store.
type Statistics struct {
	TotalWords     int            `json:"totalWords"`
	ByPartOfSpeech map[string]int `json:"byPartOfSpeech"`
	BySourceType   map[string]int `json:"bySourceType"`
	LastUpdatedAt  *time.Time     `json:"lastUpdatedAt,omitempty"`
}

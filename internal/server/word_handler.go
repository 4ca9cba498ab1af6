// Package server provides the HTTP handlers for the vocabulary API.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ripcody/VocabularyApp/internal/dictionary"
)

const (
	defaultMaxResults = 50

	genericErrorMessage  = "an unexpected error occurred"
	wordNotFoundMessage  = "word not found"
	maxResultsParseError = "maxResults must be an integer"
)

// envelope is the uniform response wrapper for every API endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WordHandler serves the word lookup, search and statistics endpoints.
type WordHandler struct {
	service   dictionary.WordService
	logger    zerolog.Logger
	validator *requestValidator
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(service dictionary.WordService, logger zerolog.Logger) (*WordHandler, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return nil, err
	}
	return &WordHandler{
		service:   service,
		logger:    logger,
		validator: validator,
	}, nil
}

type lookupRequest struct {
	Word string `json:"word" validate:"required,max=100"`
}

type cacheRequest struct {
	Word string `json:"word" validate:"required"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required,min=2"`
	MaxResults int    `json:"maxResults" validate:"min=1,max=100"`
}

// Lookup handles GET /api/words/lookup/{word}. It resolves the word from the
// local store with an external fallback.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if message, ok := h.validator.validate(lookupRequest{Word: word}); !ok {
		h.respondError(w, http.StatusBadRequest, message)
		return
	}

	result, err := h.service.Lookup(r.Context(), word)
	if err != nil {
		h.logger.Error().Err(err).Str("word", word).Msg("word lookup failed")
		h.respondError(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	if !result.Found {
		message := result.Message
		if message == "" {
			message = wordNotFoundMessage
		}
		h.respondError(w, http.StatusNotFound, message)
		return
	}

	h.respond(w, http.StatusOK, result.Entry)
}

// GetFromCache handles GET /api/words/cache/{word}. Only the local store is
// queried; absent words are a 404, never an external call.
func (h *WordHandler) GetFromCache(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if message, ok := h.validator.validate(cacheRequest{Word: word}); !ok {
		h.respondError(w, http.StatusBadRequest, message)
		return
	}

	record, err := h.service.GetFromCache(r.Context(), word)
	if err != nil {
		h.logger.Error().Err(err).Str("word", word).Msg("cache lookup failed")
		h.respondError(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	if record == nil {
		h.respondError(w, http.StatusNotFound, wordNotFoundMessage)
		return
	}

	h.respond(w, http.StatusOK, record)
}

// Search handles GET /api/words/search?searchTerm=&maxResults=. An empty
// result set is a 200 with an empty list.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	request := searchRequest{
		SearchTerm: strings.TrimSpace(query.Get("searchTerm")),
		MaxResults: defaultMaxResults,
	}
	if raw := query.Get("maxResults"); raw != "" {
		maxResults, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, maxResultsParseError)
			return
		}
		request.MaxResults = maxResults
	}
	if message, ok := h.validator.validate(request); !ok {
		h.respondError(w, http.StatusBadRequest, message)
		return
	}

	records, err := h.service.Search(r.Context(), request.SearchTerm, request.MaxResults)
	if err != nil {
		h.logger.Error().Err(err).Str("term", request.SearchTerm).Msg("word search failed")
		h.respondError(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	if records == nil {
		records = []dictionary.WordRecord{}
	}

	h.respond(w, http.StatusOK, records)
}

// GetStatistics handles GET /api/words/statistics.
func (h *WordHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStatistics(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("statistics aggregation failed")
		h.respondError(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	h.respond(w, http.StatusOK, stats)
}

func (h *WordHandler) respond(w http.ResponseWriter, statusCode int, data any) {
	h.writeJSON(w, statusCode, envelope{Success: true, Data: data})
}

func (h *WordHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, envelope{Success: false, Error: message})
}

func (h *WordHandler) writeJSON(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to write JSON response")
	}
}

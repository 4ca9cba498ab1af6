// Package wordsapi provides a client for the WordsAPI dictionary on RapidAPI.
package wordsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// ErrWordNotFound is returned when the API has no entry for a word.
var ErrWordNotFound = errors.New("word not found")

type Config struct {
	Host       string
	Key        string
	Timeout    time.Duration
	MaxRetries uint
}

type Client struct {
	config  Config
	baseURL string
	client  *resty.Client
}

func NewClient(config Config) *Client {
	client := resty.New()
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &Client{
		config:  config,
		baseURL: fmt.Sprintf("https://%s", config.Host),
		client:  client,
	}
}

// Lookup fetches the definitions of a word. Server-side failures are retried
// with backoff; a 404 from the API maps to ErrWordNotFound and is not retried.
func (c *Client) Lookup(ctx context.Context, word string) (Response, error) {
	var response Response
	var notFound bool
	if err := retry.Do(
		func() error {
			body, err := c.lookupAPI(ctx, word)
			if err != nil {
				if errors.Is(err, ErrWordNotFound) {
					notFound = true
					return retry.Unrecoverable(err)
				}
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if err := json.Unmarshal(body, &response); err != nil {
				return retry.Unrecoverable(fmt.Errorf("json.Unmarshal > %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.config.MaxRetries+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		if notFound {
			return Response{}, fmt.Errorf("word %q: %w", word, ErrWordNotFound)
		}
		return Response{}, err
	}
	return response, nil
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", c.config.Host).
		SetHeader("x-rapidapi-key", c.config.Key).
		Get(
			fmt.Sprintf("%s/words/%s", c.baseURL, url.PathEscape(word)),
		)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("word %q: %w", word, ErrWordNotFound)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &statusError{statusCode: res.StatusCode(), body: string(res.Body())}
	}
	return res.Body(), nil
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.statusCode, e.body)
}

func isRetryableError(err error) bool {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		// Retry on rate limiting and server errors
		return statusErr.statusCode == http.StatusTooManyRequests ||
			statusErr.statusCode >= http.StatusInternalServerError
	}
	if errors.Is(err, ErrWordNotFound) {
		return false
	}
	// Network-level failures from resty
	return true
}

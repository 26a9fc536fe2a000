// Package client is a Go consumer of the movie collection API: a thin request
// wrapper plus the error normalization the server's problem responses need.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"moviecollection/internal/data"

	"github.com/google/uuid"
)

const defaultBaseURL = "http://localhost:8080"

// buildBaseURL is a build-time default, settable with
//
//	-ldflags "-X moviecollection/internal/client.buildBaseURL=https://movies.example.com"
//
// It sits between the runtime environment variable and the hardcoded local
// fallback.
var buildBaseURL string

// resolveBaseURL picks the first configured value: explicit argument, the
// MOVIES_API_BASE_URL environment variable, the build-time default, then the
// local fallback.
func resolveBaseURL(explicit string) string {
	for _, candidate := range []string{explicit, os.Getenv("MOVIES_API_BASE_URL"), buildBaseURL} {
		if candidate != "" {
			return strings.TrimRight(candidate, "/")
		}
	}

	return defaultBaseURL
}

// APIError is returned for any non-2xx response. Message is the most
// specific human-readable description that could be extracted from the
// response body.
type APIError struct {
	Message string
	Status  int
	Errors  NormalizedErrors
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the movie collection API. Pass an empty baseURL to
// resolve it from the environment.
func New(baseURL string) *Client {
	return &Client{
		baseURL: resolveBaseURL(baseURL),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) ListMovies(ctx context.Context) ([]data.Movie, error) {
	var movies []data.Movie

	err := c.do(ctx, http.MethodGet, "/movies", nil, &movies)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id uuid.UUID) (*data.Movie, error) {
	var movie data.Movie

	err := c.do(ctx, http.MethodGet, "/movies/"+id.String(), nil, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (c *Client) CreateMovie(ctx context.Context, input *data.MovieInput) (*data.Movie, error) {
	var movie data.Movie

	err := c.do(ctx, http.MethodPost, "/movies", input, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// UpdateMovie replaces all user-settable fields of the movie with the given
// id. A successful update has no response body.
func (c *Client) UpdateMovie(ctx context.Context, id uuid.UUID, input *data.MovieInput) error {
	return c.do(ctx, http.MethodPut, "/movies/"+id.String(), input, nil)
}

// DeleteMovie removes the movie and returns the record as it was before
// deletion.
func (c *Client) DeleteMovie(ctx context.Context, id uuid.UUID) (*data.Movie, error) {
	var movie data.Movie

	err := c.do(ctx, http.MethodDelete, "/movies/"+id.String(), nil, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, dst any) error {
	var reqBody io.Reader

	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.responseError(res)
	}

	if dst == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// responseError turns a non-2xx response into an *APIError. The message is
// chosen in order of specificity: first field error, first general error,
// payload title, raw body text, then a generic status line.
func (c *Client) responseError(res *http.Response) error {
	message := fmt.Sprintf("Request failed: %d", res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &APIError{
			Message: message,
			Status:  res.StatusCode,
			Errors:  NormalizeProblemDetails(nil),
		}
	}

	var payload any
	if json.Unmarshal(raw, &payload) == nil {
		normalized := NormalizeProblemDetails(payload)
		if m := normalized.FirstMessage(); m != "" {
			message = m
		}

		return &APIError{
			Message: message,
			Status:  res.StatusCode,
			Errors:  normalized,
		}
	}

	// not structured data at all; fall back to the raw response text
	if text := strings.TrimSpace(string(raw)); text != "" {
		message = text
	}

	return &APIError{
		Message: message,
		Status:  res.StatusCode,
		Errors:  NormalizeProblemDetails(nil),
	}
}

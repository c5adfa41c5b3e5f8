package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPBackend implements Backend over the service's JSON API
type HTTPBackend struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPBackend creates a client for the service at baseURL.
// A zero timeout means requests run until the service answers or the connection fails.
func NewHTTPBackend(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Submit posts the video id to /submit
func (b *HTTPBackend) Submit(ctx context.Context, videoID string) error {
	if videoID == "" {
		return ErrEmptyVideoID
	}
	return b.post(ctx, "/submit", submitRequest{VideoID: videoID}, nil)
}

// Ask posts a question to /ask and returns the answer
func (b *HTTPBackend) Ask(ctx context.Context, videoID, question string) (string, error) {
	var resp askResponse
	if err := b.post(ctx, "/ask", askRequest{VideoID: videoID, Question: question}, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}

// GetComments posts the video id to /getcomment.
// A missing author is returned as an empty string.
func (b *HTTPBackend) GetComments(ctx context.Context, videoID string) ([]Comment, error) {
	if videoID == "" {
		return nil, ErrEmptyVideoID
	}

	var resp commentsResponse
	if err := b.post(ctx, "/getcomment", submitRequest{VideoID: videoID}, &resp); err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		author := ""
		if c.Author != nil {
			author = *c.Author
		}
		comments = append(comments, Comment{Author: author, Text: c.Comment})
	}
	return comments, nil
}

// post sends body as JSON and decodes a 2xx response into out (if non-nil).
// Non-2xx responses become *ServiceError.
func (b *HTTPBackend) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := b.logger.With(zap.String("path", path), zap.String("request_id", requestID))
	log.Debug("Sending request")
	start := time.Now()

	resp, err := b.client.Do(req)
	if err != nil {
		log.Warn("Request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	log.Info("Request finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServiceError{Status: resp.StatusCode}
		var er errorResponse
		if json.Unmarshal(data, &er) == nil {
			se.Detail = er.Detail
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

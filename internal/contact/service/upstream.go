package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devfolio-app/portfolio-backend/internal/contact/domain"
)

// UpstreamClient forwards contact submissions to the delivery endpoint.
// The endpoint is opaque: a 2xx with an optional {message} body is success,
// anything else carries an optional {error|message} and optional
// {errors: {field: message}}.
type UpstreamClient struct {
	baseURL string
	client  *http.Client
}

func NewUpstreamClient(baseURL string, timeout time.Duration) *UpstreamClient {
	return &UpstreamClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type upstreamPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type upstreamBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

// Send posts the submission upstream and decodes the reply. A transport
// failure returns ErrUpstreamUnavailable; any HTTP status decodes into an
// UpstreamResult instead of an error.
func (c *UpstreamClient) Send(ctx context.Context, sub domain.Submission) (*domain.UpstreamResult, error) {
	payload, err := json.Marshal(upstreamPayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	// The body is optional on both success and failure.
	var body upstreamBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	result := &domain.UpstreamResult{
		OK:          resp.StatusCode >= 200 && resp.StatusCode <= 299,
		StatusCode:  resp.StatusCode,
		FieldErrors: body.Errors,
	}

	if result.OK {
		result.Message = body.Message
	} else {
		result.Message = body.Error
		if result.Message == "" {
			result.Message = body.Message
		}
	}

	return result, nil
}

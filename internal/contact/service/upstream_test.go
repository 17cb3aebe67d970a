package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio-app/portfolio-backend/internal/contact/domain"
)

func testSubmission() domain.Submission {
	return domain.Submission{
		ID:      "sub-1",
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}
}

func TestUpstreamClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ada@example.com", payload["email"])
		// The honeypot field never leaves the service.
		assert.NotContains(t, payload, "website")

		w.Write([]byte(`{"message": "Thanks!"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testSubmission())
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "Thanks!", result.Message)
}

func TestUpstreamClient_SuccessWithEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testSubmission())
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Empty(t, result.Message)
}

func TestUpstreamClient_FieldLevelFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "validation failed", "errors": {"email": "unknown domain"}}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testSubmission())
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	assert.Equal(t, "validation failed", result.Message)
	assert.Equal(t, "unknown domain", result.FieldErrors["email"])
}

func TestUpstreamClient_GeneralFailureUsesMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message": "mailbox full"}`))
	}))
	defer server.Close()

	client := NewUpstreamClient(server.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testSubmission())
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Equal(t, "mailbox full", result.Message)
}

func TestUpstreamClient_TransportError(t *testing.T) {
	client := NewUpstreamClient("http://127.0.0.1:1/contact", 500*time.Millisecond)
	_, err := client.Send(context.Background(), testSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

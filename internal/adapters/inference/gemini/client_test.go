package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stray-pets/internal/ports/inference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "SECRET-GEMINI-KEY"

func newTestClient(t *testing.T, timeout time.Duration, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Config{BaseURL: srv.URL, APIKey: testKey, Model: "gemini-test", Timeout: timeout})
	require.NoError(t, err)
	return c
}

func TestAnalyze_RequestShapeAndText(t *testing.T) {
	c := newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, testKey, r.Header.Get("x-goog-api-key"))
		assert.NotContains(t, r.URL.RawQuery, testKey)

		var body struct {
			Contents []struct {
				Parts []struct {
					Text       string `json:"text"`
					InlineData *struct {
						MIMEType string `json:"mimeType"`
						Data     []byte `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		parts := body.Contents[0].Parts
		require.Len(t, parts, 2)
		assert.Equal(t, "describe", parts[0].Text)
		require.NotNil(t, parts[1].InlineData)
		assert.Equal(t, "image/png", parts[1].InlineData.MIMEType)
		assert.Equal(t, []byte{1, 2, 3}, parts[1].InlineData.Data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + "```json\\n{\\\"breed\\\":\\\"Poodle\\\"}\\n```" + `"}]}}]}`))
	})

	text, err := c.Analyze(context.Background(), inference.Image{Data: []byte{1, 2, 3}, MIMEType: "image/png"}, "describe")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{\"breed\":\"Poodle\"}\n```", text)
}

func TestAnalyze_Errors(t *testing.T) {
	c := newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad image","status":"INVALID_ARGUMENT"}}`))
	})
	_, err := c.Analyze(context.Background(), inference.Image{Data: []byte{1}, MIMEType: "image/png"}, "x")
	assert.ErrorIs(t, err, ErrUpstream)

	c = newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})
	_, err = c.Analyze(context.Background(), inference.Image{Data: []byte{1}, MIMEType: "image/png"}, "x")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	unconfigured, err := NewClient(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, unconfigured.IsConfigured())
	_, err = unconfigured.Analyze(context.Background(), inference.Image{}, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAnalyze_TimeoutErrorDoesNotCarryAPIKey(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, 50*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	_, err := c.Analyze(context.Background(), inference.Image{Data: []byte{1}, MIMEType: "image/png"}, "x")
	require.ErrorIs(t, err, ErrUpstream)
	assert.NotContains(t, err.Error(), testKey)
}

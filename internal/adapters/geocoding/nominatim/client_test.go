package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stray-pets/internal/ports/geocoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, Language: "ko"})
	require.NoError(t, err)
	return c
}

func TestReverse_MapsAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "37.497900", r.URL.Query().Get("lat"))
		assert.Equal(t, "127.027600", r.URL.Query().Get("lon"))
		assert.Equal(t, "ko", r.Header.Get("Accept-Language"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{"address":{"city":"Seoul","borough":"Gangnam-gu","road":"Teheran-ro"}}`))
	})

	p, err := c.Reverse(context.Background(), 37.4979, 127.0276)
	require.NoError(t, err)
	assert.Equal(t, geocoding.Place{Locality: "Seoul", Street: "Teheran-ro"}, p)
}

func TestReverse_StateAndTown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"state":"Gyeonggi-do","town":"Yangpyeong","suburb":"Okcheon"}}`))
	})

	p, err := c.Reverse(context.Background(), 37.5, 127.5)
	require.NoError(t, err)
	assert.Equal(t, geocoding.Place{AdminArea: "Gyeonggi-do", Locality: "Yangpyeong", Street: "Okcheon"}, p)
}

func TestReverse_Errors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	})
	_, err := c.Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNoResult)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err = c.Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrUpstream)
}

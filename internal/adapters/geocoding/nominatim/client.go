package nominatim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stray-pets/internal/platform/httpclient"
	"stray-pets/internal/ports/geocoding"
)

var (
	ErrNotConfigured = errors.New("geocoder not configured")
	ErrUpstream      = errors.New("geocoder upstream error")
	ErrNoResult      = errors.New("no address for coordinates")
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "stray-pets/1.0"
)

type Config struct {
	BaseURL   string
	UserAgent string // nominatim exige uno identificable
	Language  string // Accept-Language, ej. "ko"
	Timeout   time.Duration
}

type Client struct {
	language string
	http     *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}
	hc, err := httpclient.New(base, cfg.Timeout, httpclient.WithUserAgent(ua))
	if err != nil {
		return nil, err
	}
	return &Client{language: strings.TrimSpace(cfg.Language), http: hc}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil
}

type reverseResponse struct {
	Error   string `json:"error"`
	Address struct {
		State        string `json:"state"`
		Province     string `json:"province"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		County       string `json:"county"`
		Borough      string `json:"borough"`
		CityDistrict string `json:"city_district"`
		Road         string `json:"road"`
		Suburb       string `json:"suburb"`
	} `json:"address"`
}

// Reverse implementa geocoding.ReverseGeocoder con GET /reverse?format=jsonv2.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (geocoding.Place, error) {
	if !c.IsConfigured() {
		return geocoding.Place{}, ErrNotConfigured
	}

	q := url.Values{
		"format": {"jsonv2"},
		"lat":    {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":    {strconv.FormatFloat(lng, 'f', 6, 64)},
	}
	req := httpclient.Request{Method: http.MethodGet, Path: "/reverse", Query: q}
	if c.language != "" {
		req.Header = http.Header{"Accept-Language": {c.language}}
	}

	var out reverseResponse
	if err := c.http.Do(ctx, req, &out); err != nil {
		return geocoding.Place{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if out.Error != "" {
		return geocoding.Place{}, fmt.Errorf("%w: %s", ErrNoResult, out.Error)
	}

	a := out.Address
	return geocoding.Place{
		AdminArea: first(a.State, a.Province),
		Locality:  first(a.City, a.Town, a.Village, a.Borough, a.CityDistrict, a.County),
		Street:    first(a.Road, a.Suburb),
	}, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

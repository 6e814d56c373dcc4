package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stray-pets/internal/ports/inference"

	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrUpstream      = errors.New("gemini upstream error")
	ErrEmptyResponse = errors.New("gemini returned no text")
)

const DefaultModel = "gemini-2.5-pro"

type Config struct {
	BaseURL string // vacío => endpoint por defecto del SDK
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client manda imagen + instrucción a generateContent con el SDK genai.
// La API key viaja en el header x-goog-api-key, nunca en la URL.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return &Client{model: model}, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		// el análisis de imagen tarda bastante más que un request normal
		timeout = 60 * time.Second
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(base, "/") + "/"}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Client{genai: gc, model: model}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.genai != nil
}

// Analyze implementa inference.Analyzer. Devuelve el texto de la primera parte
// del primer candidato, tal cual.
func (c *Client) Analyze(ctx context.Context, img inference.Image, instruction string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(img.Data, img.MIMEType),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return "", ErrEmptyResponse
	}
	text := cand.Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

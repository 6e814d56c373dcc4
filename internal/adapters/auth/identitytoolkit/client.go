package identitytoolkit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stray-pets/internal/platform/httpclient"
	"stray-pets/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity toolkit client not configured")
	ErrUpstream      = errors.New("identity toolkit upstream error")
)

const (
	DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"
	signInPath     = "/accounts:signInWithPassword"
)

// Config del cliente REST. APIKey es la "Web API key" del proyecto.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client hace el sign-in por email/password, que el SDK admin no expone.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.New(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// SignIn devuelve auth.ErrInvalidCredentials si el proveedor rechaza email/password.
func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	if !c.IsConfigured() {
		return auth.Session{}, ErrNotConfigured
	}

	var out signInResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   signInPath,
		Header: http.Header{"X-Goog-Api-Key": {c.apiKey}},
		Body:   signInRequest{Email: email, Password: password, ReturnSecureToken: true},
	}, &out)
	if err != nil {
		if isCredentialError(err) {
			return auth.Session{}, auth.ErrInvalidCredentials
		}
		return auth.Session{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.LocalID = strings.TrimSpace(out.LocalID)
	if out.LocalID == "" || out.IDToken == "" {
		return auth.Session{}, fmt.Errorf("%w: response missing localId or idToken", ErrUpstream)
	}
	return auth.Session{UserID: out.LocalID, Email: out.Email, IDToken: out.IDToken}, nil
}

// El proveedor responde 400 con error.message en mayúsculas.
var credentialErrors = []string{
	"INVALID_LOGIN_CREDENTIALS",
	"EMAIL_NOT_FOUND",
	"INVALID_PASSWORD",
	"USER_DISABLED",
	"INVALID_EMAIL",
}

func isCredentialError(err error) bool {
	var se *httpclient.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusBadRequest {
		return false
	}
	for _, code := range credentialErrors {
		if strings.Contains(se.Body, code) {
			return true
		}
	}
	return false
}

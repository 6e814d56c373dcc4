package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backend elige dónde viven listings y perfiles.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendFirebase Backend = "firebase"
)

// AuthMode elige cómo se autentican los requests.
type AuthMode string

const (
	AuthDev      AuthMode = "dev"      // header X-Debug-User-ID, sin tokens
	AuthLocal    AuthMode = "local"    // cuentas en memoria con bcrypt
	AuthFirebase AuthMode = "firebase" // Firebase Auth + Identity Toolkit
)

type Firebase struct {
	ProjectID       string
	DatabaseURL     string
	StorageBucket   string
	CredentialsFile string
	WebAPIKey       string // Identity Toolkit (signInWithPassword)
}

type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config reúne la configuración del servicio (env + .env opcional).
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	AppName   string

	Backend    Backend
	AuthMode   AuthMode
	DBDSN      string
	SQLitePath string
	RedisURL   string

	PublicBaseURL string
	HTTPTimeout   time.Duration

	Firebase Firebase
	Gemini   Gemini

	GeocoderBaseURL string
}

// Load lee .env (si existe) y luego variables de entorno.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "stray-pets")
	v.SetDefault("SQLITE_PATH", "stray-pets.db")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")
	v.SetDefault("GEMINI_BASE_URL", "") // vacío => endpoint del SDK genai
	v.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")

	cfg := &Config{
		Port:      v.GetString("PORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		AppName:   v.GetString("APP_NAME"),

		DBDSN:      v.GetString("DB_DSN"),
		SQLitePath: v.GetString("SQLITE_PATH"),
		RedisURL:   v.GetString("REDIS_URL"),

		PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		HTTPTimeout:   v.GetDuration("HTTP_TIMEOUT"),

		Firebase: Firebase{
			ProjectID:       v.GetString("FIREBASE_PROJECT_ID"),
			DatabaseURL:     v.GetString("FIREBASE_DATABASE_URL"),
			StorageBucket:   v.GetString("FIREBASE_STORAGE_BUCKET"),
			CredentialsFile: v.GetString("FIREBASE_CREDENTIALS_FILE"),
			WebAPIKey:       v.GetString("FIREBASE_WEB_API_KEY"),
		},
		Gemini: Gemini{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			Model:   v.GetString("GEMINI_MODEL"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
		},
		GeocoderBaseURL: v.GetString("GEOCODER_BASE_URL"),
	}

	cfg.Backend = resolveBackend(v.GetString("STORE_BACKEND"), cfg)
	cfg.AuthMode = resolveAuthMode(v.GetString("AUTH_MODE"), cfg.Backend)
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	return cfg, nil
}

// resolveBackend: valor explícito o, si falta, lo inferimos de lo configurado.
func resolveBackend(raw string, cfg *Config) Backend {
	switch Backend(strings.ToLower(strings.TrimSpace(raw))) {
	case BackendMemory:
		return BackendMemory
	case BackendSQLite:
		return BackendSQLite
	case BackendPostgres:
		return BackendPostgres
	case BackendFirebase:
		return BackendFirebase
	}
	if cfg.Firebase.DatabaseURL != "" {
		return BackendFirebase
	}
	if cfg.DBDSN != "" {
		return BackendPostgres
	}
	return BackendMemory
}

// resolveAuthMode: por defecto Firebase Auth si el store es Firebase, si no cuentas locales.
func resolveAuthMode(raw string, backend Backend) AuthMode {
	switch m := AuthMode(strings.ToLower(strings.TrimSpace(raw))); m {
	case AuthDev, AuthLocal, AuthFirebase:
		return m
	}
	if backend == BackendFirebase {
		return AuthFirebase
	}
	return AuthLocal
}

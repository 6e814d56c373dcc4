package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stray-pets/internal/adapters/auth/identitytoolkit"
	"stray-pets/internal/adapters/auth/local"
	fbstore "stray-pets/internal/adapters/firebase"
	"stray-pets/internal/adapters/geocoding/nominatim"
	"stray-pets/internal/adapters/inference/gemini"
	mem "stray-pets/internal/adapters/storage/memory"
	"stray-pets/internal/adapters/storage/sqlstore"
	"stray-pets/internal/config"
	"stray-pets/internal/platform/guard"
	"stray-pets/internal/platform/logger"

	fb "firebase.google.com/go/v4"
)

// OptionsFromConfig arma los adapters según la config. cleanup libera conexiones
// (DB, Redis) y siempre es seguro llamarlo.
func OptionsFromConfig(ctx context.Context, cfg *config.Config, log logger.Logger) (opts Options, cleanup func(), err error) {
	var closers []func()
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	if log == nil {
		log = logger.Nop()
	}
	opts.Logger = log

	if cfg.RedisURL != "" {
		rdb, err := guard.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return Options{}, cleanup, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		opts.Guard = guard.NewRedis(rdb, 0)
	} else {
		opts.Guard = guard.NewLocal()
	}

	var app *fb.App
	switch cfg.Backend {
	case config.BackendMemory:
		opts.Listings = mem.NewListingRepo()
		opts.Users = mem.NewUserRepo()

	case config.BackendSQLite, config.BackendPostgres:
		db, err := OpenSQL(ctx, cfg)
		if err != nil {
			return Options{}, cleanup, err
		}
		closers = append(closers, func() { _ = db.Close() })
		opts.Listings = sqlstore.NewListingsRepo(db)
		opts.Users = sqlstore.NewUsersRepo(db)

	case config.BackendFirebase:
		app, err = firebaseApp(ctx, cfg)
		if err != nil {
			return Options{}, cleanup, err
		}
		dbc, err := app.Database(ctx)
		if err != nil {
			return Options{}, cleanup, fmt.Errorf("firebase database: %w", err)
		}
		opts.Listings = fbstore.NewListingsRepo(dbc)
		opts.Users = fbstore.NewUsersRepo(dbc)

		if cfg.Firebase.StorageBucket != "" {
			st, err := app.Storage(ctx)
			if err != nil {
				return Options{}, cleanup, fmt.Errorf("firebase storage: %w", err)
			}
			opts.Blobs = fbstore.NewBlobStore(st, cfg.Firebase.StorageBucket)
		}

	default:
		return Options{}, cleanup, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}

	if opts.Blobs == nil {
		bs := mem.NewBlobStore(cfg.PublicBaseURL)
		opts.Blobs = bs
		opts.BlobHandler = bs
	}

	switch cfg.AuthMode {
	case config.AuthDev:
		opts.Authenticator = local.NewProvider()
	case config.AuthLocal:
		p := local.NewProvider()
		opts.Authenticator = p
		opts.AuthVerifier = p
	case config.AuthFirebase:
		if app == nil {
			if app, err = firebaseApp(ctx, cfg); err != nil {
				return Options{}, cleanup, err
			}
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			return Options{}, cleanup, fmt.Errorf("firebase auth: %w", err)
		}
		itk, err := identitytoolkit.NewClient(identitytoolkit.Config{
			APIKey:  cfg.Firebase.WebAPIKey,
			Timeout: cfg.HTTPTimeout,
		})
		if err != nil {
			return Options{}, cleanup, err
		}
		if !itk.IsConfigured() {
			log.Warn("FIREBASE_WEB_API_KEY not set; /auth/login will fail", nil)
		}
		opts.Authenticator = identitytoolkit.NewAuthenticator(authClient, itk)
		opts.AuthVerifier = identitytoolkit.NewVerifier(authClient)
	default:
		return Options{}, cleanup, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}

	if cfg.Gemini.APIKey != "" {
		g, err := gemini.NewClient(ctx, gemini.Config{
			BaseURL: cfg.Gemini.BaseURL,
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
		})
		if err != nil {
			return Options{}, cleanup, fmt.Errorf("gemini: %w", err)
		}
		opts.Analyzer = g
	} else {
		log.Info("GEMINI_API_KEY not set; image analysis disabled", nil)
	}

	geo, err := nominatim.NewClient(nominatim.Config{
		BaseURL: cfg.GeocoderBaseURL,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return Options{}, cleanup, fmt.Errorf("geocoder: %w", err)
	}
	opts.Geocoder = geo

	log.Info("adapters ready", map[string]any{
		"backend": string(cfg.Backend),
		"auth":    string(cfg.AuthMode),
		"redis":   cfg.RedisURL != "",
	})
	return opts, cleanup, nil
}

// OpenSQL abre la DB del backend sqlite/postgres y aplica el schema.
func OpenSQL(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	driver, dsn := sqlstore.DriverSQLite, cfg.SQLitePath
	if cfg.Backend == config.BackendPostgres {
		driver, dsn = sqlstore.DriverPostgres, cfg.DBDSN
	}
	if dsn == "" {
		return nil, errors.New("sql backend selected but no DSN/path configured")
	}

	db, err := sqlstore.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := sqlstore.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func firebaseApp(ctx context.Context, cfg *config.Config) (*fb.App, error) {
	app, err := fbstore.NewApp(ctx, fbstore.Config{
		ProjectID:       cfg.Firebase.ProjectID,
		DatabaseURL:     cfg.Firebase.DatabaseURL,
		StorageBucket:   cfg.Firebase.StorageBucket,
		CredentialsFile: cfg.Firebase.CredentialsFile,
	})
	if err != nil {
		return nil, fmt.Errorf("firebase: %w", err)
	}
	return app, nil
}

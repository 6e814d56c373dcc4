package router

import (
	"net/http"

	"stray-pets/internal/adapters/auth/local"
	mem "stray-pets/internal/adapters/storage/memory"
	_ "stray-pets/internal/docs"
	"stray-pets/internal/domain/autofill"
	"stray-pets/internal/domain/listings"
	"stray-pets/internal/domain/users"
	"stray-pets/internal/middleware"
	"stray-pets/internal/platform/guard"
	"stray-pets/internal/platform/logger"
	"stray-pets/internal/ports/auth"
	"stray-pets/internal/ports/blobs"
	"stray-pets/internal/ports/geocoding"
	"stray-pets/internal/ports/inference"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options: todo es opcional. Lo que falte se arma en memoria (modo dev).
type Options struct {
	Logger logger.Logger

	AuthVerifier  auth.AuthVerifier  // nil => modo dev (X-Debug-User-ID)
	Authenticator auth.Authenticator // nil => cuentas locales en memoria

	Listings listings.Repository
	Users    users.Repository

	Blobs       blobs.Store
	BlobHandler http.Handler // sirve /blobs/* cuando las fotos quedan en memoria

	Guard guard.Guard

	Analyzer inference.Analyzer        // nil => /autofill/analyze responde analyzed=false
	Geocoder geocoding.ReverseGeocoder // nil => /autofill/location responde 502
}

func NewRouter(opts Options) http.Handler {
	opts = withDefaults(opts)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	if opts.BlobHandler != nil {
		r.Handle("/blobs/*", http.StripPrefix("/blobs", opts.BlobHandler))
	}

	// Services por módulo
	listingsSvc := listings.NewService(opts.Listings, opts.Blobs)
	usersSvc := users.NewService(opts.Users, opts.Authenticator)
	autofillSvc := autofill.NewService(opts.Analyzer, opts.Geocoder)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	listings.RegisterRoutes(r, listingsSvc, opts.Guard)
	autofill.RegisterRoutes(r, autofillSvc)

	return r
}

func withDefaults(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Authenticator == nil {
		opts.Authenticator = local.NewProvider()
	}
	if opts.Listings == nil {
		opts.Listings = mem.NewListingRepo()
	}
	if opts.Users == nil {
		opts.Users = mem.NewUserRepo()
	}
	if opts.Blobs == nil {
		bs := mem.NewBlobStore("")
		opts.Blobs = bs
		if opts.BlobHandler == nil {
			opts.BlobHandler = bs
		}
	}
	if opts.Guard == nil {
		opts.Guard = guard.NewLocal()
	}
	return opts
}

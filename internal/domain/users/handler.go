package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stray-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/register", registerHandler(svc))
	r.Post("/auth/login", loginHandler(svc))
	r.Get("/me", meHandler(svc))
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	UID          string    `json:"uid"`
	Nickname     string    `json:"nickname"`
	CreationDate time.Time `json:"creation_date"`
}

type sessionResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	IDToken     string `json:"id_token"`
	DisplayName string `json:"display_name"`
}

type meResponse struct {
	UID         string           `json:"uid"`
	DisplayName string           `json:"display_name"`
	Profile     *profileResponse `json:"profile,omitempty"`
}

// registerHandler godoc
// @Summary Registrar cuenta
// @Description Alta por email/password y creación del perfil Users/{uid}. Los tres campos son obligatorios.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "email, password, nickname"
// @Success 201 {object} profileResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "email already registered"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Nickname: req.Nickname,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.Log(r.Context()).Info("user registered", map[string]any{"uid": p.UID})
		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "email y password"
// @Success 200 {object} sessionResponse
// @Failure 401 {string} string "invalid email or password"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			UID:         sess.UserID,
			Email:       sess.Email,
			IDToken:     sess.IDToken,
			DisplayName: svc.DisplayName(r.Context(), sess.UserID, sess.Email),
		})
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Description Nombre a mostrar (nickname, o email si no hay perfil) y el perfil si existe.
// @Tags auth
// @Produce json
// @Success 200 {object} meResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		out := meResponse{
			UID:         claims.UserID,
			DisplayName: svc.DisplayName(r.Context(), claims.UserID, claims.Email),
		}
		if p, err := svc.Profile(r.Context(), claims.UserID); err == nil {
			pr := toProfileResponse(p)
			out.Profile = &pr
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toProfileResponse(p UserProfile) profileResponse {
	return profileResponse{
		UID:          p.UID,
		Nickname:     p.Nickname,
		CreationDate: p.CreationDate,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		middleware.Log(r.Context()).Error("account request failed", map[string]any{"err": err})
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

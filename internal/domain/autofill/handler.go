package autofill

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"stray-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const maxImageBytes = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/autofill", func(ar chi.Router) {
		ar.Post("/analyze", analyzeHandler(svc))
		ar.Get("/location", locationHandler(svc))
	})
}

type suggestionResponse struct {
	Breed     string `json:"breed,omitempty"`
	Age       string `json:"age,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Condition string `json:"condition,omitempty"`
	Feature   string `json:"feature,omitempty"`
}

type analyzeResponse struct {
	Analyzed   bool                `json:"analyzed"`
	Suggestion *suggestionResponse `json:"suggestion,omitempty"`
	Notice     string              `json:"notice,omitempty"`
}

type locationResponse struct {
	Location string `json:"location"`
}

// analyzeHandler godoc
// @Summary Autocompletar desde foto
// @Description Manda la foto frontal al modelo de imagen. Si el análisis falla responde 200 con analyzed=false: nunca bloquea el alta.
// @Tags autofill
// @Accept mpfd
// @Produce json
// @Param image formData file true "foto del animal"
// @Success 200 {object} analyzeResponse
// @Failure 400 {string} string "image is required"
// @Failure 401 {string} string "unauthorized"
// @Router /autofill/analyze [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middleware.CurrentUserID(r.Context()) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		f, fh, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "image is required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
		if err != nil || len(data) == 0 {
			http.Error(w, "image is required", http.StatusBadRequest)
			return
		}
		mime := fh.Header.Get("Content-Type")
		if mime == "" || mime == "application/octet-stream" {
			mime = http.DetectContentType(data)
		}

		s, err := svc.Analyze(r.Context(), data, mime)
		if err != nil {
			middleware.Log(r.Context()).Warn("image analysis failed", map[string]any{"err": err})
			writeJSON(w, http.StatusOK, analyzeResponse{Analyzed: false, Notice: "analysis failed, fill the form manually"})
			return
		}

		writeJSON(w, http.StatusOK, analyzeResponse{
			Analyzed: true,
			Suggestion: &suggestionResponse{
				Breed:     s.Breed,
				Age:       s.Age,
				Weight:    s.Weight,
				Condition: s.Condition,
				Feature:   s.Feature,
			},
		})
	}
}

// locationHandler godoc
// @Summary Ubicación desde coordenadas
// @Description Geocodificación inversa a "provincia ciudad calle", listo para el campo location.
// @Tags autofill
// @Produce json
// @Param lat query number true "latitud"
// @Param lng query number true "longitud"
// @Success 200 {object} locationResponse
// @Failure 400 {string} string "invalid input"
// @Failure 502 {string} string "location lookup failed"
// @Router /autofill/location [get]
func locationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lat, err1 := strconv.ParseFloat(q.Get("lat"), 64)
		lng, err2 := strconv.ParseFloat(q.Get("lng"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "lat and lng are required", http.StatusBadRequest)
			return
		}

		loc, err := svc.Locate(r.Context(), lat, lng)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				middleware.Log(r.Context()).Warn("reverse geocoding failed", map[string]any{"err": err})
				http.Error(w, "location lookup failed", http.StatusBadGateway)
			}
			return
		}
		writeJSON(w, http.StatusOK, locationResponse{Location: loc})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

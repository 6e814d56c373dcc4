package listings

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"stray-pets/internal/middleware"
	"stray-pets/internal/platform/guard"

	"github.com/go-chi/chi/v5"
)

const (
	maxUploadBytes = 32 << 20
	maxImageBytes  = 8 << 20

	// plazo para leer un alta multipart; reemplaza el ReadTimeout del server
	UploadReadTimeout = 5 * time.Minute
)

func RegisterRoutes(r chi.Router, svc *Service, g guard.Guard) {
	r.Route("/listings", func(lr chi.Router) {
		lr.Get("/", browseHandler(svc))
		lr.Post("/", createHandler(svc, g))

		lr.Get("/{key}", getHandler(svc))
		lr.Put("/{key}", updateHandler(svc, g))
		lr.Delete("/{key}", deleteHandler(svc, g))
	})

	r.Get("/me/listings", myListingsHandler(svc))
}

// listingRequest es el registro completo que manda la app (create y update).
type listingRequest struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Gender      string `json:"gender"`
	Status      string `json:"status"`
	Age         string `json:"age"`
	Description string `json:"description"`
	Weight      string `json:"weight"`
	Condition   string `json:"condition"`
	Feature     string `json:"feature"`
	Contact     string `json:"contact"`
	Location    string `json:"location"`
}

type imagesResponse struct {
	Front     string `json:"front,omitempty"`
	Side      string `json:"side,omitempty"`
	Free      string `json:"free,omitempty"`
	WithOwner string `json:"with_owner,omitempty"`
}

// listingResponse es un listing tal como lo muestra la app.
type listingResponse struct {
	Key         string         `json:"key"`
	OwnerID     string         `json:"owner_id"`
	Name        string         `json:"name"`
	Species     string         `json:"species"`
	Gender      string         `json:"gender"`
	Status      string         `json:"status"`
	Age         string         `json:"age"`
	Description string         `json:"description"`
	Weight      string         `json:"weight"`
	Condition   string         `json:"condition"`
	Feature     string         `json:"feature"`
	Contact     string         `json:"contact"`
	Location    string         `json:"location"`
	Images      imagesResponse `json:"images"`
	ImageURLs   []string       `json:"image_urls"`
	CanEdit     bool           `json:"can_edit"`
}

type createdResponse struct {
	Key string `json:"key"`
}

// browseHandler godoc
// @Summary Listar reportes
// @Description Trae todos los listings, aplica los filtros y devuelve lo más nuevo primero. Contexto read-only: can_edit siempre es false.
// @Tags listings
// @Produce json
// @Param q query string false "texto libre sobre name o species"
// @Param species query string false "substring de species"
// @Param location query string false "substring de location"
// @Param gender query string false "any | male | female"
// @Param status query string false "any | under_care | missing"
// @Success 200 {array} listingResponse
// @Failure 503 {string} string "store unavailable"
// @Router /listings [get]
func browseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.FetchAll(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		q := r.URL.Query()
		spec := FilterSpec{
			FreeText: q.Get("q"),
			Species:  q.Get("species"),
			Location: q.Get("location"),
			Gender:   q.Get("gender"),
			Status:   q.Get("status"),
		}

		uid := middleware.CurrentUserID(r.Context())
		writeJSON(w, http.StatusOK, toResponses(Apply(all, spec), uid, BrowseContext))
	}
}

// myListingsHandler godoc
// @Summary Mis publicaciones
// @Description Listings creados por el usuario autenticado, en contexto editable.
// @Tags listings
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} listingResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/listings [get]
func myListingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.CurrentUserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), uid)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items, uid, EditableContext))
	}
}

// getHandler godoc
// @Summary Detalle de un listing
// @Tags listings
// @Produce json
// @Param key path string true "key del listing"
// @Param context query string false "edit = contexto editable (por defecto read-only)"
// @Success 200 {object} listingResponse
// @Failure 404 {string} string "listing not found"
// @Router /listings/{key} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.Get(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		vc := BrowseContext
		if strings.EqualFold(r.URL.Query().Get("context"), "edit") {
			vc = EditableContext
		}
		writeJSON(w, http.StatusOK, toResponse(l, middleware.CurrentUserID(r.Context()), vc))
	}
}

// createHandler godoc
// @Summary Crear listing
// @Description Acepta JSON o multipart/form-data (campos + archivos front, side, free, with_owner). name y species son obligatorios.
// @Tags listings
// @Accept json,mpfd
// @Produce json
// @Param payload body listingRequest true "datos del animal"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "validation error"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "operation already in progress"
// @Failure 503 {string} string "store unavailable"
// @Router /listings [post]
func createHandler(svc *Service, g guard.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.CurrentUserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if isMultipart(r) {
			// si el writer no expone Unwrap quedan los plazos del server
			rc := http.NewResponseController(w)
			deadline := time.Now().Add(UploadReadTimeout)
			_ = rc.SetReadDeadline(deadline)
			_ = rc.SetWriteDeadline(deadline.Add(time.Minute))
		}

		in, uploads, err := decodeCreate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var key string
		err = guard.Run(r.Context(), g, guard.Key("listing", "create", uid), func() error {
			var err error
			key, err = svc.CreateWithImages(r.Context(), uid, in, uploads)
			return err
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.Log(r.Context()).Info("listing created", map[string]any{
			"key":    key,
			"owner":  uid,
			"images": len(uploads),
		})
		writeJSON(w, http.StatusCreated, createdResponse{Key: key})
	}
}

// updateHandler godoc
// @Summary Actualizar listing
// @Description Sobreescribe el registro completo. Solo el dueño; owner_id y fotos se conservan.
// @Tags listings
// @Accept json
// @Produce json
// @Param key path string true "key del listing"
// @Param payload body listingRequest true "registro completo"
// @Success 200 {object} listingResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "listing not found"
// @Router /listings/{key} [put]
func updateHandler(svc *Service, g guard.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.CurrentUserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		key := chi.URLParam(r, "key")

		var req listingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		in := req.toListing()
		if err := Validate(in); err != nil {
			writeError(w, r, err)
			return
		}

		if !authorizeOwner(w, r, svc, uid, key) {
			return
		}

		err := guard.Run(r.Context(), g, guard.Key("listing", "write", uid, key), func() error {
			return svc.Update(r.Context(), key, in)
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := svc.Get(r.Context(), key)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(updated, uid, EditableContext))
	}
}

// deleteHandler godoc
// @Summary Borrar listing
// @Tags listings
// @Param key path string true "key del listing"
// @Success 204
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "listing not found"
// @Router /listings/{key} [delete]
func deleteHandler(svc *Service, g guard.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.CurrentUserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		key := chi.URLParam(r, "key")

		if !authorizeOwner(w, r, svc, uid, key) {
			return
		}

		err := guard.Run(r.Context(), g, guard.Key("listing", "write", uid, key), func() error {
			return svc.Delete(r.Context(), key)
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.Log(r.Context()).Info("listing deleted", map[string]any{"key": key})
		w.WriteHeader(http.StatusNoContent)
	}
}

// authorizeOwner es el chequeo server-side que el store no hace.
func authorizeOwner(w http.ResponseWriter, r *http.Request, svc *Service, uid, key string) bool {
	current, err := svc.Get(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return false
	}
	if !IsOwner(uid, current) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func decodeCreate(r *http.Request) (Listing, []SlotUpload, error) {
	if !isMultipart(r) {
		var req listingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return Listing{}, nil, errors.New("invalid json")
		}
		return req.toListing(), nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return Listing{}, nil, errors.New("invalid multipart form")
	}
	req := listingRequest{
		Name:        r.FormValue("name"),
		Species:     r.FormValue("species"),
		Gender:      r.FormValue("gender"),
		Status:      r.FormValue("status"),
		Age:         r.FormValue("age"),
		Description: r.FormValue("description"),
		Weight:      r.FormValue("weight"),
		Condition:   r.FormValue("condition"),
		Feature:     r.FormValue("feature"),
		Contact:     r.FormValue("contact"),
		Location:    r.FormValue("location"),
	}

	uploads := make([]SlotUpload, 0, SlotCount)
	for field, headers := range r.MultipartForm.File {
		slot, ok := ParseSlot(field)
		if !ok || len(headers) == 0 {
			continue
		}
		up, err := readUpload(slot, headers[0])
		if err != nil {
			return Listing{}, nil, err
		}
		uploads = append(uploads, up)
	}
	return req.toListing(), uploads, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}

func readUpload(slot Slot, fh *multipart.FileHeader) (SlotUpload, error) {
	if fh.Size > maxImageBytes {
		return SlotUpload{}, errors.New("image too large: " + slot.String())
	}
	f, err := fh.Open()
	if err != nil {
		return SlotUpload{}, errors.New("cannot read image: " + slot.String())
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return SlotUpload{}, errors.New("cannot read image: " + slot.String())
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	return SlotUpload{Slot: slot, ContentType: ct, Data: data}, nil
}

func (req listingRequest) toListing() Listing {
	return Listing{
		Name:        req.Name,
		Species:     req.Species,
		Gender:      req.Gender,
		Status:      req.Status,
		Age:         req.Age,
		Description: req.Description,
		Weight:      req.Weight,
		Condition:   req.Condition,
		Feature:     req.Feature,
		Contact:     req.Contact,
		Location:    req.Location,
	}
}

func toResponses(items []Listing, uid string, vc ViewContext) []listingResponse {
	out := make([]listingResponse, 0, len(items))
	for _, l := range items {
		out = append(out, toResponse(l, uid, vc))
	}
	return out
}

func toResponse(l Listing, uid string, vc ViewContext) listingResponse {
	return listingResponse{
		Key:         l.Key,
		OwnerID:     l.OwnerID,
		Name:        l.Name,
		Species:     l.Species,
		Gender:      l.Gender,
		Status:      l.Status,
		Age:         l.Age,
		Description: l.Description,
		Weight:      l.Weight,
		Condition:   l.Condition,
		Feature:     l.Feature,
		Contact:     l.Contact,
		Location:    l.Location,
		Images: imagesResponse{
			Front:     l.Images[SlotFront],
			Side:      l.Images[SlotSide],
			Free:      l.Images[SlotFree],
			WithOwner: l.Images[SlotWithOwner],
		},
		ImageURLs: l.Images.URLs(),
		CanEdit:   CanEdit(uid, l, vc),
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "listing not found", http.StatusNotFound)
	case errors.Is(err, guard.ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrStoreUnavailable):
		middleware.Log(r.Context()).Error("listing store failed", map[string]any{"err": err})
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		middleware.Log(r.Context()).Error("listing request failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

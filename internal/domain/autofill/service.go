package autofill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"stray-pets/internal/ports/geocoding"
	"stray-pets/internal/ports/inference"
)

var (
	ErrAnalysisFailed = errors.New("analysis failed")
	ErrLookupFailed   = errors.New("location lookup failed")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotConfigured  = errors.New("autofill not configured")
)

// Instruction es el texto que acompaña a la foto.
const Instruction = "Analyze the dog in this photo and return ONLY a JSON object in English. Do not say anything else.\n\n" +
	"Format:\n" +
	"{\n" +
	"\"breed\": \"Dog breed (e.g., Golden Retriever)\",\n" +
	"\"age\": \"Estimated age (numbers only, e.g., 3)\",\n" +
	"\"weight\": \"Estimated weight in kg (numbers only, e.g., 15.5)\",\n" +
	"\"condition\": \"Brief health condition in English (e.g., Healthy coat)\",\n" +
	"\"feature\": \"Notable features in English (e.g., Floppy ears)\"\n" +
	"}"

const defaultMIME = "image/jpeg"

type Service struct {
	analyzer inference.Analyzer
	geocoder geocoding.ReverseGeocoder
}

// NewService acepta nil en cualquiera de los dos; la operación correspondiente
// devuelve ErrNotConfigured envuelto.
func NewService(analyzer inference.Analyzer, geocoder geocoding.ReverseGeocoder) *Service {
	return &Service{analyzer: analyzer, geocoder: geocoder}
}

// Analyze manda la foto al modelo y parsea la respuesta. Cualquier falla es
// ErrAnalysisFailed: quien llama lo trata como best effort.
func (s *Service) Analyze(ctx context.Context, image []byte, mime string) (Suggestion, error) {
	if len(image) == 0 {
		return Suggestion{}, fmt.Errorf("%w: empty image", ErrAnalysisFailed)
	}
	if s.analyzer == nil {
		return Suggestion{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, ErrNotConfigured)
	}
	if strings.TrimSpace(mime) == "" {
		mime = defaultMIME
	}

	text, err := s.analyzer.Analyze(ctx, inference.Image{Data: image, MIMEType: mime}, Instruction)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return ParseSuggestion(text)
}

// ParseSuggestion limpia los fences de markdown y decodifica el JSON.
// Las claves no distinguen mayúsculas; los valores numéricos se pasan a texto.
func ParseSuggestion(text string) (Suggestion, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return Suggestion{}, fmt.Errorf("%w: empty response", ErrAnalysisFailed)
	}

	var raw struct {
		Breed     looseString `json:"breed"`
		Age       looseString `json:"age"`
		Weight    looseString `json:"weight"`
		Condition looseString `json:"condition"`
		Feature   looseString `json:"feature"`
	}
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return Suggestion{}, fmt.Errorf("%w: decode: %v", ErrAnalysisFailed, err)
	}

	return Suggestion{
		Breed:     strings.TrimSpace(string(raw.Breed)),
		Age:       strings.TrimSpace(string(raw.Age)),
		Weight:    strings.TrimSpace(string(raw.Weight)),
		Condition: strings.TrimSpace(string(raw.Condition)),
		Feature:   strings.TrimSpace(string(raw.Feature)),
	}, nil
}

// Locate convierte coordenadas en "{provincia} {ciudad} {calle}", sin partes vacías.
func (s *Service) Locate(ctx context.Context, lat, lng float64) (string, error) {
	if !validCoords(lat, lng) {
		return "", fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}
	if s.geocoder == nil {
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, ErrNotConfigured)
	}

	p, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	loc := FormatPlace(p)
	if loc == "" {
		return "", fmt.Errorf("%w: no address for coordinates", ErrLookupFailed)
	}
	return loc, nil
}

func FormatPlace(p geocoding.Place) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{p.AdminArea, p.Locality, p.Street} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func validCoords(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// looseString acepta "3", 3 o null.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(t)
	case float64:
		*s = looseString(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = looseString(strconv.FormatBool(t))
	default:
		return fmt.Errorf("unexpected value %s", string(b))
	}
	return nil
}

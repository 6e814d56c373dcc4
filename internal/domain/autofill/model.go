package autofill

import (
	"strings"

	"stray-pets/internal/domain/listings"
)

// Suggestion es lo que devuelve el análisis de la foto. Todos los campos son opcionales.
type Suggestion struct {
	Breed     string
	Age       string
	Weight    string
	Condition string
	Feature   string
}

func (s Suggestion) IsEmpty() bool {
	return s == Suggestion{}
}

// ApplyTo completa el formulario solo con los campos que vinieron.
// Breed va a Species.
func (s Suggestion) ApplyTo(l *listings.Listing) {
	if l == nil {
		return
	}
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&l.Species, s.Breed)
	set(&l.Age, s.Age)
	set(&l.Weight, s.Weight)
	set(&l.Condition, s.Condition)
	set(&l.Feature, s.Feature)
}

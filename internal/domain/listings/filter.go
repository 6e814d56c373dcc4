package listings

import "strings"

// AnyValue es el valor "sin filtro" para Gender y Status. La app en coreano
// manda AnyValueKo.
const (
	AnyValue   = "any"
	AnyValueKo = "전체"
)

// FilterSpec es el snapshot de los filtros activos del listado. No se persiste.
type FilterSpec struct {
	FreeText string // name o species
	Species  string
	Location string
	Gender   string // "", "any" o "전체" = sin filtro; substring
	Status   string // "", "any" o "전체" = sin filtro; solo cuenta la primera palabra
}

// ResetFilter devuelve el FilterSpec con todo en "any".
func ResetFilter() FilterSpec {
	return FilterSpec{Gender: AnyValue, Status: AnyValue}
}

// IsEmpty indica que Apply solo invertiría el orden.
func (f FilterSpec) IsEmpty() bool {
	return term(f.FreeText) == "" &&
		term(f.Species) == "" &&
		term(f.Location) == "" &&
		choice(f.Gender) == "" &&
		statusToken(f.Status) == ""
}

// Matches es el predicado combinado (AND de todos los criterios activos).
func (f FilterSpec) Matches(l Listing) bool {
	if t := term(f.FreeText); t != "" && !containsFold(l.Name, t) && !containsFold(l.Species, t) {
		return false
	}
	if t := term(f.Species); t != "" && !containsFold(l.Species, t) {
		return false
	}
	if t := term(f.Location); t != "" && !containsFold(l.Location, t) {
		return false
	}
	if g := choice(f.Gender); g != "" && !containsFold(l.Gender, g) {
		return false
	}
	if st := statusToken(f.Status); st != "" && !containsFold(l.Status, st) {
		return false
	}
	return true
}

// Apply estrecha all con cada criterio activo y devuelve el resultado invertido
// (lo último cargado primero). No modifica all.
func Apply(all []Listing, spec FilterSpec) []Listing {
	out := make([]Listing, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if spec.Matches(all[i]) {
			out = append(out, all[i])
		}
	}
	return out
}

func term(s string) string {
	return strings.TrimSpace(s)
}

// choice: "" si el valor (o su primera palabra, ej. "전체 (Any)") es el de "sin filtro".
func choice(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	first := strings.Fields(s)[0]
	if strings.EqualFold(first, AnyValue) || first == AnyValueKo {
		return ""
	}
	return s
}

// statusToken: "under_care (보호중)" -> "under_care".
func statusToken(s string) string {
	s = choice(s)
	if s == "" {
		return ""
	}
	return strings.Fields(s)[0]
}

// containsFold: un campo vacío nunca matchea un término no vacío.
func containsFold(field, t string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(t))
}

package listings

import "strings"

// Gender de la mascota reportada. Texto libre; estos son los valores que ofrece
// la app. El filtro es por substring, así que no pueden contenerse entre sí.
type Gender string

const (
	GenderMale   Gender = "수컷"
	GenderFemale Gender = "암컷"
)

// Status del reporte. El filtro compara solo la primera palabra, así que
// "under_care (보호중)" y "under_care" matchean igual.
type Status string

const (
	StatusUnderCare Status = "under_care"
	StatusMissing   Status = "missing"
)

// Slot identifica cada una de las 4 fotos de un listing.
type Slot int

const (
	SlotFront     Slot = iota // usada para el análisis de imagen
	SlotSide
	SlotFree
	SlotWithOwner
)

// SlotCount es la cantidad fija de fotos por listing.
const SlotCount = 4

var slotNames = [SlotCount]string{"front", "side", "free", "with_owner"}

func (s Slot) String() string {
	if s < 0 || int(s) >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// ParseSlot acepta el nombre ("front") o la posición 1-based ("1").
func ParseSlot(raw string) (Slot, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for i, n := range slotNames {
		if raw == n || raw == string(rune('1'+i)) {
			return Slot(i), true
		}
	}
	return 0, false
}

// Images guarda las URLs por slot; "" = slot vacío.
type Images [SlotCount]string

// URLs devuelve solo los slots con foto, en orden de slot.
func (im Images) URLs() []string {
	out := make([]string, 0, SlotCount)
	for _, u := range im {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	return out
}

func (im Images) IsEmpty() bool {
	return len(im.URLs()) == 0
}

// Listing es un reporte de animal callejero/perdido.
type Listing struct {
	Key     string // asignada por el store al crear
	OwnerID string // se fija una sola vez, al crear

	Name        string
	Species     string
	Gender      string
	Status      string
	Age         string
	Description string
	Weight      string
	Condition   string
	Feature     string
	Contact     string
	Location    string

	Images Images
}

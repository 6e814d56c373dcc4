package listings

import "strings"

// ViewContext lo fija quien navega: el listado general siempre es read-only,
// "mis publicaciones" no.
type ViewContext struct {
	ReadOnly bool
}

var (
	BrowseContext   = ViewContext{ReadOnly: true}
	EditableContext = ViewContext{ReadOnly: false}
)

// CanEdit habilita editar/borrar solo al dueño y fuera de contextos read-only.
func CanEdit(currentUserID string, l Listing, ctx ViewContext) bool {
	currentUserID = strings.TrimSpace(currentUserID)
	if currentUserID == "" || ctx.ReadOnly {
		return false
	}
	return currentUserID == l.OwnerID
}

// IsOwner sin considerar el contexto de vista (lo usa el handler para 403).
func IsOwner(currentUserID string, l Listing) bool {
	currentUserID = strings.TrimSpace(currentUserID)
	return currentUserID != "" && currentUserID == l.OwnerID
}

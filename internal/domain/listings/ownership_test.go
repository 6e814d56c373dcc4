package listings

import "testing"

func TestCanEdit(t *testing.T) {
	l := Listing{Key: "k1", OwnerID: "owner-1"}

	cases := []struct {
		name string
		uid  string
		vc   ViewContext
		want bool
	}{
		{"not owner", "other", EditableContext, false},
		{"owner in browse context", "owner-1", BrowseContext, false},
		{"owner in editable context", "owner-1", EditableContext, true},
		{"anonymous editable", "", EditableContext, false},
		{"anonymous read-only", "", BrowseContext, false},
		{"whitespace user", "  ", EditableContext, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanEdit(tc.uid, l, tc.vc); got != tc.want {
				t.Fatalf("CanEdit(%q, %+v) = %v, want %v", tc.uid, tc.vc, got, tc.want)
			}
		})
	}
}

func TestCanEdit_EmptyUserNeverMatchesUnownedListing(t *testing.T) {
	// un listing sin dueño no se vuelve editable para un usuario anónimo
	if CanEdit("", Listing{OwnerID: ""}, EditableContext) {
		t.Fatalf("expected false for empty user and empty owner")
	}
	if IsOwner("", Listing{OwnerID: ""}) {
		t.Fatalf("expected IsOwner false for empty user")
	}
}

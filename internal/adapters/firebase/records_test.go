package firebase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stray-pets/internal/domain/listings"
	"stray-pets/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRecord_FieldNamesAndSlots(t *testing.T) {
	l := listings.Listing{
		Key:       "-Nabc",
		OwnerID:   "uid-1",
		Name:      "Max",
		Species:   "Golden Retriever",
		Gender:    "male",
		Status:    "under_care",
		Condition: "Healthy",
	}
	l.Images[listings.SlotFront] = "front.png"
	l.Images[listings.SlotWithOwner] = "owner.png"

	b, err := json.Marshal(toPetRecord(l))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "uid-1", raw["OwnerId"])
	assert.Equal(t, "front.png", raw["ImageUrl1"])
	assert.Equal(t, "", raw["ImageUrl2"])
	assert.Equal(t, "owner.png", raw["ImageUrl4"])
	assert.Equal(t, "Healthy", raw["Condition"])
	assert.NotContains(t, raw, "Key")

	var back petRecord
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, l, back.toListing("-Nabc"))
}

func TestPetRecord_DecodesMobileAppPayload(t *testing.T) {
	payload := `{"Name":"Nabi","Species":"Korean Shorthair","OwnerId":"u9","ImageUrl3":"x.png","Status":"실종"}`

	var rec petRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	l := rec.toListing("-K1")
	assert.Equal(t, "-K1", l.Key)
	assert.Equal(t, "u9", l.OwnerID)
	assert.Equal(t, "x.png", l.Images[listings.SlotFree])
	assert.Equal(t, []string{"x.png"}, l.Images.URLs())
}

func TestUserRecord(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := json.Marshal(toUserRecord(users.UserProfile{UID: "u1", Nickname: "Mina", CreationDate: created}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Uid":"u1","Nickname":"Mina","CreationDate":"2026-01-02T03:04:05Z"}`, string(b))

	var rec userRecord
	require.NoError(t, json.Unmarshal([]byte(`{"Nickname":"Mina"}`), &rec))
	assert.Equal(t, "u1", rec.toProfile("u1").UID)
}

func TestDownloadURL_EscapesPath(t *testing.T) {
	got := DownloadURL("pets.appspot.com", "PetImages/a b.png", "tok")
	assert.Equal(t, "https://firebasestorage.googleapis.com/v0/b/pets.appspot.com/o/PetImages%2Fa%20b.png?alt=media&token=tok", got)
}

func TestNewApp_RequiresDatabaseURL(t *testing.T) {
	_, err := NewApp(context.Background(), Config{ProjectID: "p"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

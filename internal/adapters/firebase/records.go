package firebase

import (
	"time"

	"stray-pets/internal/domain/listings"
	"stray-pets/internal/domain/users"
)

// petRecord es la forma de Pets/{key}. Los nombres de campo los comparte la app
// móvil: no cambiarlos.
type petRecord struct {
	Name        string `json:"Name"`
	Species     string `json:"Species"`
	Gender      string `json:"Gender"`
	Status      string `json:"Status"`
	Age         string `json:"Age"`
	Description string `json:"Description"`
	OwnerID     string `json:"OwnerId"`
	ImageURL1   string `json:"ImageUrl1"`
	ImageURL2   string `json:"ImageUrl2"`
	ImageURL3   string `json:"ImageUrl3"`
	ImageURL4   string `json:"ImageUrl4"`
	Weight      string `json:"Weight"`
	Condition   string `json:"Condition"`
	Contact     string `json:"Contact"`
	Location    string `json:"Location"`
	Feature     string `json:"Feature"`
}

func toPetRecord(l listings.Listing) petRecord {
	return petRecord{
		Name:        l.Name,
		Species:     l.Species,
		Gender:      l.Gender,
		Status:      l.Status,
		Age:         l.Age,
		Description: l.Description,
		OwnerID:     l.OwnerID,
		ImageURL1:   l.Images[listings.SlotFront],
		ImageURL2:   l.Images[listings.SlotSide],
		ImageURL3:   l.Images[listings.SlotFree],
		ImageURL4:   l.Images[listings.SlotWithOwner],
		Weight:      l.Weight,
		Condition:   l.Condition,
		Contact:     l.Contact,
		Location:    l.Location,
		Feature:     l.Feature,
	}
}

func (r petRecord) toListing(key string) listings.Listing {
	return listings.Listing{
		Key:         key,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Species:     r.Species,
		Gender:      r.Gender,
		Status:      r.Status,
		Age:         r.Age,
		Description: r.Description,
		Weight:      r.Weight,
		Condition:   r.Condition,
		Feature:     r.Feature,
		Contact:     r.Contact,
		Location:    r.Location,
		Images: listings.Images{
			listings.SlotFront:     r.ImageURL1,
			listings.SlotSide:      r.ImageURL2,
			listings.SlotFree:      r.ImageURL3,
			listings.SlotWithOwner: r.ImageURL4,
		},
	}
}

// userRecord es Users/{uid}.
type userRecord struct {
	UID          string    `json:"Uid"`
	Nickname     string    `json:"Nickname"`
	CreationDate time.Time `json:"CreationDate"`
}

func toUserRecord(p users.UserProfile) userRecord {
	return userRecord{UID: p.UID, Nickname: p.Nickname, CreationDate: p.CreationDate.UTC()}
}

func (r userRecord) toProfile(uid string) users.UserProfile {
	if r.UID == "" {
		r.UID = uid
	}
	return users.UserProfile{UID: r.UID, Nickname: r.Nickname, CreationDate: r.CreationDate}
}

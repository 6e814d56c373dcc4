package users

import "time"

// UserProfile vive en Users/{uid}. Se crea una sola vez al registrarse.
type UserProfile struct {
	UID          string
	Nickname     string
	CreationDate time.Time
}

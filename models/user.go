package models

import "time"

// User is a registered account
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Created      time.Time
}

// PublicUser is the profile projection safe to hand to other users
type PublicUser struct {
	ID    string
	Name  string
	Email string
}

// Public strips the credential hash from a user record
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

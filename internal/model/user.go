package model

import (
	"time"

	"lldap-gateway/internal/sqlboiler"
)

// User is a directory entry as returned by the API. It never carries the password hash.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreationDate time.Time `json:"creation_date"`
}

// NewUserFromDB converts a SQLBoiler User model to a domain User model.
// Null columns become empty strings.
func NewUserFromDB(dbUser *sqlboiler.User) *User {
	return &User{
		UserID:       dbUser.UserID,
		Email:        dbUser.Email.String,
		DisplayName:  dbUser.DisplayName.String,
		FirstName:    dbUser.FirstName.String,
		LastName:     dbUser.LastName.String,
		CreationDate: dbUser.CreationDate.UTC(),
	}
}

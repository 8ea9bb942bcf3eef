package model

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleListener Role = "listener"
	RoleArtist   Role = "artist"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleListener, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

// CanPublish reports whether the role may create catalog tracks.
func (r Role) CanPublish() bool {
	return r == RoleArtist || r == RoleAdmin
}

// Reserved accounts created at bootstrap. The seed account owns the default
// catalog and is exempt from admin edit and delete.
const (
	SeedEmail    = "seed@harmonic.com"
	SeedNickname = "harmonic_seeds"
	AdminEmail   = "admin@harmonic.com"
)

// User represents a user account.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"` // Not exposed in API responses
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

package types

import "time"

// User represents a stored account in the system.
// It contains identity, role, profile links, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"id" db:"id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Email is the user's email address. Unique across users.
	Email string `json:"email" db:"email"`

	// Role indicates the user's authorization tier
	// ("insider" or "outsider").
	Role Role `json:"role" db:"role"`

	// Bio is a short free-text description.
	Bio string `json:"bio" db:"bio"`

	// Avatar is the URL of the user's avatar image.
	Avatar string `json:"avatar" db:"avatar"`

	// Github, Linkedin, Twitter, and Website are optional profile
	// links rendered on the public site.
	Github   string `json:"github" db:"github"`
	Linkedin string `json:"linkedin" db:"linkedin"`
	Twitter  string `json:"twitter" db:"twitter"`
	Website  string `json:"website" db:"website"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

package types

import "time"

// Feedback is a rating left by a visitor on the public site.
type Feedback struct {
	// ID is the unique identifier of the feedback entry.
	ID string `json:"id" db:"id"`

	// Name is the visitor's name.
	Name string `json:"name" db:"name"`

	// Rating is the visitor's score, 1 through 5.
	Rating int `json:"rating" db:"rating"`

	// Comment is optional free text accompanying the rating.
	Comment string `json:"comment" db:"comment"`

	// CreatedAt is the timestamp when the feedback was received.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

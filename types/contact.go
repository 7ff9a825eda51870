package types

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	// ID is the unique identifier of the contact message.
	ID string `json:"id" db:"id"`

	// Name is the sender's name.
	Name string `json:"name" db:"name"`

	// Email is the sender's reply address.
	Email string `json:"email" db:"email"`

	// Message is the body of the contact message.
	Message string `json:"message" db:"message"`

	// CreatedAt is the timestamp when the message was received.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

package types

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	// ID is the unique identifier of the project.
	ID string `json:"id" db:"id"`

	// Title is the project's display title.
	Title string `json:"title" db:"title"`

	// Description is the project's summary text.
	Description string `json:"description" db:"description"`

	// Image is the URL of the project's cover image.
	Image string `json:"image" db:"image"`

	// GithubURL links to the project's repository.
	GithubURL string `json:"githubUrl" db:"github_url"`

	// LiveURL links to the deployed project, if any.
	LiveURL string `json:"liveUrl" db:"live_url"`

	// Technologies lists the stack used by the project. It is stored
	// as a JSON text column; a corrupt stored value reads back as an
	// empty list.
	Technologies []string `json:"technologies" db:"technologies"`

	// Featured marks the project for the highlighted section.
	Featured bool `json:"featured" db:"featured"`

	// UserID is the owning user, normally the seeded admin.
	UserID string `json:"userId" db:"user_id"`

	// CreatedAt is the timestamp when the project was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

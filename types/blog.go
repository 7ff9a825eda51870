package types

import "time"

// Blog is a post managed through the admin panel.
type Blog struct {
	// ID is the unique identifier of the post.
	ID string `json:"id" db:"id"`

	// Title is the post's display title.
	Title string `json:"title" db:"title"`

	// Content is the full post body.
	Content string `json:"content" db:"content"`

	// Excerpt is the short teaser shown in list views.
	Excerpt string `json:"excerpt" db:"excerpt"`

	// Image is the URL of the post's cover image.
	Image string `json:"image" db:"image"`

	// Published controls visibility: unpublished posts are only
	// visible to the insider.
	Published bool `json:"published" db:"published"`

	// Comments holds reader comments. Stored as a JSON text column;
	// a corrupt stored value reads back as an empty list.
	Comments []Comment `json:"comments" db:"comments"`

	// UserID is the authoring user.
	UserID string `json:"userId" db:"user_id"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Comment is a single reader comment attached to a blog post.
type Comment struct {
	// ID is the unique identifier of the comment.
	ID string `json:"id"`

	// Content is the comment text.
	Content string `json:"content"`

	// UserID, UserName, and UserAvatar identify the commenter as of
	// the time the comment was written.
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`

	// CreatedAt is the timestamp when the comment was written.
	CreatedAt time.Time `json:"createdAt"`
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/alstha/portfolio-api/types"
	"github.com/google/uuid"
)

// BlogRepository handles persistence for blog posts.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// decodeComments parses the stored JSON comment list. A corrupt value
// degrades to an empty list rather than surfacing an error.
func decodeComments(raw []byte) []types.Comment {
	var comments []types.Comment
	if err := json.Unmarshal(raw, &comments); err != nil || comments == nil {
		return []types.Comment{}
	}
	return comments
}

func encodeComments(comments []types.Comment) []byte {
	if comments == nil {
		comments = []types.Comment{}
	}
	b, _ := json.Marshal(comments)
	return b
}

const blogColumns = `id, title, content, excerpt, image, published, comments, user_id, created_at, updated_at`

func (r *BlogRepository) scanBlog(scan func(dest ...any) error) (types.Blog, error) {
	var blog types.Blog
	var commentsJSON []byte
	if err := scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.Excerpt,
		&blog.Image,
		&blog.Published,
		&commentsJSON,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	); err != nil {
		return types.Blog{}, err
	}
	blog.Comments = decodeComments(commentsJSON)
	return blog, nil
}

// List returns blog posts newest first. When publishedOnly is true,
// unpublished posts are excluded.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]types.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC`
	if publishedOnly {
		query = `
			SELECT ` + blogColumns + `
			FROM blogs
			WHERE published = TRUE
			ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]types.Blog, 0)
	for rows.Next() {
		blog, err := r.scanBlog(rows.Scan)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *BlogRepository) Get(ctx context.Context, id string) (types.Blog, error) {
	const query = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1`
	blog, err := r.scanBlog(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Blog{}, ErrNotFound
		}
		return types.Blog{}, err
	}
	return blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	now := time.Now()
	blog.ID = uuid.NewString()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Comments == nil {
		blog.Comments = []types.Comment{}
	}

	const query = `
		INSERT INTO blogs (id, title, content, excerpt, image, published, comments, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Excerpt,
		blog.Image,
		blog.Published,
		encodeComments(blog.Comments),
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	); err != nil {
		return types.Blog{}, err
	}

	return blog, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog types.Blog) (types.Blog, error) {
	blog.UpdatedAt = time.Now()
	if blog.Comments == nil {
		blog.Comments = []types.Comment{}
	}

	const query = `
		UPDATE blogs
		SET title = $1,
			content = $2,
			excerpt = $3,
			image = $4,
			published = $5,
			comments = $6,
			updated_at = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(
		ctx,
		query,
		blog.Title,
		blog.Content,
		blog.Excerpt,
		blog.Image,
		blog.Published,
		encodeComments(blog.Comments),
		blog.UpdatedAt,
		blog.ID,
	)
	if err != nil {
		return types.Blog{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Blog{}, err
	}
	if affected == 0 {
		return types.Blog{}, ErrNotFound
	}

	return blog, nil
}

// AppendComment adds a comment to a post's stored comment list and
// returns the new comment. The comment ID and timestamp are assigned
// here.
func (r *BlogRepository) AppendComment(ctx context.Context, blogID string, comment types.Comment) (types.Comment, error) {
	blog, err := r.Get(ctx, blogID)
	if err != nil {
		return types.Comment{}, err
	}

	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	blog.Comments = append(blog.Comments, comment)

	const query = `
		UPDATE blogs
		SET comments = $1,
			updated_at = $2
		WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, encodeComments(blog.Comments), time.Now(), blogID)
	if err != nil {
		return types.Comment{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Comment{}, err
	}
	if affected == 0 {
		return types.Comment{}, ErrNotFound
	}

	return comment, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM blogs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

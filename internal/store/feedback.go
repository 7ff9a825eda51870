package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/alstha/portfolio-api/types"
	"github.com/google/uuid"
)

// FeedbackRepository handles persistence for feedback entries.
type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) List(ctx context.Context) ([]types.Feedback, error) {
	const query = `
		SELECT id, name, rating, comment, created_at, updated_at
		FROM feedback
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.Feedback, 0)
	for rows.Next() {
		var entry types.Feedback
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Rating,
			&entry.Comment,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *FeedbackRepository) Get(ctx context.Context, id string) (types.Feedback, error) {
	const query = `
		SELECT id, name, rating, comment, created_at, updated_at
		FROM feedback
		WHERE id = $1`
	var entry types.Feedback
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Name,
		&entry.Rating,
		&entry.Comment,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Feedback{}, ErrNotFound
		}
		return types.Feedback{}, err
	}
	return entry, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	now := time.Now()
	entry.ID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const query = `
		INSERT INTO feedback (id, name, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Name,
		entry.Rating,
		entry.Comment,
		entry.CreatedAt,
		entry.UpdatedAt,
	); err != nil {
		return types.Feedback{}, err
	}
	return entry, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	entry.UpdatedAt = time.Now()

	const query = `
		UPDATE feedback
		SET name = $1,
			rating = $2,
			comment = $3,
			updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(
		ctx,
		query,
		entry.Name,
		entry.Rating,
		entry.Comment,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return types.Feedback{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Feedback{}, err
	}
	if affected == 0 {
		return types.Feedback{}, ErrNotFound
	}
	return entry, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM feedback WHERE id = $1`
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

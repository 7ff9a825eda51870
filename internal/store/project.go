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

// ProjectRepository handles persistence for portfolio projects.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// decodeTechnologies parses the stored JSON list. A corrupt value
// degrades to an empty list rather than surfacing an error.
func decodeTechnologies(raw []byte) []string {
	var techs []string
	if err := json.Unmarshal(raw, &techs); err != nil || techs == nil {
		return []string{}
	}
	return techs
}

func encodeTechnologies(techs []string) []byte {
	if techs == nil {
		techs = []string{}
	}
	b, _ := json.Marshal(techs)
	return b
}

func (r *ProjectRepository) List(ctx context.Context) ([]types.Project, error) {
	const query = `
		SELECT id, title, description, image, github_url, live_url, technologies, featured, user_id, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]types.Project, 0)
	for rows.Next() {
		var project types.Project
		var techJSON []byte
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Image,
			&project.GithubURL,
			&project.LiveURL,
			&techJSON,
			&project.Featured,
			&project.UserID,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, err
		}

		project.Technologies = decodeTechnologies(techJSON)
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (types.Project, error) {
	const query = `
		SELECT id, title, description, image, github_url, live_url, technologies, featured, user_id, created_at, updated_at
		FROM projects
		WHERE id = $1`
	var project types.Project
	var techJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&project.GithubURL,
		&project.LiveURL,
		&techJSON,
		&project.Featured,
		&project.UserID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Project{}, ErrNotFound
		}
		return types.Project{}, err
	}

	project.Technologies = decodeTechnologies(techJSON)
	return project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project types.Project) (types.Project, error) {
	now := time.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	const query = `
		INSERT INTO projects (id, title, description, image, github_url, live_url, technologies, featured, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		project.ID,
		project.Title,
		project.Description,
		project.Image,
		project.GithubURL,
		project.LiveURL,
		encodeTechnologies(project.Technologies),
		project.Featured,
		project.UserID,
		project.CreatedAt,
		project.UpdatedAt,
	); err != nil {
		return types.Project{}, err
	}

	return project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project types.Project) (types.Project, error) {
	project.UpdatedAt = time.Now()
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	const query = `
		UPDATE projects
		SET title = $1,
			description = $2,
			image = $3,
			github_url = $4,
			live_url = $5,
			technologies = $6,
			featured = $7,
			updated_at = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(
		ctx,
		query,
		project.Title,
		project.Description,
		project.Image,
		project.GithubURL,
		project.LiveURL,
		encodeTechnologies(project.Technologies),
		project.Featured,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return types.Project{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Project{}, err
	}
	if affected == 0 {
		return types.Project{}, ErrNotFound
	}

	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM projects WHERE id = $1`
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

package services

import (
	"context"

	"github.com/alstha/portfolio-api/types"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	List(ctx context.Context) ([]types.Contact, error)
	Get(ctx context.Context, id string) (types.Contact, error)
	Create(ctx context.Context, contact types.Contact) (types.Contact, error)
	Update(ctx context.Context, contact types.Contact) (types.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactService encapsulates contact-message use-cases.
type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) List(ctx context.Context) ([]types.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id string) (types.Contact, error) {
	return s.repo.Get(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, contact types.Contact) (types.Contact, error) {
	return s.repo.Create(ctx, contact)
}

func (s *ContactService) Update(ctx context.Context, contact types.Contact) (types.Contact, error) {
	return s.repo.Update(ctx, contact)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

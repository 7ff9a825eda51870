package services

import (
	"context"

	"github.com/alstha/portfolio-api/types"
)

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	List(ctx context.Context) ([]types.Feedback, error)
	Get(ctx context.Context, id string) (types.Feedback, error)
	Create(ctx context.Context, entry types.Feedback) (types.Feedback, error)
	Update(ctx context.Context, entry types.Feedback) (types.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackService encapsulates feedback use-cases.
type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) List(ctx context.Context) ([]types.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *FeedbackService) Get(ctx context.Context, id string) (types.Feedback, error) {
	return s.repo.Get(ctx, id)
}

func (s *FeedbackService) Create(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	return s.repo.Create(ctx, entry)
}

func (s *FeedbackService) Update(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	return s.repo.Update(ctx, entry)
}

func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

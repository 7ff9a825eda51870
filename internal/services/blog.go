package services

import (
	"context"

	"github.com/alstha/portfolio-api/types"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]types.Blog, error)
	Get(ctx context.Context, id string) (types.Blog, error)
	Create(ctx context.Context, blog types.Blog) (types.Blog, error)
	Update(ctx context.Context, blog types.Blog) (types.Blog, error)
	AppendComment(ctx context.Context, blogID string, comment types.Comment) (types.Comment, error)
	Delete(ctx context.Context, id string) error
}

// BlogService encapsulates blog use-cases.
type BlogService struct {
	repo BlogRepository
}

func NewBlogService(repo BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) List(ctx context.Context, publishedOnly bool) ([]types.Blog, error) {
	return s.repo.List(ctx, publishedOnly)
}

func (s *BlogService) Get(ctx context.Context, id string) (types.Blog, error) {
	return s.repo.Get(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	return s.repo.Create(ctx, blog)
}

func (s *BlogService) Update(ctx context.Context, blog types.Blog) (types.Blog, error) {
	return s.repo.Update(ctx, blog)
}

func (s *BlogService) AppendComment(ctx context.Context, blogID string, comment types.Comment) (types.Comment, error) {
	return s.repo.AppendComment(ctx, blogID, comment)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

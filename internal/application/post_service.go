package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type PostService struct {
	Repo   repo.PostRepository
	Events EventPublisher
	Logger *logrus.Logger
}

func NewPostService(repo repo.PostRepository, events EventPublisher, logger *logrus.Logger) *PostService {
	return &PostService{Repo: repo, Events: events, Logger: logger}
}

type PostInput struct {
	Title   string
	Content string
	Author  string
	Slug    string
	// DatePosted is optional; zero means now.
	DatePosted time.Time
}

func (s *PostService) Create(ctx context.Context, in PostInput) (*entity.Post, error) {
	p := &entity.Post{
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Slug:       in.Slug,
		DatePosted: in.DatePosted,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, storageErr("create post", err)
	}

	publish(ctx, s.Events, s.Logger, Event{Type: EventPostCreated, ID: p.ID, Title: p.Title, Slug: p.Slug})
	return p, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get post", err)
	}
	return p, nil
}

// Update replaces all four text fields; DatePosted is kept.
func (s *PostService) Update(ctx context.Context, id int64, in PostInput) (*entity.Post, error) {
	p := &entity.Post{
		ID:      id,
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
		Slug:    in.Slug,
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, storageErr("update post", err)
	}

	publish(ctx, s.Events, s.Logger, Event{Type: EventPostUpdated, ID: p.ID, Title: p.Title, Slug: p.Slug})
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storageErr("delete post", err)
	}

	publish(ctx, s.Events, s.Logger, Event{Type: EventPostDeleted, ID: id})
	return nil
}

// List returns posts ordered by DatePosted ascending.
func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storageErr("list posts", err)
	}
	return posts, nil
}

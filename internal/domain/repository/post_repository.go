package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	// Create inserts p. A zero DatePosted is defaulted to now.
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
	// List returns all posts ordered by DatePosted ascending.
	List(ctx context.Context) ([]entity.Post, error)
}

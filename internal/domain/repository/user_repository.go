package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update persists name, email and favorite color. Password and DateAdded are left untouched.
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
	// List returns all users in insertion order.
	List(ctx context.Context) ([]entity.User, error)
	Count(ctx context.Context) (int, error)
}

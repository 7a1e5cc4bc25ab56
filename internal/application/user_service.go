package application

import (
	"context"
	"errors"
	"expvar"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

var usersCreated = expvar.NewInt("users_created")

type UserService struct {
	Repo   repo.UserRepository
	Hasher entity.Hasher
	Events EventPublisher
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, hasher entity.Hasher, events EventPublisher, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:   repo,
		Hasher: hasher,
		Events: events,
		Logger: logger,
	}
}

type CreateUserInput struct {
	Name          string
	Email         string
	FavoriteColor string
	Password      string
}

type UpdateUserInput struct {
	Name          string
	Email         string
	FavoriteColor string
}

// Create registers a new user. It fails with ErrConflict when the email is taken.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	_, err := s.Repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, storageErr("find user by email", err)
	}

	cred, err := entity.NewCredential(s.Hasher, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Name:          in.Name,
		Email:         in.Email,
		FavoriteColor: in.FavoriteColor,
		Password:      cred,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, storageErr("create user", err)
	}
	usersCreated.Add(1)

	publish(ctx, s.Events, s.Logger, Event{Type: EventUserCreated, ID: u.ID, Name: u.Name, Email: u.Email})
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return u, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, storageErr("find user by email", err)
	}
	return u, nil
}

// Update replaces name, email and favorite color. The password is immutable here.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	u := &entity.User{
		ID:            id,
		Name:          in.Name,
		Email:         in.Email,
		FavoriteColor: in.FavoriteColor,
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, storageErr("update user", err)
	}

	publish(ctx, s.Events, s.Logger, Event{Type: EventUserUpdated, ID: u.ID, Name: u.Name, Email: u.Email})
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storageErr("delete user", err)
	}

	publish(ctx, s.Events, s.Logger, Event{Type: EventUserDeleted, ID: id})
	return nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

// CheckPassword looks the user up by email and compares password against the stored hash.
// An unknown email yields ErrNotFound.
func (s *UserService) CheckPassword(ctx context.Context, email, password string) (*entity.User, bool, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return u, u.Password.Verify(s.Hasher, password), nil
}

func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (bool, error) {
	_, ok, err := s.CheckPassword(ctx, email, password)
	return ok, err
}

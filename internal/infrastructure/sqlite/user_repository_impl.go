package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, favorite_color, date_added, password_hash`

func scanUser(row rowScanner) (*entity.User, error) {
	u := &entity.User{}
	var hash string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.FavoriteColor, &u.DateAdded, &hash); err != nil {
		return nil, mapErr(err)
	}
	u.Password = entity.CredentialFromHash(hash)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.DateAdded.IsZero() {
		u.DateAdded = time.Now().UTC()
	}
	u.DateAdded = u.DateAdded.UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, favorite_color, date_added, password_hash)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, u.Name, u.Email, u.FavoriteColor, u.DateAdded, u.Password.Hash())

	return mapErr(row.Scan(&u.ID))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = ?, email = ?, favorite_color = ?
		WHERE id = ?
		RETURNING date_added, password_hash
	`, u.Name, u.Email, u.FavoriteColor, u.ID)

	var hash string
	if err := row.Scan(&u.DateAdded, &hash); err != nil {
		return mapErr(err)
	}
	u.Password = entity.CredentialFromHash(hash)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := []entity.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)

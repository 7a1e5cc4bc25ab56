package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, favorite_color, date_added, password_hash`

func scanUser(row pgx.Row) (*entity.User, error) {
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
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, favorite_color, date_added, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_added
	`, u.Name, u.Email, u.FavoriteColor, u.DateAdded, u.Password.Hash())

	return mapErr(row.Scan(&u.ID, &u.DateAdded))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $1, email = $2, favorite_color = $3
		WHERE id = $4
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
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)

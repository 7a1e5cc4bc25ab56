package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, title, content, author, slug, date_posted`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Slug, &p.DatePosted); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.DatePosted.IsZero() {
		p.DatePosted = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, author, slug, date_posted)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_posted
	`, p.Title, p.Content, p.Author, p.Slug, p.DatePosted)

	return mapErr(row.Scan(&p.ID, &p.DatePosted))
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = $1, content = $2, author = $3, slug = $4
		WHERE id = $5
		RETURNING date_posted
	`, p.Title, p.Content, p.Author, p.Slug, p.ID)

	return mapErr(row.Scan(&p.DatePosted))
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY date_posted, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []entity.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)

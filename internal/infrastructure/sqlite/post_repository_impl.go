package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, title, content, author, slug, date_posted`

func scanPost(row rowScanner) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Slug, &p.DatePosted); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.DatePosted.IsZero() {
		p.DatePosted = time.Now()
	}
	// stored as UTC text so ORDER BY date_posted is chronological
	p.DatePosted = p.DatePosted.UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, content, author, slug, date_posted)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, p.Title, p.Content, p.Author, p.Slug, p.DatePosted)

	return mapErr(row.Scan(&p.ID))
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	return scanPost(r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	row := r.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, content = ?, author = ?, slug = ?
		WHERE id = ?
		RETURNING date_posted
	`, p.Title, p.Content, p.Author, p.Slug, p.ID)

	return mapErr(row.Scan(&p.DatePosted))
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
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

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY date_posted, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

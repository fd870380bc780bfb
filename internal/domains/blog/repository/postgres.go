package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/pkg/cache"
)

const (
	postCacheKeyFmt = "blog:%d"
	cacheTTL        = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) blog.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const postColumns = `id, title, excerpt, content, author, category, tags, image, read_time, created_at`

func scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Excerpt,
		&p.Content,
		&p.Author,
		&p.Category,
		&p.Tags,
		&p.Image,
		&p.ReadTime,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]blog.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts ORDER BY created_at DESC, id DESC`, postColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]blog.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}

	return posts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	cacheKey := fmt.Sprintf(postCacheKeyFmt, id)

	var cached blog.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE id = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, req blog.CreatePostRequest) (*blog.Post, error) {
	query := fmt.Sprintf(`
		INSERT INTO blog_posts (title, excerpt, content, author, category, tags, image, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, postColumns)

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	p, err := scanPost(r.pool.QueryRow(ctx, query,
		req.Title,
		req.Excerpt,
		req.Content,
		req.Author,
		req.Category,
		tags,
		req.Image,
		req.ReadTime,
	))
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req blog.UpdatePostRequest) (*blog.Post, error) {
	query := fmt.Sprintf(`
		UPDATE blog_posts SET
			title = COALESCE($2, title),
			excerpt = COALESCE($3, excerpt),
			content = COALESCE($4, content),
			author = COALESCE($5, author),
			category = COALESCE($6, category),
			tags = COALESCE($7, tags),
			image = COALESCE($8, image),
			read_time = COALESCE($9, read_time)
		WHERE id = $1
		RETURNING %s`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query,
		id,
		req.Title,
		req.Excerpt,
		req.Content,
		req.Author,
		req.Category,
		req.Tags,
		req.Image,
		req.ReadTime,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(postCacheKeyFmt, id))

	return p, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(postCacheKeyFmt, id))

	return nil
}

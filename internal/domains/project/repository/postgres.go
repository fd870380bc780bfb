package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/pkg/cache"
)

const (
	projectCacheKeyFmt = "project:%d"
	cacheTTL           = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) project.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const projectColumns = `id, title, description, image, tags, status, github, demo, technologies, features, "order"`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Tags,
		&p.Status,
		&p.Github,
		&p.Demo,
		&p.Technologies,
		&p.Features,
		&p.Order,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY "order" ASC, id ASC`, projectColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	cacheKey := fmt.Sprintf(projectCacheKeyFmt, id)

	var cached project.Project
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, req project.CreateProjectRequest) (*project.Project, error) {
	status := req.Status
	if status == "" {
		status = project.StatusNew
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (title, description, image, tags, status, github, demo, technologies, features, "order")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.pool.QueryRow(ctx, query,
		req.Title,
		req.Description,
		req.Image,
		emptyIfNil(req.Tags),
		status,
		req.Github,
		req.Demo,
		emptyIfNil(req.Technologies),
		emptyIfNil(req.Features),
		req.Order,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req project.UpdateProjectRequest) (*project.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image = COALESCE($4, image),
			tags = COALESCE($5, tags),
			status = COALESCE($6, status),
			github = COALESCE($7, github),
			demo = COALESCE($8, demo),
			technologies = COALESCE($9, technologies),
			features = COALESCE($10, features),
			"order" = COALESCE($11, "order")
		WHERE id = $1
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.pool.QueryRow(ctx, query,
		id,
		req.Title,
		req.Description,
		req.Image,
		req.Tags,
		req.Status,
		req.Github,
		req.Demo,
		req.Technologies,
		req.Features,
		req.Order,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(projectCacheKeyFmt, id))

	return p, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf(projectCacheKeyFmt, id))

	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

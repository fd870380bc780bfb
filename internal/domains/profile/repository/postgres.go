package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/pkg/cache"
)

const (
	profileCacheKey = "profile:current"
	aboutCacheKey   = "about:current"
	cacheTTL        = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the PostgreSQL implementation of
// profile.Repository with cache-aside reads on the two singleton rows.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) profile.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const profileColumns = `id, greeting, name, title, description, image, image_alt,
	available_for_work, github_url, linkedin_url, updated_by, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID,
		&p.Greeting,
		&p.Name,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.ImageAlt,
		&p.AvailableForWork,
		&p.GithubURL,
		&p.LinkedinURL,
		&p.UpdatedBy,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetCurrentProfile(ctx context.Context) (*profile.Profile, error) {
	var cached profile.Profile
	if found, err := r.cache.Get(ctx, profileCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM profile_data WHERE id = $1`, profileColumns)

	p, err := scanProfile(r.pool.QueryRow(ctx, query, profile.SingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unconfigured, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("get current profile: %w", err)
	}

	_ = r.cache.Set(ctx, profileCacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) UpsertProfile(ctx context.Context, req profile.CreateProfileRequest) (*profile.Profile, error) {
	query := fmt.Sprintf(`
		INSERT INTO profile_data (
			id, greeting, name, title, description, image, image_alt,
			available_for_work, github_url, linkedin_url, updated_by, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (id) DO UPDATE SET
			greeting = EXCLUDED.greeting,
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			image = EXCLUDED.image,
			image_alt = EXCLUDED.image_alt,
			available_for_work = EXCLUDED.available_for_work,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()
		RETURNING %s`, profileColumns)

	p, err := scanProfile(r.pool.QueryRow(ctx, query,
		profile.SingletonID,
		req.Greeting,
		req.Name,
		req.Title,
		req.Description,
		req.Image,
		req.ImageAlt,
		req.AvailableForWork,
		req.GithubURL,
		req.LinkedinURL,
		profile.UpdatedByAdmin,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	_ = r.cache.Delete(ctx, profileCacheKey)

	return p, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, id int64, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	query := fmt.Sprintf(`
		UPDATE profile_data SET
			greeting = COALESCE($2, greeting),
			name = COALESCE($3, name),
			title = COALESCE($4, title),
			description = COALESCE($5, description),
			image = COALESCE($6, image),
			image_alt = COALESCE($7, image_alt),
			available_for_work = COALESCE($8, available_for_work),
			github_url = COALESCE($9, github_url),
			linkedin_url = COALESCE($10, linkedin_url),
			updated_by = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, profileColumns)

	p, err := scanProfile(r.pool.QueryRow(ctx, query,
		id,
		req.Greeting,
		req.Name,
		req.Title,
		req.Description,
		req.Image,
		req.ImageAlt,
		req.AvailableForWork,
		req.GithubURL,
		req.LinkedinURL,
		profile.UpdatedByAdmin,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = r.cache.Delete(ctx, profileCacheKey)

	return p, nil
}

const aboutColumns = `id, title, description, bio, location, email, phone,
	linkedin, github, twitter, updated_at`

func scanAbout(row pgx.Row) (*profile.AboutMe, error) {
	var a profile.AboutMe
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Bio,
		&a.Location,
		&a.Email,
		&a.Phone,
		&a.Linkedin,
		&a.Github,
		&a.Twitter,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetCurrentAbout(ctx context.Context) (*profile.AboutMe, error) {
	var cached profile.AboutMe
	if found, err := r.cache.Get(ctx, aboutCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM about_me WHERE id = $1`, aboutColumns)

	a, err := scanAbout(r.pool.QueryRow(ctx, query, profile.SingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current about: %w", err)
	}

	_ = r.cache.Set(ctx, aboutCacheKey, a, cacheTTL)

	return a, nil
}

func (r *postgresRepository) UpsertAbout(ctx context.Context, req profile.CreateAboutRequest) (*profile.AboutMe, error) {
	query := fmt.Sprintf(`
		INSERT INTO about_me (
			id, title, description, bio, location, email, phone,
			linkedin, github, twitter, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			twitter = EXCLUDED.twitter,
			updated_at = now()
		RETURNING %s`, aboutColumns)

	a, err := scanAbout(r.pool.QueryRow(ctx, query,
		profile.SingletonID,
		req.Title,
		req.Description,
		req.Bio,
		req.Location,
		req.Email,
		req.Phone,
		req.Linkedin,
		req.Github,
		req.Twitter,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert about: %w", err)
	}

	_ = r.cache.Delete(ctx, aboutCacheKey)

	return a, nil
}

func (r *postgresRepository) UpdateAbout(ctx context.Context, id int64, req profile.UpdateAboutRequest) (*profile.AboutMe, error) {
	query := fmt.Sprintf(`
		UPDATE about_me SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			bio = COALESCE($4, bio),
			location = COALESCE($5, location),
			email = COALESCE($6, email),
			phone = COALESCE($7, phone),
			linkedin = COALESCE($8, linkedin),
			github = COALESCE($9, github),
			twitter = COALESCE($10, twitter),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, aboutColumns)

	a, err := scanAbout(r.pool.QueryRow(ctx, query,
		id,
		req.Title,
		req.Description,
		req.Bio,
		req.Location,
		req.Email,
		req.Phone,
		req.Linkedin,
		req.Github,
		req.Twitter,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrAboutNotFound
		}
		return nil, fmt.Errorf("update about: %w", err)
	}

	_ = r.cache.Delete(ctx, aboutCacheKey)

	return a, nil
}

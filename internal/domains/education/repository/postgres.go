package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/education"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) education.Repository {
	return &postgresRepository{pool: pool}
}

const educationColumns = `id, degree, institution, period, description, achievements, "order"`

func scanEducation(row pgx.Row) (*education.Education, error) {
	var e education.Education
	err := row.Scan(
		&e.ID,
		&e.Degree,
		&e.Institution,
		&e.Period,
		&e.Description,
		&e.Achievements,
		&e.Order,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]education.Education, error) {
	query := fmt.Sprintf(`SELECT %s FROM education ORDER BY "order" ASC, id ASC`, educationColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()

	entries := make([]education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*education.Education, error) {
	query := fmt.Sprintf(`SELECT %s FROM education WHERE id = $1`, educationColumns)

	e, err := scanEducation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, education.ErrEducationNotFound
		}
		return nil, fmt.Errorf("get education: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) Create(ctx context.Context, req education.CreateEducationRequest) (*education.Education, error) {
	query := fmt.Sprintf(`
		INSERT INTO education (degree, institution, period, description, achievements, "order")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, educationColumns)

	achievements := req.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	e, err := scanEducation(r.pool.QueryRow(ctx, query,
		req.Degree,
		req.Institution,
		req.Period,
		req.Description,
		achievements,
		req.Order,
	))
	if err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req education.UpdateEducationRequest) (*education.Education, error) {
	query := fmt.Sprintf(`
		UPDATE education SET
			degree = COALESCE($2, degree),
			institution = COALESCE($3, institution),
			period = COALESCE($4, period),
			description = COALESCE($5, description),
			achievements = COALESCE($6, achievements),
			"order" = COALESCE($7, "order")
		WHERE id = $1
		RETURNING %s`, educationColumns)

	e, err := scanEducation(r.pool.QueryRow(ctx, query,
		id,
		req.Degree,
		req.Institution,
		req.Period,
		req.Description,
		req.Achievements,
		req.Order,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, education.ErrEducationNotFound
		}
		return nil, fmt.Errorf("update education: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return education.ErrEducationNotFound
	}
	return nil
}

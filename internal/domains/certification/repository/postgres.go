package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/certification"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) certification.Repository {
	return &postgresRepository{pool: pool}
}

const certColumns = `id, title, issuer, date, description, image, credential_url, "order"`

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	var c certification.Certification
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Issuer,
		&c.Date,
		&c.Description,
		&c.Image,
		&c.CredentialURL,
		&c.Order,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]certification.Certification, error) {
	query := fmt.Sprintf(`SELECT %s FROM certifications ORDER BY "order" ASC, id ASC`, certColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()

	certs := make([]certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		certs = append(certs, *c)
	}

	return certs, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*certification.Certification, error) {
	query := fmt.Sprintf(`SELECT %s FROM certifications WHERE id = $1`, certColumns)

	c, err := scanCertification(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("get certification: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Create(ctx context.Context, req certification.CreateCertificationRequest) (*certification.Certification, error) {
	query := fmt.Sprintf(`
		INSERT INTO certifications (title, issuer, date, description, image, credential_url, "order")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, certColumns)

	c, err := scanCertification(r.pool.QueryRow(ctx, query,
		req.Title,
		req.Issuer,
		req.Date,
		req.Description,
		req.Image,
		req.CredentialURL,
		req.Order,
	))
	if err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req certification.UpdateCertificationRequest) (*certification.Certification, error) {
	query := fmt.Sprintf(`
		UPDATE certifications SET
			title = COALESCE($2, title),
			issuer = COALESCE($3, issuer),
			date = COALESCE($4, date),
			description = COALESCE($5, description),
			image = COALESCE($6, image),
			credential_url = COALESCE($7, credential_url),
			"order" = COALESCE($8, "order")
		WHERE id = $1
		RETURNING %s`, certColumns)

	c, err := scanCertification(r.pool.QueryRow(ctx, query,
		id,
		req.Title,
		req.Issuer,
		req.Date,
		req.Description,
		req.Image,
		req.CredentialURL,
		req.Order,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("update certification: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}
	return nil
}

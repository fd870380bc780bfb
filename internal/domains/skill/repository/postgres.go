package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/pkg/database"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) skill.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	query := `
		SELECT s.id, s.name, s.category_id, s.icon, s."order",
		       c.id, c.name, c.user_id, c."order"
		FROM skills s
		JOIN skill_categories c ON c.id = s.category_id
		ORDER BY s."order" ASC, s.id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		var c skill.SkillCategory
		err := rows.Scan(
			&s.ID, &s.Name, &s.CategoryID, &s.Icon, &s.Order,
			&c.ID, &c.Name, &c.UserID, &c.Order,
		)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		s.Category = &c
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (r *postgresRepository) GetSkillByID(ctx context.Context, id int64) (*skill.Skill, error) {
	query := `
		SELECT s.id, s.name, s.category_id, s.icon, s."order",
		       c.id, c.name, c.user_id, c."order"
		FROM skills s
		JOIN skill_categories c ON c.id = s.category_id
		WHERE s.id = $1`

	var s skill.Skill
	var c skill.SkillCategory
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.CategoryID, &s.Icon, &s.Order,
		&c.ID, &c.Name, &c.UserID, &c.Order,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}

	s.Category = &c
	return &s, nil
}

func (r *postgresRepository) CreateSkill(ctx context.Context, name string, categoryID int64, icon string, order int) (*skill.Skill, error) {
	// Insert and the joined re-read run in one transaction so the skill
	// comes back with the category it was attached to.
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*skill.Skill, error) {
		query := `
			INSERT INTO skills (name, category_id, icon, "order")
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, category_id, icon, "order"`

		var s skill.Skill
		err := tx.QueryRow(ctx, query, name, categoryID, icon, order).Scan(
			&s.ID, &s.Name, &s.CategoryID, &s.Icon, &s.Order,
		)
		if err != nil {
			return nil, err
		}

		var c skill.SkillCategory
		err = tx.QueryRow(ctx,
			`SELECT id, name, user_id, "order" FROM skill_categories WHERE id = $1`,
			s.CategoryID,
		).Scan(&c.ID, &c.Name, &c.UserID, &c.Order)
		if err != nil {
			return nil, err
		}

		s.Category = &c
		return &s, nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, skill.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) UpdateSkill(ctx context.Context, id int64, params skill.UpdateSkillParams) (*skill.Skill, error) {
	query := `
		UPDATE skills SET
			name = COALESCE($2, name),
			category_id = COALESCE($3, category_id),
			icon = COALESCE($4, icon),
			"order" = COALESCE($5, "order")
		WHERE id = $1
		RETURNING id`

	var updated int64
	err := r.pool.QueryRow(ctx, query, id, params.Name, params.CategoryID, params.Icon, params.Order).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrSkillNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, skill.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}

	return r.GetSkillByID(ctx, updated)
}

func (r *postgresRepository) DeleteSkill(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}
	return nil
}

const categoryColumns = `id, name, user_id, "order"`

func scanCategory(row pgx.Row) (*skill.SkillCategory, error) {
	var c skill.SkillCategory
	if err := row.Scan(&c.ID, &c.Name, &c.UserID, &c.Order); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]skill.SkillCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM skill_categories ORDER BY "order" ASC, id ASC`, categoryColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skill categories: %w", err)
	}
	defer rows.Close()

	categories := make([]skill.SkillCategory, 0)
	index := make(map[int64]int)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill category: %w", err)
		}
		c.Skills = make([]skill.Skill, 0)
		index[c.ID] = len(categories)
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	skillRows, err := r.pool.Query(ctx,
		`SELECT id, name, category_id, icon, "order" FROM skills ORDER BY "order" ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills for categories: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var s skill.Skill
		if err := skillRows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.Icon, &s.Order); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		if i, ok := index[s.CategoryID]; ok {
			categories[i].Skills = append(categories[i].Skills, s)
		}
	}

	return categories, skillRows.Err()
}

func (r *postgresRepository) GetCategoryByID(ctx context.Context, id int64) (*skill.SkillCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM skill_categories WHERE id = $1`, categoryColumns)

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get skill category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) CreateCategory(ctx context.Context, userID int64, req skill.CreateCategoryRequest) (*skill.SkillCategory, error) {
	query := fmt.Sprintf(`
		INSERT INTO skill_categories (name, user_id, "order")
		VALUES ($1, $2, $3)
		RETURNING %s`, categoryColumns)

	c, err := scanCategory(r.pool.QueryRow(ctx, query, req.Name, userID, req.Order))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, skill.ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("create skill category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) FindOrCreateCategory(ctx context.Context, userID int64, name string) (*skill.SkillCategory, error) {
	// The no-op DO UPDATE turns the conflict into a plain read, so every
	// concurrent caller gets the same RETURNING row.
	query := fmt.Sprintf(`
		INSERT INTO skill_categories (name, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING %s`, categoryColumns)

	c, err := scanCategory(r.pool.QueryRow(ctx, query, name, userID))
	if err != nil {
		return nil, fmt.Errorf("find or create skill category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) UpdateCategory(ctx context.Context, id int64, req skill.UpdateCategoryRequest) (*skill.SkillCategory, error) {
	query := fmt.Sprintf(`
		UPDATE skill_categories SET
			name = COALESCE($2, name),
			"order" = COALESCE($3, "order")
		WHERE id = $1
		RETURNING %s`, categoryColumns)

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id, req.Name, req.Order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrCategoryNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, skill.ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("update skill category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return skill.ErrCategoryNotEmpty
		}
		return fmt.Errorf("delete skill category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrCategoryNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/coworker-service/internal/domain"
)

// CoworkerFilter narrows coworker listings. Nil fields are unconstrained.
type CoworkerFilter struct {
	SearchTerm *string
	Department *string
}

// CoworkerRepository encapsulates coworker persistence.
type CoworkerRepository interface {
	Create(ctx context.Context, coworker *domain.Coworker) error
	GetByID(ctx context.Context, id string) (*domain.Coworker, error)
	List(ctx context.Context, filter CoworkerFilter) ([]domain.Coworker, error)
}

type coworkerRepository struct {
	pool *pgxpool.Pool
}

// NewCoworkerRepository instantiates the postgres repository.
func NewCoworkerRepository(pool *pgxpool.Pool) CoworkerRepository {
	return &coworkerRepository{pool: pool}
}

// Create inserts the coworker and its department, if new, in one transaction.
func (r *coworkerRepository) Create(ctx context.Context, coworker *domain.Coworker) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const upsertDept = `
        INSERT INTO departments (id, name)
        VALUES ($1,$2)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id`
	var deptID string
	if err := tx.QueryRow(ctx, upsertDept, uuid.NewString(), coworker.Department).Scan(&deptID); err != nil {
		return fmt.Errorf("upsert department: %w", err)
	}

	if coworker.ID == "" {
		coworker.ID = uuid.NewString()
	}
	const insert = `
        INSERT INTO coworkers (id, name, role, department_id, salary)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`
	if err := tx.QueryRow(ctx, insert,
		coworker.ID,
		coworker.Name,
		coworker.Role,
		deptID,
		coworker.Salary,
	).Scan(&coworker.CreatedAt); err != nil {
		return fmt.Errorf("insert coworker: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *coworkerRepository) GetByID(ctx context.Context, id string) (*domain.Coworker, error) {
	const query = `
        SELECT c.id, c.name, c.role, d.name, c.salary, c.created_at
        FROM coworkers c JOIN departments d ON d.id = c.department_id
        WHERE c.id=$1`
	var cw domain.Coworker
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&cw.ID,
		&cw.Name,
		&cw.Role,
		&cw.Department,
		&cw.Salary,
		&cw.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cw, nil
}

func (r *coworkerRepository) List(ctx context.Context, filter CoworkerFilter) ([]domain.Coworker, error) {
	var (
		conditions []string
		args       []any
	)
	addArg := func(val any) string {
		args = append(args, val)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		p := addArg("%" + escapeLike(*filter.SearchTerm) + "%")
		conditions = append(conditions, fmt.Sprintf("(c.name ILIKE %s OR c.role ILIKE %s)", p, p))
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, "d.name = "+addArg(*filter.Department))
	}

	query := `
        SELECT c.id, c.name, c.role, d.name, c.salary, c.created_at
        FROM coworkers c JOIN departments d ON d.id = c.department_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.created_at, c.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Coworker, 0)
	for rows.Next() {
		var cw domain.Coworker
		if err := rows.Scan(&cw.ID, &cw.Name, &cw.Role, &cw.Department, &cw.Salary, &cw.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, cw)
	}
	return result, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}


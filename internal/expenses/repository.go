package expenses

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists expenses.
type Repository interface {
	Create(ctx context.Context, e Expense) error
	List(ctx context.Context) ([]Expense, error)
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed expense repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (id, category, description, amount_cents, incurred_on) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Category, e.Description, e.AmountCents, e.IncurredOn)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category, description, amount_cents, incurred_on, created_at FROM expenses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.AmountCents, &e.IncurredOn, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

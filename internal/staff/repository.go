package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists teacher records.
type Repository interface {
	Create(ctx context.Context, t Teacher) error
	FindByID(ctx context.Context, id string) (Teacher, error)
	List(ctx context.Context) ([]Teacher, error)
	Update(ctx context.Context, t Teacher) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed staff repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t Teacher) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO staff (id, name, phone_number, class_name) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Phone, t.ClassName)
	return err
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Teacher, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, phone_number, class_name, created_at FROM staff WHERE id = $1`, id)
	return scanTeacher(row)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Teacher, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone_number, class_name, created_at FROM staff ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, t Teacher) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE staff SET name = $2, phone_number = $3, class_name = $4 WHERE id = $1`,
		t.ID, t.Name, t.Phone, t.ClassName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTeacher(row pgx.Row) (Teacher, error) {
	var t Teacher
	err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.ClassName, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Teacher{}, ErrNotFound
	}
	return t, err
}

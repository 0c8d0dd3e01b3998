package activities

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists activities and their student associations.
type Repository interface {
	Create(ctx context.Context, a Activity) error
	FindByID(ctx context.Context, id string) (Activity, error)
	List(ctx context.Context) ([]Activity, error)
	ListByStudent(ctx context.Context, studentID string) ([]Activity, error)
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed activity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the activity row and one association row per student in a
// single transaction; any failure rolls the whole unit back.
func (r *PostgresRepository) Create(ctx context.Context, a Activity) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if _, err := tx.Exec(ctx,
		`INSERT INTO activities (id, title, description, scheduled_on, teacher_id) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, a.Description, a.ScheduledOn, a.TeacherID); err != nil {
		return err
	}

	for _, studentID := range a.StudentIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO activity_students (activity_id, student_id) VALUES ($1, $2)`,
			a.ID, studentID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Activity, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, scheduled_on, teacher_id, created_at FROM activities WHERE id = $1`, id)
	a, err := scanActivity(row)
	if err != nil {
		return Activity{}, err
	}
	a.StudentIDs, err = r.studentIDs(ctx, a.ID)
	return a, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Activity, error) {
	return r.query(ctx,
		`SELECT id, title, description, scheduled_on, teacher_id, created_at FROM activities ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]Activity, error) {
	return r.query(ctx,
		`SELECT a.id, a.title, a.description, a.scheduled_on, a.teacher_id, a.created_at
         FROM activities a
         INNER JOIN activity_students s ON s.activity_id = a.id
         WHERE s.student_id = $1
         ORDER BY a.created_at DESC`, studentID)
}

// Delete removes the association rows and the activity row atomically.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM activity_students WHERE activity_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) studentIDs(ctx context.Context, activityID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT student_id FROM activity_students WHERE activity_id = $1`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Activity, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].StudentIDs, err = r.studentIDs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanActivity(row pgx.Row) (Activity, error) {
	var a Activity
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.ScheduledOn, &a.TeacherID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Activity{}, ErrNotFound
	}
	return a, err
}

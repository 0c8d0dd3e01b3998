package exams

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists exam results.
type Repository interface {
	Create(ctx context.Context, r Result) error
	ListByStudent(ctx context.Context, studentID string) ([]Result, error)
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed exam repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, res Result) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO exam_results (id, student_id, exam_name, subject, grade, remarks, exam_date)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.StudentID, res.ExamName, res.Subject, res.Grade, res.Remarks, res.ExamDate)
	return err
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, exam_name, subject, grade, remarks, exam_date, created_at
         FROM exam_results WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.ID, &res.StudentID, &res.ExamName, &res.Subject, &res.Grade, &res.Remarks, &res.ExamDate, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exam_results WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists daily reports.
type Repository interface {
	Upsert(ctx context.Context, r Report) error
	ListByStudent(ctx context.Context, studentID string) ([]Report, error)
	List(ctx context.Context) ([]Report, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed report repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert writes the day's report, replacing an earlier one for the same
// student and date.
func (r *PostgresRepository) Upsert(ctx context.Context, rep Report) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO daily_reports (id, student_id, report_date, meals, naps, mood, notes, teacher_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         ON CONFLICT (student_id, report_date)
         DO UPDATE SET meals = $4, naps = $5, mood = $6, notes = $7, teacher_id = $8`,
		rep.ID, rep.StudentID, rep.ReportDate, rep.Meals, rep.Naps, rep.Mood, rep.Notes, rep.TeacherID)
	return err
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]Report, error) {
	return r.query(ctx,
		`SELECT id, student_id, report_date, meals, naps, mood, notes, teacher_id, created_at
         FROM daily_reports WHERE student_id = $1 ORDER BY report_date DESC`, studentID)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Report, error) {
	return r.query(ctx,
		`SELECT id, student_id, report_date, meals, naps, mood, notes, teacher_id, created_at
         FROM daily_reports ORDER BY report_date DESC`)
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Report, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.StudentID, &rep.ReportDate, &rep.Meals, &rep.Naps, &rep.Mood, &rep.Notes, &rep.TeacherID, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

package students

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists students.
type Repository interface {
	Create(ctx context.Context, s Student) error
	FindByID(ctx context.Context, id string) (Student, error)
	List(ctx context.Context) ([]Student, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]Student, error)
	ListByParentPhone(ctx context.Context, phone string) ([]Student, error)
	Update(ctx context.Context, s Student) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed student repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const studentColumns = `id, name, date_of_birth, class_name, teacher_id, parent_name, parent_phone, created_at`

func (r *PostgresRepository) Create(ctx context.Context, s Student) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO students (id, name, date_of_birth, class_name, teacher_id, parent_name, parent_phone)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.DateOfBirth, s.ClassName, s.TeacherID, s.ParentName, s.ParentPhone)
	return err
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Student, error) {
	return r.query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY name`)
}

func (r *PostgresRepository) ListByTeacher(ctx context.Context, teacherID string) ([]Student, error) {
	return r.query(ctx, `SELECT `+studentColumns+` FROM students WHERE teacher_id = $1 ORDER BY name`, teacherID)
}

func (r *PostgresRepository) ListByParentPhone(ctx context.Context, phone string) ([]Student, error) {
	return r.query(ctx, `SELECT `+studentColumns+` FROM students WHERE parent_phone = $1 ORDER BY name`, phone)
}

func (r *PostgresRepository) Update(ctx context.Context, s Student) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET name = $2, date_of_birth = $3, class_name = $4, teacher_id = $5, parent_name = $6, parent_phone = $7
         WHERE id = $1`,
		s.ID, s.Name, s.DateOfBirth, s.ClassName, s.TeacherID, s.ParentName, s.ParentPhone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanStudent(row pgx.Row) (Student, error) {
	var s Student
	err := row.Scan(&s.ID, &s.Name, &s.DateOfBirth, &s.ClassName, &s.TeacherID, &s.ParentName, &s.ParentPhone, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Student{}, ErrNotFound
	}
	return s, err
}

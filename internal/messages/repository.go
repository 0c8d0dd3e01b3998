package messages

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists messages.
type Repository interface {
	Create(ctx context.Context, m Message) error
	ListByStudent(ctx context.Context, studentID string) ([]Message, error)
	MarkRead(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed message repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, student_id, sender_id, sender_role, body) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.StudentID, m.SenderID, m.SenderRole, m.Body)
	return err
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, sender_id, sender_role, body, is_read, created_at
         FROM messages WHERE student_id = $1 ORDER BY created_at`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SenderID, &m.SenderRole, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

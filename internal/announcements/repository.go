package announcements

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists announcements.
type Repository interface {
	Create(ctx context.Context, a Announcement) error
	ListForAudience(ctx context.Context, audience string) ([]Announcement, error)
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed announcement repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a Announcement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO announcements (id, title, body, audience) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Title, a.Body, a.Audience)
	return err
}

// ListForAudience returns announcements targeted at the given audience plus
// the ones addressed to everyone.
func (r *PostgresRepository) ListForAudience(ctx context.Context, audience string) ([]Announcement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, body, audience, created_at FROM announcements
         WHERE audience = $1 OR audience = $2 ORDER BY created_at DESC`,
		AudienceAll, audience)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Audience, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package fees

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists fees and their payments.
type Repository interface {
	Create(ctx context.Context, f Fee) error
	FindByID(ctx context.Context, id string) (Fee, error)
	List(ctx context.Context) ([]Fee, error)
	ListByStudent(ctx context.Context, studentID string) ([]Fee, error)
	RecordPayment(ctx context.Context, feeID string, amountCents int64, method string) (Payment, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed fee repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const feeColumns = `id, student_id, description, amount_cents, due_date, status, created_at`

func (r *PostgresRepository) Create(ctx context.Context, f Fee) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO fees (id, student_id, description, amount_cents, due_date, status)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.StudentID, f.Description, f.AmountCents, f.DueDate, f.Status)
	return err
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Fee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+feeColumns+` FROM fees WHERE id = $1`, id)
	return scanFee(row)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Fee, error) {
	return r.query(ctx, `SELECT `+feeColumns+` FROM fees ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]Fee, error) {
	return r.query(ctx, `SELECT `+feeColumns+` FROM fees WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
}

// RecordPayment inserts the payment row and flips the fee status in a single
// transaction; partial failure rolls back both statements.
func (r *PostgresRepository) RecordPayment(ctx context.Context, feeID string, amountCents int64, method string) (Payment, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Payment{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM fees WHERE id = $1 FOR UPDATE`, feeID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payment{}, ErrNotFound
	}
	if err != nil {
		return Payment{}, err
	}
	if status == StatusPaid {
		return Payment{}, ErrAlreadyPaid
	}

	payment := Payment{ID: uuid.New().String(), FeeID: feeID, AmountCents: amountCents, Method: method}
	err = tx.QueryRow(ctx,
		`INSERT INTO fee_payments (id, fee_id, amount_cents, method) VALUES ($1, $2, $3, $4) RETURNING paid_at`,
		payment.ID, payment.FeeID, payment.AmountCents, payment.Method).Scan(&payment.PaidAt)
	if err != nil {
		return Payment{}, err
	}

	if _, err := tx.Exec(ctx, `UPDATE fees SET status = $2 WHERE id = $1`, feeID, StatusPaid); err != nil {
		return Payment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Fee, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFee(row pgx.Row) (Fee, error) {
	var f Fee
	err := row.Scan(&f.ID, &f.StudentID, &f.Description, &f.AmountCents, &f.DueDate, &f.Status, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Fee{}, ErrNotFound
	}
	return f, err
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &payPeriodRepository{db: db}
}

// Create implements payroll.PeriodRepository.
func (r *payPeriodRepository) Create(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_periods (start_date, end_date)
		VALUES ($1, $2)
		RETURNING id, is_locked, created_at
	`

	err := q.QueryRow(ctx, query, period.StartDate, period.EndDate).
		Scan(&period.ID, &period.IsLocked, &period.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayPeriod{}, payroll.ErrDuplicatePeriod
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to create pay period: %w", err)
	}

	return period, nil
}

// GetByDates implements payroll.PeriodRepository.
func (r *payPeriodRepository) GetByDates(ctx context.Context, start, end time.Time) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, is_locked, processed_at, processed_by, created_at
		FROM pay_periods
		WHERE start_date = $1
		  AND end_date = $2
	`

	var p payroll.PayPeriod
	err := q.QueryRow(ctx, query, start, end).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.IsLocked, &p.ProcessedAt, &p.ProcessedBy, &p.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period by dates: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PeriodRepository.
func (r *payPeriodRepository) GetByID(ctx context.Context, id int64) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, is_locked, processed_at, processed_by, created_at
		FROM pay_periods
		WHERE id = $1
	`

	var p payroll.PayPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.IsLocked, &p.ProcessedAt, &p.ProcessedBy, &p.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period by ID: %w", err)
	}

	return p, nil
}

// GetAll implements payroll.PeriodRepository.
func (r *payPeriodRepository) GetAll(ctx context.Context, includeLocked bool) ([]payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, is_locked, processed_at, processed_by, created_at
		FROM pay_periods
	`
	if !includeLocked {
		query += ` WHERE is_locked = FALSE`
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		var p payroll.PayPeriod
		err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.IsLocked, &p.ProcessedAt, &p.ProcessedBy, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

// Lock implements payroll.PeriodRepository. The WHERE clause only matches
// open periods, so a second lock attempt falls through to the existence
// check and fails with ErrAlreadyLocked.
func (r *payPeriodRepository) Lock(ctx context.Context, id int64, approverID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET is_locked = TRUE, processed_at = $1, processed_by = $2
		WHERE id = $3
		  AND is_locked = FALSE
	`

	commandTag, err := q.Exec(ctx, query, time.Now(), approverID, id)
	if err != nil {
		return fmt.Errorf("failed to lock pay period: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return payroll.ErrAlreadyLocked
	}

	return nil
}

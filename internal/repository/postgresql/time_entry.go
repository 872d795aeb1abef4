package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	id, employee_id, entry_date, day_of_week, payroll_id,
	hours_worked, pto_hours, is_weekend, notes, created_at, updated_at`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.EntryDate, &e.DayOfWeek, &e.PayrollID,
		&e.HoursWorked, &e.PTOHours, &e.IsWeekend, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, entry_date, day_of_week, payroll_id,
			hours_worked, pto_hours, is_weekend, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.EntryDate,
		entry.DayOfWeek,
		entry.PayrollID,
		entry.HoursWorked,
		entry.PTOHours,
		entry.IsWeekend,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrDuplicateEntry
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET hours_worked = $1, pto_hours = $2, notes = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID int64
	err := q.QueryRow(ctx, query,
		entry.HoursWorked, entry.PTOHours, entry.Notes, time.Now(), entry.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update time entry: %w", err)
	}

	return nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeEntryColumns + `
		FROM time_entries WHERE id = $1`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by ID: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1
		  AND entry_date = $2
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing entry found
		}
		return nil, fmt.Errorf("failed to get time entry by employee and date: %w", err)
	}

	return &entry, nil
}

// GetByEmployeeInRange implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1
		  AND entry_date >= $2
		  AND entry_date <= $3
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetByPeriod implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByPeriod(ctx context.Context, periodID int64) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeEntryColumns + `
		FROM time_entries
		WHERE payroll_id = $1
		ORDER BY employee_id, entry_date
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries by period: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// AssignToPeriod implements timeentry.TimeEntryRepository. Only unassigned
// rows are stamped, so a second run over the same range touches nothing.
func (r *timeEntryRepository) AssignToPeriod(ctx context.Context, employeeID string, start, end time.Time, periodID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET payroll_id = $1, updated_at = $2
		WHERE employee_id = $3
		  AND entry_date >= $4
		  AND entry_date <= $5
		  AND payroll_id IS NULL
	`

	commandTag, err := q.Exec(ctx, query, periodID, time.Now(), employeeID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to assign time entries to period: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM time_entries WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/database"
)

type shiftRepository struct {
	db database.Querier
}

func NewShiftRepository(db database.Querier) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// ListByCompany implements shift.ShiftRepository.
func (r *shiftRepository) ListByCompany(ctx context.Context, companyID string) ([]shift.Shift, error) {
	query := `
		SELECT id, company_id, code, name, start_time, end_time, created_at, updated_at
		FROM shifts
		WHERE company_id = $1
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}

	return shifts, nil
}

// GetMonthSchedule implements shift.ShiftRepository.
func (r *shiftRepository) GetMonthSchedule(ctx context.Context, employeeID string, month int, year int, companyID string) (*shift.MonthSchedule, error) {
	query := `
		SELECT id, employee_id, company_id, month, year, day_codes
		FROM shift_schedules
		WHERE employee_id = $1
		  AND month = $2
		  AND year = $3
		  AND company_id = $4
		LIMIT 1
	`

	var ms shift.MonthSchedule
	var codes []string
	err := r.db.QueryRow(ctx, query, employeeID, month, year, companyID).Scan(
		&ms.ID, &ms.EmployeeID, &ms.CompanyID, &ms.Month, &ms.Year, &codes,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get month schedule: %w", err)
	}

	// day_codes is stored zero-based; DayCodes is indexed by day-of-month.
	for i, code := range codes {
		if i+1 <= 31 {
			ms.DayCodes[i+1] = code
		}
	}

	return &ms, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/leave"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db database.Querier
}

func NewLeaveRepository(db database.Querier) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// GetApprovedOnDate implements leave.LeaveRepository.
func (r *leaveRepository) GetApprovedOnDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*leave.Application, error) {
	query := `
		SELECT id, employee_id, company_id, leave_type, start_date, end_date, status
		FROM leave_requests
		WHERE employee_id = $1
		  AND company_id = $2
		  AND status = 'approved'
		  AND $3::date BETWEEN start_date AND end_date
		LIMIT 1
	`

	var app leave.Application
	err := r.db.QueryRow(ctx, query, employeeID, companyID, date).Scan(
		&app.ID, &app.EmployeeID, &app.CompanyID, &app.LeaveType, &app.StartDate, &app.EndDate, &app.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	return &app, nil
}

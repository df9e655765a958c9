package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/database"
)

type sheetRepository struct {
	db database.Querier
}

func NewSheetRepository(db database.Querier) attendance.SheetRepository {
	return &sheetRepository{db: db}
}

// GetByEmployeeMonth implements attendance.SheetRepository.
func (r *sheetRepository) GetByEmployeeMonth(ctx context.Context, employeeID string, month int, year int, companyID string) (*attendance.Sheet, error) {
	query := `
		SELECT id, employee_id, company_id, month, year, financial_year,
			   day_records, totals, version, created_at, updated_at
		FROM attendance_sheets
		WHERE employee_id = $1
		  AND month = $2
		  AND year = $3
		  AND company_id = $4
		LIMIT 1
	`

	var sheet attendance.Sheet
	err := r.db.QueryRow(ctx, query, employeeID, month, year, companyID).Scan(
		&sheet.ID, &sheet.EmployeeID, &sheet.CompanyID, &sheet.Month, &sheet.Year, &sheet.FinancialYear,
		&sheet.Records, &sheet.Totals, &sheet.Version, &sheet.CreatedAt, &sheet.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance sheet: %w", err)
	}

	return &sheet, nil
}

// Create implements attendance.SheetRepository.
func (r *sheetRepository) Create(ctx context.Context, sheet attendance.Sheet) (attendance.Sheet, error) {
	query := `
		INSERT INTO attendance_sheets (
			id, employee_id, company_id, month, year, financial_year,
			day_records, totals, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING created_at, updated_at
	`

	sheet.ID = uuid.NewString()
	sheet.Version = 1

	err := r.db.QueryRow(ctx, query,
		sheet.ID,
		sheet.EmployeeID,
		sheet.CompanyID,
		sheet.Month,
		sheet.Year,
		sheet.FinancialYear,
		sheet.Records,
		sheet.Totals,
	).Scan(&sheet.CreatedAt, &sheet.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique (employee_id, month, year, company_id): a
			// concurrent first punch of the month won the insert.
			return attendance.Sheet{}, attendance.ErrSheetConflict
		}
		return attendance.Sheet{}, fmt.Errorf("failed to create attendance sheet: %w", err)
	}

	return sheet, nil
}

// Update implements attendance.SheetRepository. The version predicate
// serializes read-modify-write cycles per sheet.
func (r *sheetRepository) Update(ctx context.Context, sheet attendance.Sheet) (attendance.Sheet, error) {
	query := `
		UPDATE attendance_sheets
		SET day_records = $1,
			totals = $2,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $3
		  AND version = $4
		RETURNING version, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		sheet.Records,
		sheet.Totals,
		sheet.ID,
		sheet.Version,
	).Scan(&sheet.Version, &sheet.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Sheet{}, attendance.ErrSheetConflict
		}
		return attendance.Sheet{}, fmt.Errorf("failed to update attendance sheet: %w", err)
	}

	return sheet, nil
}

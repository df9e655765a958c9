package attendance

import "context"

// SheetRepository persists attendance sheets as one document per
// (employee, month, year). All methods include companyID to prevent
// cross-company data access.
type SheetRepository interface {
	// GetByEmployeeMonth returns the sheet for an employee's month, or
	// nil when the month has no sheet yet.
	GetByEmployeeMonth(ctx context.Context, employeeID string, month int, year int, companyID string) (*Sheet, error)

	// Create inserts a new sheet at version 1. A concurrent create of
	// the same (employee, month, year) fails with ErrSheetConflict.
	Create(ctx context.Context, sheet Sheet) (Sheet, error)

	// Update replaces records and totals if the stored version still
	// matches sheet.Version, bumping the version; otherwise it fails
	// with ErrSheetConflict.
	Update(ctx context.Context, sheet Sheet) (Sheet, error)
}

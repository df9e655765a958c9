package master

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
)

type MasterServiceImpl struct {
	shift.ShiftRepository
}

func NewMasterService(shiftRepo shift.ShiftRepository) shift.MasterService {
	return &MasterServiceImpl{
		ShiftRepository: shiftRepo,
	}
}

// ListShifts implements shift.MasterService.
func (m *MasterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	shifts, err := m.ShiftRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, shift.ShiftResponse{
			Code:      s.Code,
			Name:      s.Name,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	return responses, nil
}

// GetMySchedule implements shift.MasterService.
func (m *MasterServiceImpl) GetMySchedule(ctx context.Context, month int, year int) (shift.MonthScheduleResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return shift.MonthScheduleResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return shift.MonthScheduleResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return shift.MonthScheduleResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	sched, err := m.ShiftRepository.GetMonthSchedule(ctx, employeeID, month, year, companyID)
	if err != nil {
		return shift.MonthScheduleResponse{}, fmt.Errorf("failed to get month schedule: %w", err)
	}
	if sched == nil {
		return shift.MonthScheduleResponse{}, shift.ErrNoScheduleFound
	}

	return shift.MonthScheduleResponse{
		Month:    sched.Month,
		Year:     sched.Year,
		DayCodes: sched.DayCodes[1:],
	}, nil
}

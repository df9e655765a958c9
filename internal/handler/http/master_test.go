package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

type fakeMasterService struct {
	month int
	year  int
}

func (f *fakeMasterService) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	return nil, nil
}

func (f *fakeMasterService) GetMySchedule(ctx context.Context, month int, year int) (shift.MonthScheduleResponse, error) {
	f.month, f.year = month, year
	return shift.MonthScheduleResponse{}, nil
}

func TestGetMySchedule_DefaultsToClockMonth(t *testing.T) {
	t.Parallel()

	svc := &fakeMasterService{}
	h := NewMasterHandler(svc, clock.Fixed{T: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)})

	w := httptest.NewRecorder()
	h.GetMySchedule(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules/my", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, svc.month)
	assert.Equal(t, 2025, svc.year)
}

func TestGetMySchedule_ExplicitQueryParams(t *testing.T) {
	t.Parallel()

	svc := &fakeMasterService{}
	h := NewMasterHandler(svc, clock.Fixed{T: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)})

	w := httptest.NewRecorder()
	h.GetMySchedule(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules/my?month=12&year=2024", nil))

	assert.Equal(t, 12, svc.month)
	assert.Equal(t, 2024, svc.year)
}

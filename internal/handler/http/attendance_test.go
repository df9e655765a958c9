package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	lastQuery attendance.SheetQuery
}

func (f *fakeAttendanceService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	return attendance.MarkAttendanceResponse{}, nil
}

func (f *fakeAttendanceService) GetMySheet(ctx context.Context, q attendance.SheetQuery) (attendance.SheetResponse, error) {
	f.lastQuery = q
	return attendance.SheetResponse{}, nil
}

func (f *fakeAttendanceService) GetSheet(ctx context.Context, employeeID string, q attendance.SheetQuery) (attendance.SheetResponse, error) {
	f.lastQuery = q
	return attendance.SheetResponse{}, nil
}

func TestGetMySheet_DefaultsToClockMonth(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{}
	h := NewAttendanceHandler(svc, clock.Fixed{T: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)})

	w := httptest.NewRecorder()
	h.GetMySheet(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendances/my", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, svc.lastQuery.Month)
	assert.Equal(t, 2025, svc.lastQuery.Year)
}

func TestGetMySheet_ExplicitQueryParams(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{}
	h := NewAttendanceHandler(svc, clock.Fixed{T: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)})

	w := httptest.NewRecorder()
	h.GetMySheet(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendances/my?month=2&year=2024", nil))

	assert.Equal(t, 2, svc.lastQuery.Month)
	assert.Equal(t, 2024, svc.lastQuery.Year)
}

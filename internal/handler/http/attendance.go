package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/handler/http/response"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetMySheet(w http.ResponseWriter, r *http.Request)
	GetSheet(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             clock.Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clk clock.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clk,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	// The body is optional; a bare POST marks attendance with no note.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode mark attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", result)
}

// GetMySheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMySheet(w http.ResponseWriter, r *http.Request) {
	q := sheetQueryFromRequest(r, h.clock.Now())

	result, err := h.attendanceService.GetMySheet(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "employeeID is required", nil)
		return
	}

	q := sheetQueryFromRequest(r, h.clock.Now())

	result, err := h.attendanceService.GetSheet(r.Context(), employeeID, q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// sheetQueryFromRequest reads month/year query params, defaulting to
// the current month.
func sheetQueryFromRequest(r *http.Request, now time.Time) attendance.SheetQuery {
	q := attendance.SheetQuery{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			q.Month = month
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			q.Year = year
		}
	}

	return q
}

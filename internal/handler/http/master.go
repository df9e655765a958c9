package http

import (
	"net/http"
	"strconv"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/kelola-hr/attendance-engine-go/internal/handler/http/response"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
)

type MasterHandler interface {
	ListShifts(w http.ResponseWriter, r *http.Request)
	GetMySchedule(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService shift.MasterService
	clock         clock.Clock
}

func NewMasterHandler(masterService shift.MasterService, clk clock.Clock) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
		clock:         clk,
	}
}

// ListShifts implements MasterHandler.
func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMySchedule implements MasterHandler.
func (h *masterHandlerImpl) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	month, year := int(now.Month()), now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}

	result, err := h.masterService.GetMySchedule(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

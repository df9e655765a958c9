package shift

// ========================================
// SHIFT MASTER DTOs
// ========================================

type ShiftResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type MonthScheduleResponse struct {
	Month    int      `json:"month"`
	Year     int      `json:"year"`
	DayCodes []string `json:"day_codes"`
}

package main

import (
	"fmt"
	"net/http"

	"github.com/kelola-hr/attendance-engine-go/internal/config"
	appHTTP "github.com/kelola-hr/attendance-engine-go/internal/handler/http"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/database"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/jwt"
	"github.com/kelola-hr/attendance-engine-go/internal/repository/postgresql"
	attendanceService "github.com/kelola-hr/attendance-engine-go/internal/service/attendance"
	masterService "github.com/kelola-hr/attendance-engine-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	sheetRepo := postgresql.NewSheetRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	clk := clock.System()

	attendanceSvc := attendanceService.NewAttendanceService(
		sheetRepo,
		shiftRepo,
		leaveRepo,
		clk,
	)
	masterSvc := masterService.NewMasterService(shiftRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, clk)
	masterHandler := appHTTP.NewMasterHandler(masterSvc, clk)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		masterHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

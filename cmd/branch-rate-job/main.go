package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/branchpay/branchpay-etl/internal/ingest"
	"github.com/branchpay/branchpay-etl/internal/payroll"
	"github.com/branchpay/branchpay-etl/internal/report"
	"github.com/branchpay/branchpay-etl/pkg/config"
	"github.com/branchpay/branchpay-etl/pkg/database"
	apperrors "github.com/branchpay/branchpay-etl/pkg/errors"
	"github.com/branchpay/branchpay-etl/pkg/logger"
)

// Exit codes by failure class. Persistence failures get their own code so
// the scheduler can tell a retriable run from a bad-input one.
const (
	exitInput       = 1
	exitPersistence = 2
)

func main() {
	_ = godotenv.Load()

	dateFlag := flag.String("date", "", "target date to process (YYYY-MM-DD), defaults to yesterday")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load("branch-rate-job")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitInput)
	}
	if *dateFlag != "" {
		cfg.Job.TargetDate = *dateFlag
	}

	// Initialize logger
	log := logger.New("branch-rate-job", cfg.Job.Environment).WithRunID(uuid.NewString())
	log.Info().Msg("starting branch hourly-salary job")

	targetDate, err := cfg.Job.ResolveTargetDate(time.Now())
	if err != nil {
		fail(log, apperrors.Input("resolve target date", err), "invalid target date")
	}

	delimiter, _ := utf8.DecodeRuneInString(cfg.Job.Delimiter)

	// Read source files
	employees, err := ingest.ReadEmployees(cfg.Job.EmployeeFile, delimiter)
	if err != nil {
		fail(log, err, "failed to read employee file")
	}
	entries, err := ingest.ReadTimesheets(cfg.Job.TimesheetFile, delimiter)
	if err != nil {
		fail(log, err, "failed to read timesheet file")
	}
	log.Info().
		Int("employees", len(employees)).
		Int("timesheet_entries", len(entries)).
		Time("target_date", targetDate).
		Msg("source files loaded")

	// Run the pipeline
	pipeline := payroll.NewPipeline(log.WithComponent("pipeline"))
	rates := pipeline.Run(employees, entries, targetDate)

	if len(rates) == 0 {
		log.Warn().Time("target_date", targetDate).Msg("no branch rates for target date, nothing to write")
		return
	}

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		fail(log, apperrors.Persistence("connect database", err), "failed to connect to database")
	}
	defer db.Close()

	// Write the report rows
	ctx := context.Background()
	repo := report.NewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		fail(log, err, "failed to ensure reporting schema")
	}
	if err := repo.UpsertRates(ctx, rates); err != nil {
		fail(log, err, "failed to write branch rates")
	}

	log.Info().
		Int("rows", len(rates)).
		Time("target_date", targetDate).
		Msg("branch hourly-salary job finished")
}

func fail(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	if apperrors.IsRetriable(err) {
		os.Exit(exitPersistence)
	}
	os.Exit(exitInput)
}

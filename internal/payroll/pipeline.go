package payroll

import (
	"time"

	"github.com/branchpay/branchpay-etl/pkg/logger"
)

// Pipeline runs the full transformation from raw source rows to branch
// hourly-salary rows. Every stage is a pure function over immutable
// slices; the pipeline only sequences them and reports row counts.
type Pipeline struct {
	logger *logger.Logger
}

// NewPipeline creates a new pipeline
func NewPipeline(log *logger.Logger) *Pipeline {
	return &Pipeline{logger: log}
}

// Run computes the branch hourly-salary rows for the target date.
// Stages, in order: canonical employee selection, timesheet date filter,
// canonical timesheet selection, employee join + validity filter, then the
// two aggregate branches (hours, salary) combined into the final rate.
// The result depends only on the inputs, so re-running over identical
// input yields identical output.
func (p *Pipeline) Run(employees []EmployeeRecord, entries []TimesheetEntry, targetDate time.Time) []BranchMonthRate {
	canonical := CanonicalEmployees(employees)
	p.logger.Debug().
		Int("in", len(employees)).
		Int("out", len(canonical)).
		Msg("deduplicated employees")

	dated := FilterByDate(entries, targetDate)
	sheets := CanonicalTimesheets(dated)
	p.logger.Debug().
		Int("in", len(entries)).
		Int("dated", len(dated)).
		Int("out", len(sheets)).
		Time("target_date", targetDate).
		Msg("deduplicated timesheets")

	enriched := FilterValid(Enrich(sheets, canonical))
	p.logger.Debug().Int("rows", len(enriched)).Msg("enriched timesheets")

	hours := AggregateHours(enriched)
	salaries := AggregateBranchSalaries(AggregateEmployeeSalaries(enriched))
	rates := CombineRates(hours, salaries)
	p.logger.Debug().
		Int("hour_groups", len(hours)).
		Int("salary_groups", len(salaries)).
		Int("rates", len(rates)).
		Msg("aggregated branch months")

	return rates
}

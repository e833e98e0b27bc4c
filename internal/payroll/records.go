// Package payroll implements the branch hourly-salary pipeline: canonical
// record selection, timesheet enrichment, work-hour derivation and the
// monthly branch-level aggregates the reporting table is built from.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRecord is one row of the employee source file. One logical
// employee may appear multiple times; CanonicalEmployees picks the survivor.
type EmployeeRecord struct {
	EmployeeID int64
	BranchID   int64
	Salary     decimal.Decimal
	JoinDate   time.Time
	// ResignDate is nil for employees who never resigned
	ResignDate *time.Time
}

// TimesheetEntry is one row of the timesheet source file. Checkin and
// Checkout are clock times expressed as offsets from midnight.
type TimesheetEntry struct {
	TimesheetID int64
	EmployeeID  int64
	Date        time.Time
	Checkin     time.Duration
	Checkout    time.Duration
}

// EnrichedEntry is a timesheet entry joined with its employee record.
type EnrichedEntry struct {
	TimesheetEntry
	BranchID   int64
	Salary     decimal.Decimal
	JoinDate   time.Time
	ResignDate *time.Time
}

// BranchMonthHours is the hours aggregate: total worked hours for a branch
// in a given month.
type BranchMonthHours struct {
	Year           int
	Month          int
	BranchID       int64
	TotalWorkHours float64
}

// EmployeeMonthSalary is the stage-1 salary aggregate: one employee's
// salary figure for a branch-month, duplicate-collapsed via max.
type EmployeeMonthSalary struct {
	Year           int
	Month          int
	BranchID       int64
	EmployeeID     int64
	SalaryPerMonth decimal.Decimal
}

// BranchMonthSalary is the stage-2 salary aggregate: total monthly salary
// paid by a branch.
type BranchMonthSalary struct {
	Year        int
	Month       int
	BranchID    int64
	TotalSalary decimal.Decimal
}

// BranchMonthRate is the derived output metric, one row per branch-month.
type BranchMonthRate struct {
	Year          int
	Month         int
	BranchID      int64
	SalaryPerHour decimal.Decimal
}

// midnight strips the time component from a calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

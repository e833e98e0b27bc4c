package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/branchpay/branchpay-etl/internal/payroll"
)

// MustDate parses a YYYY-MM-DD date, panicking on bad input. Test use only.
func MustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("testutil: bad date " + s + ": " + err.Error())
	}
	return d
}

// MustClock parses an HH:MM clock value into an offset from midnight,
// panicking on bad input. Test use only.
func MustClock(s string) time.Duration {
	t, err := time.Parse("15:04", s)
	if err != nil {
		panic("testutil: bad clock " + s + ": " + err.Error())
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// Employee builds an employee record fixture. Pass resignDate "" for an
// employee who never resigned.
func Employee(employeeID, branchID int64, salary float64, joinDate, resignDate string) payroll.EmployeeRecord {
	r := payroll.EmployeeRecord{
		EmployeeID: employeeID,
		BranchID:   branchID,
		Salary:     decimal.NewFromFloat(salary),
		JoinDate:   MustDate(joinDate),
	}
	if resignDate != "" {
		d := MustDate(resignDate)
		r.ResignDate = &d
	}
	return r
}

// Timesheet builds a timesheet entry fixture from clock strings.
func Timesheet(timesheetID, employeeID int64, date, checkin, checkout string) payroll.TimesheetEntry {
	return payroll.TimesheetEntry{
		TimesheetID: timesheetID,
		EmployeeID:  employeeID,
		Date:        MustDate(date),
		Checkin:     MustClock(checkin),
		Checkout:    MustClock(checkout),
	}
}

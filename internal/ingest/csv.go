// Package ingest reads the employee and timesheet source files. Both are
// delimited text with a header row; columns are located by header name so
// column order in the file does not matter. Any malformed row aborts the
// run with an input-class error.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/branchpay/branchpay-etl/internal/payroll"
	"github.com/branchpay/branchpay-etl/pkg/errors"
)

const dateLayout = "2006-01-02"

// Employee file columns
const (
	colEmployeeID = "employee_id"
	colBranchID   = "branch_id"
	colSalary     = "salary"
	colJoinDate   = "join_date"
	colResignDate = "resign_date"
)

// Timesheet file columns
const (
	colTimesheetID = "timesheet_id"
	colDate        = "date"
	colCheckin     = "checkin"
	colCheckout    = "checkout"
)

// ReadEmployees loads the employee source file.
func ReadEmployees(path string, delimiter rune) ([]payroll.EmployeeRecord, error) {
	var records []payroll.EmployeeRecord

	err := readRows(path, delimiter,
		[]string{colEmployeeID, colBranchID, colSalary, colJoinDate, colResignDate},
		func(line int, get func(string) string) error {
			employeeID, err := parseID(get(colEmployeeID))
			if err != nil {
				return fmt.Errorf("line %d: employee_id: %w", line, err)
			}
			branchID, err := parseID(get(colBranchID))
			if err != nil {
				return fmt.Errorf("line %d: branch_id: %w", line, err)
			}
			salary, err := decimal.NewFromString(get(colSalary))
			if err != nil {
				return fmt.Errorf("line %d: salary: %w", line, err)
			}
			joinDate, err := time.Parse(dateLayout, get(colJoinDate))
			if err != nil {
				return fmt.Errorf("line %d: join_date: %w", line, err)
			}
			resignDate, err := parseOptionalDate(get(colResignDate))
			if err != nil {
				return fmt.Errorf("line %d: resign_date: %w", line, err)
			}

			records = append(records, payroll.EmployeeRecord{
				EmployeeID: employeeID,
				BranchID:   branchID,
				Salary:     salary,
				JoinDate:   joinDate,
				ResignDate: resignDate,
			})
			return nil
		})
	if err != nil {
		return nil, errors.Input("read employees", err)
	}
	return records, nil
}

// ReadTimesheets loads the timesheet source file.
func ReadTimesheets(path string, delimiter rune) ([]payroll.TimesheetEntry, error) {
	var entries []payroll.TimesheetEntry

	err := readRows(path, delimiter,
		[]string{colTimesheetID, colEmployeeID, colDate, colCheckin, colCheckout},
		func(line int, get func(string) string) error {
			timesheetID, err := parseID(get(colTimesheetID))
			if err != nil {
				return fmt.Errorf("line %d: timesheet_id: %w", line, err)
			}
			employeeID, err := parseID(get(colEmployeeID))
			if err != nil {
				return fmt.Errorf("line %d: employee_id: %w", line, err)
			}
			date, err := time.Parse(dateLayout, get(colDate))
			if err != nil {
				return fmt.Errorf("line %d: date: %w", line, err)
			}
			checkin, err := parseClock(get(colCheckin))
			if err != nil {
				return fmt.Errorf("line %d: checkin: %w", line, err)
			}
			checkout, err := parseClock(get(colCheckout))
			if err != nil {
				return fmt.Errorf("line %d: checkout: %w", line, err)
			}

			entries = append(entries, payroll.TimesheetEntry{
				TimesheetID: timesheetID,
				EmployeeID:  employeeID,
				Date:        date,
				Checkin:     checkin,
				Checkout:    checkout,
			})
			return nil
		})
	if err != nil {
		return nil, errors.Input("read timesheets", err)
	}
	return entries, nil
}

// readRows opens the file, resolves the required columns from the header
// and invokes handle for every data row. Rows with the wrong field count
// are rejected by the csv reader itself.
func readRows(path string, delimiter rune, required []string, handle func(line int, get func(string) string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}

	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		get := func(name string) string {
			return strings.TrimSpace(row[columns[name]])
		}
		if err := handle(line, get); err != nil {
			return err
		}
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseOptionalDate treats an empty value as "never", returning nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseClock parses an HH:MM or HH:MM:SS clock value into an offset from
// midnight. An empty value yields zero, so a row with a missing clock
// contributes zero worked hours instead of failing the run.
func parseClock(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	var sec int
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid clock value %q", s)
		}
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

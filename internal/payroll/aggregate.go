package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

type branchMonthKey struct {
	Year     int
	Month    int
	BranchID int64
}

type employeeMonthKey struct {
	Year       int
	Month      int
	BranchID   int64
	EmployeeID int64
}

func keyFor(e EnrichedEntry) branchMonthKey {
	y, m, _ := e.Date.Date()
	return branchMonthKey{Year: y, Month: int(m), BranchID: e.BranchID}
}

// AggregateHours sums worked hours by (year, month, branch). Output is
// sorted by key so repeated runs produce identical slices.
func AggregateHours(rows []EnrichedEntry) []BranchMonthHours {
	totals := make(map[branchMonthKey]float64, len(rows))
	for _, r := range rows {
		totals[keyFor(r)] += WorkedHours(r.TimesheetEntry)
	}

	out := make([]BranchMonthHours, 0, len(totals))
	for k, hours := range totals {
		out = append(out, BranchMonthHours{
			Year:           k.Year,
			Month:          k.Month,
			BranchID:       k.BranchID,
			TotalWorkHours: hours,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessBranchMonth(
			branchMonthKey{out[i].Year, out[i].Month, out[i].BranchID},
			branchMonthKey{out[j].Year, out[j].Month, out[j].BranchID},
		)
	})
	return out
}

// AggregateEmployeeSalaries is the first salary stage: the maximum salary
// figure per (year, month, branch, employee). The max collapses any
// per-employee duplicates that survived the join.
func AggregateEmployeeSalaries(rows []EnrichedEntry) []EmployeeMonthSalary {
	maxima := make(map[employeeMonthKey]decimal.Decimal, len(rows))
	for _, r := range rows {
		bk := keyFor(r)
		k := employeeMonthKey{Year: bk.Year, Month: bk.Month, BranchID: bk.BranchID, EmployeeID: r.EmployeeID}
		if cur, ok := maxima[k]; !ok || r.Salary.GreaterThan(cur) {
			maxima[k] = r.Salary
		}
	}

	out := make([]EmployeeMonthSalary, 0, len(maxima))
	for k, salary := range maxima {
		out = append(out, EmployeeMonthSalary{
			Year:           k.Year,
			Month:          k.Month,
			BranchID:       k.BranchID,
			EmployeeID:     k.EmployeeID,
			SalaryPerMonth: salary,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.BranchID != b.BranchID {
			return a.BranchID < b.BranchID
		}
		return a.EmployeeID < b.EmployeeID
	})
	return out
}

// AggregateBranchSalaries is the second salary stage: per-employee monthly
// salaries summed up to (year, month, branch).
func AggregateBranchSalaries(rows []EmployeeMonthSalary) []BranchMonthSalary {
	totals := make(map[branchMonthKey]decimal.Decimal, len(rows))
	for _, r := range rows {
		k := branchMonthKey{Year: r.Year, Month: r.Month, BranchID: r.BranchID}
		totals[k] = totals[k].Add(r.SalaryPerMonth)
	}

	out := make([]BranchMonthSalary, 0, len(totals))
	for k, total := range totals {
		out = append(out, BranchMonthSalary{
			Year:        k.Year,
			Month:       k.Month,
			BranchID:    k.BranchID,
			TotalSalary: total,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessBranchMonth(
			branchMonthKey{out[i].Year, out[i].Month, out[i].BranchID},
			branchMonthKey{out[j].Year, out[j].Month, out[j].BranchID},
		)
	})
	return out
}

func lessBranchMonth(a, b branchMonthKey) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.BranchID < b.BranchID
}

package payroll

import "cmp"

// Order is the direction used to pick the canonical row within a partition.
type Order int

const (
	// OrderAscending keeps the row with the minimum ordering value
	OrderAscending Order = iota
	// OrderDescending keeps the row with the maximum ordering value
	OrderDescending
)

// Deduplicate returns exactly one row per distinct partition key: the row
// with the minimum (ascending) or maximum (descending) ordering value.
// Ties are broken by the first-encountered row. Output preserves the order
// in which partition keys first appear, so repeated runs over the same
// input yield the same slice.
func Deduplicate[T any, K comparable, O cmp.Ordered](rows []T, key func(T) K, orderKey func(T) O, order Order) []T {
	out := make([]T, 0, len(rows))
	index := make(map[K]int, len(rows))

	for _, row := range rows {
		k := key(row)
		i, seen := index[k]
		if !seen {
			index[k] = len(out)
			out = append(out, row)
			continue
		}

		candidate, current := orderKey(row), orderKey(out[i])
		if (order == OrderAscending && candidate < current) ||
			(order == OrderDescending && candidate > current) {
			out[i] = row
		}
	}

	return out
}

type employeeBranchKey struct {
	EmployeeID int64
	BranchID   int64
}

type employeeDateKey struct {
	EmployeeID int64
	Year       int
	Month      int
	Day        int
}

// CanonicalEmployees collapses duplicate employee rows, keeping the highest
// salary per (employee, branch).
func CanonicalEmployees(records []EmployeeRecord) []EmployeeRecord {
	return Deduplicate(records,
		func(r EmployeeRecord) employeeBranchKey {
			return employeeBranchKey{EmployeeID: r.EmployeeID, BranchID: r.BranchID}
		},
		func(r EmployeeRecord) float64 { return r.Salary.InexactFloat64() },
		OrderDescending,
	)
}

// CanonicalTimesheets collapses duplicate timesheet rows, keeping the lowest
// timesheet ID per (employee, date).
func CanonicalTimesheets(entries []TimesheetEntry) []TimesheetEntry {
	return Deduplicate(entries,
		func(e TimesheetEntry) employeeDateKey {
			y, m, d := e.Date.Date()
			return employeeDateKey{EmployeeID: e.EmployeeID, Year: y, Month: int(m), Day: d}
		},
		func(e TimesheetEntry) int64 { return e.TimesheetID },
		OrderAscending,
	)
}

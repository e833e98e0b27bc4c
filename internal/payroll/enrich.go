package payroll

import "time"

// FilterByDate keeps only timesheet entries for the target calendar date.
func FilterByDate(entries []TimesheetEntry, target time.Time) []TimesheetEntry {
	target = midnight(target)

	out := make([]TimesheetEntry, 0, len(entries))
	for _, e := range entries {
		if midnight(e.Date).Equal(target) {
			out = append(out, e)
		}
	}
	return out
}

// Enrich inner-joins timesheet entries with employee records on employee ID.
// Entries without a matching employee are dropped. An employee with records
// in several branches yields one enriched row per branch, matching a
// many-to-many join.
func Enrich(entries []TimesheetEntry, employees []EmployeeRecord) []EnrichedEntry {
	byEmployee := make(map[int64][]EmployeeRecord, len(employees))
	for _, r := range employees {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	out := make([]EnrichedEntry, 0, len(entries))
	for _, e := range entries {
		for _, r := range byEmployee[e.EmployeeID] {
			out = append(out, EnrichedEntry{
				TimesheetEntry: e,
				BranchID:       r.BranchID,
				Salary:         r.Salary,
				JoinDate:       r.JoinDate,
				ResignDate:     r.ResignDate,
			})
		}
	}
	return out
}

// FilterValid drops entries dated after the employee's resignation. Entries
// for employees who never resigned are always kept. Dates are compared at
// midnight so time-of-day noise cannot flip the comparison.
func FilterValid(rows []EnrichedEntry) []EnrichedEntry {
	out := make([]EnrichedEntry, 0, len(rows))
	for _, r := range rows {
		if r.ResignDate == nil || !midnight(r.Date).After(midnight(*r.ResignDate)) {
			out = append(out, r)
		}
	}
	return out
}

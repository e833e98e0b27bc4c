package payroll

import "github.com/shopspring/decimal"

// CombineRates inner-joins the hours and salary aggregates on
// (year, month, branch) and derives salary_per_hour. Branch-months present
// in only one aggregate are dropped, mirroring the join the reporting
// contract documents. A branch-month with zero worked hours gets a zero
// rate regardless of its total salary; otherwise the rate is
// total_salary / total_work_hour rounded to 2 decimal places, half away
// from zero.
func CombineRates(hours []BranchMonthHours, salaries []BranchMonthSalary) []BranchMonthRate {
	salaryByKey := make(map[branchMonthKey]decimal.Decimal, len(salaries))
	for _, s := range salaries {
		salaryByKey[branchMonthKey{Year: s.Year, Month: s.Month, BranchID: s.BranchID}] = s.TotalSalary
	}

	out := make([]BranchMonthRate, 0, len(hours))
	for _, h := range hours {
		total, ok := salaryByKey[branchMonthKey{Year: h.Year, Month: h.Month, BranchID: h.BranchID}]
		if !ok {
			continue
		}

		rate := decimal.Zero
		if h.TotalWorkHours != 0 {
			rate = total.Div(decimal.NewFromFloat(h.TotalWorkHours)).Round(2)
		}

		out = append(out, BranchMonthRate{
			Year:          h.Year,
			Month:         h.Month,
			BranchID:      h.BranchID,
			SalaryPerHour: rate,
		})
	}
	return out
}

package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchpay/branchpay-etl/internal/payroll"
	"github.com/branchpay/branchpay-etl/pkg/testutil"
)

func enrichedFixture() []payroll.EnrichedEntry {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2024-01-01", ""),
		testutil.Employee(2, 10, 2000, "2024-01-01", ""),
		testutil.Employee(3, 20, 1500, "2024-01-01", ""),
	}
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"), // 8h branch 10
		testutil.Timesheet(2, 2, "2024-06-01", "10:00", "14:00"), // 4h branch 10
		testutil.Timesheet(3, 3, "2024-06-01", "09:00", "12:00"), // 3h branch 20
		testutil.Timesheet(4, 1, "2024-07-01", "09:00", "17:00"), // 8h branch 10, July
	}
	return payroll.Enrich(entries, employees)
}

func TestAggregateHours(t *testing.T) {
	got := payroll.AggregateHours(enrichedFixture())

	require.Len(t, got, 3)
	assert.Equal(t, payroll.BranchMonthHours{Year: 2024, Month: 6, BranchID: 10, TotalWorkHours: 12}, got[0])
	assert.Equal(t, payroll.BranchMonthHours{Year: 2024, Month: 6, BranchID: 20, TotalWorkHours: 3}, got[1])
	assert.Equal(t, payroll.BranchMonthHours{Year: 2024, Month: 7, BranchID: 10, TotalWorkHours: 8}, got[2])
}

func TestAggregateHours_InvariantUnderReordering(t *testing.T) {
	rows := enrichedFixture()
	reversed := make([]payroll.EnrichedEntry, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	assert.Equal(t, payroll.AggregateHours(rows), payroll.AggregateHours(reversed))
}

func TestAggregateHours_InvariantUnderBatchSplit(t *testing.T) {
	rows := enrichedFixture()
	split := append(append([]payroll.EnrichedEntry{}, rows[:2]...), rows[2:]...)

	assert.Equal(t, payroll.AggregateHours(rows), payroll.AggregateHours(split))
}

func TestAggregateEmployeeSalaries_MaxCollapsesDuplicates(t *testing.T) {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2024-01-01", ""),
	}
	// Two entries in the same month for the same employee: stage 1 must
	// produce one row with the max salary figure, not a doubled sum.
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"),
		testutil.Timesheet(2, 1, "2024-06-02", "09:00", "17:00"),
	}

	got := payroll.AggregateEmployeeSalaries(payroll.Enrich(entries, employees))

	require.Len(t, got, 1)
	assert.Equal(t, "3000", got[0].SalaryPerMonth.String())
	assert.Equal(t, int64(1), got[0].EmployeeID)
}

func TestAggregateBranchSalaries_SumsEmployees(t *testing.T) {
	stage1 := payroll.AggregateEmployeeSalaries(enrichedFixture())
	got := payroll.AggregateBranchSalaries(stage1)

	require.Len(t, got, 3)
	assert.Equal(t, "5000", got[0].TotalSalary.String()) // June branch 10: 3000 + 2000
	assert.Equal(t, "1500", got[1].TotalSalary.String()) // June branch 20
	assert.Equal(t, "3000", got[2].TotalSalary.String()) // July branch 10
}

func TestAggregates_UniqueKeys(t *testing.T) {
	hours := payroll.AggregateHours(enrichedFixture())
	seen := map[[3]int64]bool{}
	for _, h := range hours {
		k := [3]int64{int64(h.Year), int64(h.Month), h.BranchID}
		assert.False(t, seen[k], "duplicate aggregate key %v", k)
		seen[k] = true
	}
}

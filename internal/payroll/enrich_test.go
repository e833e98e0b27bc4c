package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchpay/branchpay-etl/internal/payroll"
	"github.com/branchpay/branchpay-etl/pkg/testutil"
)

func TestFilterByDate(t *testing.T) {
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"),
		testutil.Timesheet(2, 1, "2024-06-02", "09:00", "17:00"),
		testutil.Timesheet(3, 2, "2024-06-01", "09:00", "17:00"),
	}

	got := payroll.FilterByDate(entries, testutil.MustDate("2024-06-01"))

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].TimesheetID)
	assert.Equal(t, int64(3), got[1].TimesheetID)
}

func TestEnrich_InnerJoinDropsUnmatchedEntries(t *testing.T) {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2024-01-01", ""),
	}
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"),
		testutil.Timesheet(2, 99, "2024-06-01", "09:00", "17:00"), // no such employee
	}

	got := payroll.Enrich(entries, employees)

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].TimesheetID)
	assert.Equal(t, int64(10), got[0].BranchID)
	assert.Equal(t, "3000", got[0].Salary.String())
}

func TestEnrich_EmployeeInMultipleBranches(t *testing.T) {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2024-01-01", ""),
		testutil.Employee(1, 20, 2500, "2024-01-01", ""),
	}
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"),
	}

	got := payroll.Enrich(entries, employees)

	require.Len(t, got, 2)
	branches := []int64{got[0].BranchID, got[1].BranchID}
	assert.ElementsMatch(t, []int64{10, 20}, branches)
}

func TestFilterValid(t *testing.T) {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2024-01-01", "2024-05-31"), // resigned before June
		testutil.Employee(2, 10, 2000, "2024-01-01", "2024-06-01"), // resigned on the entry date
		testutil.Employee(3, 10, 1000, "2024-01-01", ""),           // never resigned
	}
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2024-06-01", "09:00", "17:00"),
		testutil.Timesheet(2, 2, "2024-06-01", "09:00", "17:00"),
		testutil.Timesheet(3, 3, "2024-06-01", "09:00", "17:00"),
	}

	got := payroll.FilterValid(payroll.Enrich(entries, employees))

	require.Len(t, got, 2)
	ids := []int64{got[0].EmployeeID, got[1].EmployeeID}
	assert.ElementsMatch(t, []int64{2, 3}, ids, "entry on the resign date stays, entry after it goes")
}

func TestFilterValid_NilResignDateAlwaysIncluded(t *testing.T) {
	employees := []payroll.EmployeeRecord{
		testutil.Employee(1, 10, 3000, "2020-01-01", ""),
	}
	entries := []payroll.TimesheetEntry{
		testutil.Timesheet(1, 1, "2099-12-31", "09:00", "17:00"),
	}

	got := payroll.FilterValid(payroll.Enrich(entries, employees))
	assert.Len(t, got, 1)
}

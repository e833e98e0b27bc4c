package payroll

// WorkedHours returns the fractional hours worked for a timesheet entry.
//
// A checkin later than the checkout yields 0 hours: overnight shifts, where
// the checkout clock value is smaller because it falls past midnight, are
// not supported and are deliberately zeroed rather than interpreted as
// crossing into the next day. Equal checkin and checkout also yields 0.
// The result is never negative.
func WorkedHours(e TimesheetEntry) float64 {
	if e.Checkin > e.Checkout {
		return 0
	}
	return (e.Checkout - e.Checkin).Hours()
}

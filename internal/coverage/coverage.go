// Package coverage implements the delegation-program fee-reimbursement
// schedule: a step function that decays from full coverage to zero over the
// first year after acceptance.
package coverage

import "time"

const dateLayout = "2006-01-02"

// Fraction returns the reimbursed fraction of vote costs on date, given the
// program acceptance date. Both dates are "YYYY-MM-DD".
//
// Coverage decays in whole-month steps from acceptance:
// months 0-2 → 1.0, 3-5 → 0.75, 6-8 → 0.50, 9-11 → 0.25, 12+ → 0.
// An empty or unparsable acceptance date means "not enrolled" and yields 0.
func Fraction(acceptanceDate, date string) float64 {
	if acceptanceDate == "" {
		return 0
	}
	accepted, err := time.Parse(dateLayout, acceptanceDate)
	if err != nil {
		return 0
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}

	months := (d.Year()-accepted.Year())*12 + int(d.Month()) - int(accepted.Month())

	switch {
	case months < 0:
		return 0 // before acceptance
	case months < 3:
		return 1.0
	case months < 6:
		return 0.75
	case months < 9:
		return 0.50
	case months < 12:
		return 0.25
	default:
		return 0
	}
}

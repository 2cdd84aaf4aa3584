package growth

import "math"

// LumpSumValue returns the future value of a single upfront principal after
// the given number of years of annual compounding:
// principal * (1 + annualRate)^years. Years of zero returns the principal.
func LumpSumValue(principal, annualRate float64, years int) float64 {
	return principal * math.Pow(1+annualRate, float64(years))
}

// RecurringMonthlyValue returns the future value of a fixed contribution
// invested at the start of every month (annuity-due), compounded monthly:
// contribution * ((1+mr)^months - 1) / mr * (1+mr), with mr = annualRate/12.
//
// A zero rate is the limit of the formula and returns the plain sum of
// contributions instead of dividing by zero.
func RecurringMonthlyValue(monthly, annualRate float64, years int) float64 {
	months := float64(years * 12)
	if annualRate == 0 {
		return monthly * months
	}
	monthlyRate := annualRate / 12
	return monthly * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate) * (1 + monthlyRate)
}

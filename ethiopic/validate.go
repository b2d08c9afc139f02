package ethiopic

// gregorianMonthDays holds the day count per month in a common year,
// indexed by month number (index 0 unused).
var gregorianMonthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsGregorianLeap reports whether a proleptic Gregorian year is a leap year
// under the 4/100/400 rule.
func IsGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsEthiopicLeap reports whether an Ethiopian year is a leap year, in which
// Pagume has 6 days instead of 5. The leap years are those with
// year mod 4 == 3 (the year of St. Luke in the four-evangelist cycle).
func IsEthiopicLeap(year int) bool {
	return year%4 == 3
}

// IsValidGregorianDate reports whether the triple denotes a real proleptic
// Gregorian calendar day. Invalid input is a normal outcome, never an error.
func IsValidGregorianDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	max := gregorianMonthDays[month]
	if month == 2 && IsGregorianLeap(year) {
		max = 29
	}
	return day <= max
}

// IsValidEthiopicDate reports whether the triple denotes a real Ethiopian
// calendar day. Months 1-12 have 30 days; Pagume (month 13) has 5, or 6 in
// a leap year.
func IsValidEthiopicDate(year, month, day int) bool {
	if month < 1 || month > 13 || day < 1 {
		return false
	}
	if month <= 12 {
		return day <= 30
	}
	if IsEthiopicLeap(year) {
		return day <= 6
	}
	return day <= 5
}

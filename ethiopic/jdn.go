package ethiopic

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// Go's native integer division truncates toward zero, which breaks the JDN
// formulas for dates before the epochs (negative years, negative JDNs).
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the Euclidean remainder of a/b, always in [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// GregorianToJDN converts a proleptic Gregorian date to its Julian Day
// Number. The formula shifts to March-based months so the leap day lands at
// the end of the counting year, and holds for any year, including years
// before the historical 1582 reform and before year 1.
//
// No validation is performed; see IsValidGregorianDate.
func GregorianToJDN(year, month, day int) int64 {
	y, m, d := int64(year), int64(month), int64(day)
	a := floorDiv(14-m, 12) // 1 for Jan/Feb, 0 otherwise
	y = y + 4800 - a
	m = m + 12*a - 3
	return d + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// JDNToGregorian is the exact inverse of GregorianToJDN. It implements
// Richards' algorithm on floor division so it round-trips for any JDN,
// negative values included.
func JDNToGregorian(jdn int64) Date {
	f := jdn + 1401 + floorDiv(floorDiv(4*jdn+274277, 146097)*3, 4) - 38
	e := 4*f + 3
	g := floorDiv(floorMod(e, 1461), 4)
	h := 5*g + 2
	day := floorDiv(floorMod(h, 153), 5) + 1
	month := floorMod(floorDiv(h, 153)+2, 12) + 1
	year := floorDiv(e, 1461) - 4716 + floorDiv(14-month, 12)
	return Date{Year: int(year), Month: int(month), Day: int(day)}
}

// EthiopicToJDN converts an Ethiopian date under the given era to its JDN.
// The Ethiopian year is 12 months of 30 days plus Pagume (month 13) of 5 or
// 6 days; the leap day accumulates as year/4 because leap years are the
// years with year mod 4 == 3, so the quotient grows in the year after each
// leap year.
//
// No validation is performed; see IsValidEthiopicDate.
func EthiopicToJDN(year, month, day int, era Era) int64 {
	y, m, d := int64(year), int64(month), int64(day)
	return int64(era) + 365 + 365*(y-1) + floorDiv(y, 4) + 30*m + d - 31
}

// JDNToEthiopic is the exact inverse of EthiopicToJDN for the same era.
// The Ethiopian calendar repeats in plain 1461-day (4-year) cycles, so the
// decomposition needs no century corrections.
func JDNToEthiopic(jdn int64, era Era) Date {
	off := jdn - int64(era)
	r := floorMod(off, 1461)
	// r == 1460 is Pagume 6 of the cycle's leap year, which a plain
	// mod-365 split would misread as day 1 of the next year.
	n := floorMod(r, 365) + 365*floorDiv(r, 1460)
	year := 4*floorDiv(off, 1461) + floorDiv(r, 365) - floorDiv(r, 1460)
	month := floorDiv(n, 30) + 1
	day := floorMod(n, 30) + 1
	return Date{Year: int(year), Month: int(month), Day: int(day)}
}

// DayOfWeek returns the weekday index of a JDN in 0..6, where 0 is Monday.
// JDN 0 falls on a Monday; the Euclidean remainder keeps the convention
// intact for negative JDNs.
func DayOfWeek(jdn int64) int {
	return int(floorMod(jdn, 7))
}

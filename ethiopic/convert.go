package ethiopic

// EthiopicToGregorian converts an Ethiopian date to the proleptic Gregorian
// calendar, auto-detecting the era: the date is tentatively converted under
// Amete Mihret, GuessEra resolves the epoch from that JDN, and the JDN is
// recomputed if the resolved era differs. Returns ErrInvalidEthiopicDate for
// calendar-invalid input.
func EthiopicToGregorian(year, month, day int) (Date, error) {
	if !IsValidEthiopicDate(year, month, day) {
		return Date{}, ErrInvalidEthiopicDate
	}
	jdn := EthiopicToJDN(year, month, day, JDEpochOffsetAmeteMihret)
	if era := GuessEra(jdn); era != JDEpochOffsetAmeteMihret {
		jdn = EthiopicToJDN(year, month, day, era)
	}
	return JDNToGregorian(jdn), nil
}

// EthiopicToGregorianInEra converts an Ethiopian date under an explicit era.
// Returns ErrInvalidEthiopicDate for calendar-invalid input.
func EthiopicToGregorianInEra(year, month, day int, era Era) (Date, error) {
	if !IsValidEthiopicDate(year, month, day) {
		return Date{}, ErrInvalidEthiopicDate
	}
	return JDNToGregorian(EthiopicToJDN(year, month, day, era)), nil
}

// GregorianToEthiopic converts a proleptic Gregorian date to the Ethiopian
// calendar. Gregorian input carries no era, so the era is always resolved
// from the JDN: dates before Meskerem 1, 1 Amete Mihret come back in the
// Amete Alem year count. Returns ErrInvalidGregorianDate for
// calendar-invalid input.
func GregorianToEthiopic(year, month, day int) (Date, error) {
	if !IsValidGregorianDate(year, month, day) {
		return Date{}, ErrInvalidGregorianDate
	}
	jdn := GregorianToJDN(year, month, day)
	return JDNToEthiopic(jdn, GuessEra(jdn)), nil
}

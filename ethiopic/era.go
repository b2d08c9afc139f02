package ethiopic

// eraBoundaryJDN is the JDN of Meskerem 1, year 1 Amete Mihret, i.e.
// EthiopicToJDN(1, 1, 1, JDEpochOffsetAmeteMihret). Days on or after it
// belong to the Amete Mihret year count.
const eraBoundaryJDN = int64(JDEpochOffsetAmeteMihret) + 365

// GuessEra infers which Ethiopian era a JDN belongs to. An Ethiopian year
// numeral alone is ambiguous between the two eras; callers that hold a date
// without an era convert it tentatively under Amete Mihret and pass the
// resulting JDN here to resolve it. A single threshold comparison suffices
// because the Amete Mihret count starts at a fixed day.
func GuessEra(jdn int64) Era {
	if jdn >= eraBoundaryJDN {
		return JDEpochOffsetAmeteMihret
	}
	return JDEpochOffsetAmeteAlem
}

package ethiopic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloorDiv pins the rounding behavior the JDN formulas depend on.
// Go's native / truncates toward zero; the formulas need floor.
func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, quo, rem int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
		{-1, 1461, -1, 1460},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.quo, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.rem, floorMod(tt.a, tt.b), "floorMod(%d, %d)", tt.a, tt.b)
	}
}

// TestGregorianToJDN_KnownVectors checks the forward formula against
// independently known Julian Day Numbers.
func TestGregorianToJDN_KnownVectors(t *testing.T) {
	tests := []struct {
		year, month, day int
		jdn              int64
	}{
		{1, 1, 1, 1721426},      // proleptic Gregorian epoch
		{1582, 10, 15, 2299161}, // first day of the historical Gregorian calendar
		{1970, 1, 1, 2440588},   // Unix epoch
		{2000, 1, 1, 2451545},   // J2000
		{1900, 1, 1, 2415021},   // century boundary, non-leap
		{2024, 12, 25, 2460670}, // modern date
		{-5492, 7, 17, -284654}, // Amete Alem epoch region, negative JDN
	}

	for _, tt := range tests {
		assert.Equal(t, tt.jdn, GregorianToJDN(tt.year, tt.month, tt.day),
			"GregorianToJDN(%d, %d, %d)", tt.year, tt.month, tt.day)
	}
}

// TestGregorianEpochConstant ensures the exported constant matches the
// formula output; the constant is part of the public contract.
func TestGregorianEpochConstant(t *testing.T) {
	assert.Equal(t, JDEpochOffsetGregorian, GregorianToJDN(1, 1, 1))
}

// TestJDNToGregorian_RoundTrip sweeps JDN ranges covering the Gregorian
// reform, the modern era, and the Amete Alem antiquity (negative JDNs) and
// requires an exact round trip through both directions.
func TestJDNToGregorian_RoundTrip(t *testing.T) {
	ranges := []struct {
		name     string
		from, to int64
	}{
		{"gregorian reform", 2299000, 2299400},
		{"modern era", 2440000, 2441500},
		{"leap century 2000", 2451500, 2451700},
		{"antiquity", -284800, -284500},
		{"jdn zero", -10, 10},
	}

	for _, r := range ranges {
		t.Run(r.name, func(t *testing.T) {
			for jdn := r.from; jdn <= r.to; jdn++ {
				d := JDNToGregorian(jdn)
				require.Equal(t, jdn, GregorianToJDN(d.Year, d.Month, d.Day),
					"round trip broke at jdn=%d (date %s)", jdn, d)
				require.True(t, IsValidGregorianDate(d.Year, d.Month, d.Day),
					"jdn=%d decoded to invalid date %s", jdn, d)
			}
		})
	}
}

// TestEthiopicToJDN_Anchor pins the epoch anchor: Meskerem 1, year 1 of each
// era falls exactly 365 days after the era's offset.
func TestEthiopicToJDN_Anchor(t *testing.T) {
	assert.Equal(t, int64(JDEpochOffsetAmeteMihret)+365,
		EthiopicToJDN(1, 1, 1, JDEpochOffsetAmeteMihret))
	assert.Equal(t, int64(JDEpochOffsetAmeteAlem)+365,
		EthiopicToJDN(1, 1, 1, JDEpochOffsetAmeteAlem))
}

// TestJDNToEthiopic_RoundTrip sweeps whole 4-year cycles, including the
// cycle's Pagume 6 day, under both eras.
func TestJDNToEthiopic_RoundTrip(t *testing.T) {
	eras := []Era{JDEpochOffsetAmeteMihret, JDEpochOffsetAmeteAlem}

	for _, era := range eras {
		// Two full cycles around year 2000 of the era, plus the era start.
		starts := []int64{
			EthiopicToJDN(1, 1, 1, era),
			EthiopicToJDN(2000, 1, 1, era),
		}
		for _, start := range starts {
			for jdn := start; jdn < start+2*1461; jdn++ {
				d := JDNToEthiopic(jdn, era)
				require.Equal(t, jdn, EthiopicToJDN(d.Year, d.Month, d.Day, era),
					"round trip broke at jdn=%d era=%d (date %s)", jdn, era, d)
				require.True(t, IsValidEthiopicDate(d.Year, d.Month, d.Day),
					"jdn=%d era=%d decoded to invalid date %s", jdn, era, d)
			}
		}
	}
}

// TestJDNToEthiopic_PagumeSix checks the leap-cycle boundary day explicitly:
// the 1461st day of a cycle is Pagume 6 of the leap year, not New Year.
func TestJDNToEthiopic_PagumeSix(t *testing.T) {
	era := JDEpochOffsetAmeteMihret
	jdn := EthiopicToJDN(2015, 13, 6, era) // 2015 is an Ethiopian leap year
	assert.Equal(t, Date{Year: 2015, Month: 13, Day: 6}, JDNToEthiopic(jdn, era))
	assert.Equal(t, Date{Year: 2016, Month: 1, Day: 1}, JDNToEthiopic(jdn+1, era))
}

// TestDayOfWeek verifies the fixed convention (JDN 0 is a Monday) and the
// consecutive-day property.
func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, 0, DayOfWeek(0))
	assert.Equal(t, 6, DayOfWeek(-1))

	tests := []struct {
		name    string
		jdn     int64
		weekday int
	}{
		{"1 Jan 1 CE is a Monday", GregorianToJDN(1, 1, 1), 0},
		{"Unix epoch is a Thursday", GregorianToJDN(1970, 1, 1), 3},
		{"Gregorian reform day is a Friday", GregorianToJDN(1582, 10, 15), 4},
		{"Christmas 2024 is a Wednesday", GregorianToJDN(2024, 12, 25), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weekday, DayOfWeek(tt.jdn))
		})
	}

	// Consecutive JDNs yield consecutive weekday indices modulo 7,
	// across the sign boundary too.
	for jdn := int64(-15); jdn < 15; jdn++ {
		assert.Equal(t, (DayOfWeek(jdn)+1)%7, DayOfWeek(jdn+1), "at jdn=%d", jdn)
	}
}

// Package ethiopic converts dates between the Ethiopian (Ge'ez) calendar and
// the proleptic Gregorian calendar, using the Julian Day Number (JDN) as the
// shared integer timeline.
//
// The package is split into two tiers:
//
//   - Raw arithmetic (GregorianToJDN, JDNToGregorian, EthiopicToJDN,
//     JDNToEthiopic, GuessEra, DayOfWeek). These are total functions over
//     their integer domains: they never validate and never fail. Feeding them
//     a date that was never calendar-legal yields a deterministic but
//     calendar-meaningless result.
//   - Validating conversions (EthiopicToGregorian, GregorianToEthiopic and
//     friends). These check the input with the validation predicates first
//     and return a calendar-validity error instead of a silently-wrong date.
//
// All functions are pure and safe for concurrent use.
package ethiopic

import (
	"errors"
	"fmt"
)

// Date is a year/month/day triple. It carries no calendar tag; the calendar
// it belongs to is implied by the function that produced or consumes it.
// Month and day numbering is 1-based in both calendars.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Era selects the Ethiopian epoch a year number is counted from. Its value
// is the epoch offset itself: the JDN that Ethiopian year 1, Meskerem 1 of
// that era falls 365 days after.
type Era int64

// Epoch offsets. These are part of the public contract; changing them is a
// breaking change.
const (
	// JDEpochOffsetAmeteAlem anchors the "Era of the World" year count,
	// roughly 5500 years before Amete Mihret.
	JDEpochOffsetAmeteAlem Era = -285019

	// JDEpochOffsetAmeteMihret anchors the "Era of Mercy", the common
	// modern Ethiopian epoch.
	JDEpochOffsetAmeteMihret Era = 1723856

	// JDEpochOffsetGregorian is the JDN of 1 January 1 CE in the proleptic
	// Gregorian calendar.
	JDEpochOffsetGregorian int64 = 1721426
)

// Calendar-validity errors returned by the validating conversion functions.
// These represent well-typed but calendar-invalid input (Ethiopian month 14,
// Gregorian February 30). They are deliberately distinct from any
// input-shape error an adapter layer may raise before reaching this package.
var (
	ErrInvalidEthiopicDate  = errors.New("invalid ethiopic date")
	ErrInvalidGregorianDate = errors.New("invalid gregorian date")
)

// Package dates is a grab-bag of small date-arithmetic utilities: parsing
// wrappers for RFC 2822 and ISO 8601 text, a leap-year predicate, wall-clock
// timespan formatting, and the angle between the hands of an analog clock.
//
// ✨ Contracts at a glance:
//
//   - ParseRFC2822 / ParseISO8601 return a Timestamp (epoch milliseconds);
//     unparseable text yields the NaN sentinel instead of an error, and
//     callers must check IsValid explicitly.
//   - IsLeapYear applies the Gregorian rule: divisible by 4 and (not by 100
//     or by 400).
//   - FormatTimespan renders "HH:mm:ss.sss" from FIELD-WISE differences with
//     no borrow across units — an end field smaller than its start field
//     produces a negative field in the output. Documented limitation, kept
//     on purpose.
//   - ClockAngle folds the hour/minute hand angle into the shorter arc,
//     [0, π] radians, using the UTC hour field and the wall-clock minute
//     field of its argument.
//
// Everything is pure, synchronous and allocation-light; there is no shared
// state and no I/O.
package dates

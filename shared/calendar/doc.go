// Package calendar holds the date arithmetic behind the office rotation.
//
// A calendar day is represented as a time.Time at midnight UTC. ParseDate,
// DateOf and the week helpers always return values in that form, so two
// values for the same day compare equal with ==.
//
// The rotation alternates on ISO-8601 week parity: odd weeks are WEEK_1 and
// even weeks are WEEK_2. Batch A sits on Monday to Wednesday in WEEK_1 and on
// Thursday and Friday in WEEK_2, Batch B takes the other days.
//
// CutoffClock resolves the single date that is open for booking at a given
// instant. It never reads the wall clock itself.
package calendar

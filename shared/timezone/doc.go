// Package timezone holds the zone the service renders timestamps in.
//
// The zone comes from APP_TIMEZONE, then BOOKING_TIMEZONE, then UTC, and is
// loaded once at import. Audit timestamps go through Format; booking dates
// are plain calendar dates and never pass through here. The booking cutoff
// uses its own zone from Load so the two settings can differ.
package timezone

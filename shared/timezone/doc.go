// Package timezone pins every timestamp the service reads or writes to one
// configured location (APP_TIMEZONE, an IANA name such as "Asia/Kolkata").
// An unknown or empty name falls back to UTC.
//
// Stay check-in and check-out, table booking times and banquet event dates
// arrive from clients either with an offset (RFC3339) or without one, as
// produced by an HTML datetime-local input ("2024-03-01T14:00") or a plain
// date ("2024-03-01"). ParseFlexible accepts all of these and reads values
// without an offset in the application timezone:
//
//	checkIn, err := timezone.ParseFlexible("2024-03-01T14:00")
//
// Responses are rendered with Format, so a stay booked at 14:00 local time is
// reported back as 14:00 in the same location regardless of the host clock.
package timezone

// Package timezone owns the wall clock every service stamps its records with.
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported;
// unknown names fall back to UTC. Tests pin the clock with Freeze:
//
//	restore := timezone.Freeze(time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC))
//	defer restore()
package timezone

// Package services contains the application services of the portal client:
// authentication and session management, read access to the catalog
// collections and analytics, schedule administration and exams.
//
// Failures are returned as *Error, whose message is the server-provided text
// when there is one and a localized fallback otherwise; the underlying cause
// stays reachable through errors.Is/As.
package services

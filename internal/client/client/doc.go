// Package client contains the transport building blocks of the portal client.
//
// # Overview
//
// The package provides:
//  1. HTTPClient, a JSON-over-HTTP client for the portal REST API. It attaches
//     the bearer access token from a Session, and on a 401 response refreshes
//     the tokens once (shared by all concurrent callers) and replays the
//     request a single time.
//  2. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, opening an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Non-2xx responses surface as *APIError. Common conditions are exposed as
// sentinel errors that callers can match with errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrNotFound. Message extracts the server-provided message
// for display.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; the token refresh itself runs
// detached from the caller that triggered it so that one cancelled caller does
// not fail the others waiting on the same refresh.
package client

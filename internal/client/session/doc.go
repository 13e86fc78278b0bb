// Package session is the client's token store: the access token, refresh
// token and device id of the signed-in user, persisted in the local SQLite
// metadata table so a restarted shell resumes the session.
//
// Roles and the identity subject are read from the unverified payload of the
// access token. They steer what the shell offers (which dashboard, which
// commands) and are not a security boundary; the portal API authorizes every
// request on its own.
package session

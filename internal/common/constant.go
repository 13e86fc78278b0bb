// Package common contains shared constants and sentinel errors used across
// the portal client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer access token.
	AuthorizationHeaderName = "Authorization"

	// DeviceIDHeaderName identifies the device on session management calls.
	DeviceIDHeaderName = "X-Device-Id"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "

	// RolePrefix is the canonical prefix of normalized role names.
	RolePrefix = "ROLE_"
)

// Role names as issued by the portal API.
const (
	RoleAdmin   = "ROLE_ADMIN"
	RoleTeacher = "ROLE_TEACHER"
	RoleStudent = "ROLE_STUDENT"
)

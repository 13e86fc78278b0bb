package models

// TokenPair is returned by the login and refresh endpoints.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	DeviceID     string `json:"deviceId,omitempty"`
}

// MFAChallenge is the 202 payload of a login that needs a second factor.
type MFAChallenge struct {
	ChallengeID string `json:"challengeId"`
	Method      string `json:"method,omitempty"`
	Destination string `json:"destination,omitempty"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
	Message     string `json:"message,omitempty"`
}

type Profile struct {
	ID         int64    `json:"id"`
	IdentityNo string   `json:"identityNo"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Email      string   `json:"email,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	MFAEnabled bool     `json:"mfaEnabled"`
}

// DeviceSession is one signed-in device as listed by /api/auth/sessions.
type DeviceSession struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	LastSeenAt string `json:"lastSeenAt,omitempty"`
	Current    bool   `json:"current,omitempty"`
}

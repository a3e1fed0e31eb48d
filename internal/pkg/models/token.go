package models

// TokenRecord is the redis-side record of an issued token, keyed by its jti.
// The JSON field names (exp, type, parent, userId) are a wire contract with
// the inbound-request authenticator and must be preserved byte-for-byte.
type TokenRecord struct {
	Exp    int64  `json:"exp"`    // expiry, epoch seconds
	Type   string `json:"type"`   // "access" or "refresh"
	Parent string `json:"parent"` // refresh jti for access tokens, empty otherwise
	UserID string `json:"userId"`
}

// TokenPair is the signed credential pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is the full login response payload.
type LoginResult struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         PublicUser `json:"user"`
}

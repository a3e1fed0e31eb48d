package models

// OTPResult is returned by CreateOTP.
type OTPResult struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// VerifyOTPResult carries the one-shot sign key minted after a successful
// verification, consumed exactly once by finalize-register or reset-password.
type VerifyOTPResult struct {
	SignKey string `json:"sign_key"`
	UserID  string `json:"user_id"`
}

package constants

// Redis key formats
const (
	// Token records
	KeyTokenRecord = "auth:token:%s" // Format: auth:token:{jti}

	// OTP flow
	KeyOTPCode     = "otp:code:%s"     // Format: otp:code:{phone}
	KeyOTPRequests = "otp:req:%s"      // Format: otp:req:{phone}
	KeyOTPIPLimit  = "otp:ip:%s"       // Format: otp:ip:{request_ip}
	KeyOTPCooldown = "otp:cooldown:%s" // Format: otp:cooldown:{phone}
	KeyOTPBlock    = "otp:block:%s"    // Format: otp:block:{phone}

	// Sign keys (one-shot capability produced by OTP verification)
	KeySignKey = "auth:signkey:%s" // Format: auth:signkey:{key}
)

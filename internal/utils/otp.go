package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode returns a uniformly random six-digit numeric code.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

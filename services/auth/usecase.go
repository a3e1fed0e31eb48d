package auth

import (
	"context"

	"github.com/vndocs/authcore/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vndocs/authcore/services/auth AuthUC

// AuthUC is the public surface of the session/credential core.
type AuthUC interface {
	// credential verification
	ValidateUser(ctx context.Context, identifier, password string) (*models.User, error)
	RegisterInit(ctx context.Context, email, phone, fullName, password string) (*models.User, error)

	// session lifecycle
	Login(ctx context.Context, user *models.User, portal, userAgent, deviceName string) (*models.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	IsTokenValid(ctx context.Context, jti string) bool
	Logout(ctx context.Context, refreshToken string)

	// phone verification
	CreateOTP(ctx context.Context, phone, requestIP string) (*models.OTPResult, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.VerifyOTPResult, error)
	FinalizeRegister(ctx context.Context, signKey string) error
	ResetPassword(ctx context.Context, signKey, newPassword string) error

	// ledger maintenance
	PruneSessions(ctx context.Context) (int64, error)
}

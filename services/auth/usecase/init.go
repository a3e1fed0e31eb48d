package usecase

import (
	jwtpkg "github.com/vndocs/authcore/internal/pkg/jwt"
	"github.com/vndocs/authcore/internal/pkg/models"
	"github.com/vndocs/authcore/services/auth"
)

// AuthUC orchestrates session issuance and phone verification over the
// injected store handles. No process-wide singletons: every collaborator is
// passed in at construction time.
type AuthUC struct {
	cfg         *models.Config
	userRepo    auth.UserRepo
	sessionRepo auth.SessionRepo
	tokenRepo   auth.TokenRepo
	otpRepo     auth.OTPRepo
	mailGW      auth.MailGW
	issuer      *jwtpkg.Issuer
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cfg *models.Config,
	userRepo auth.UserRepo,
	sessionRepo auth.SessionRepo,
	tokenRepo auth.TokenRepo,
	otpRepo auth.OTPRepo,
	mailGW auth.MailGW,
	issuer *jwtpkg.Issuer,
) *AuthUC {
	return &AuthUC{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokenRepo:   tokenRepo,
		otpRepo:     otpRepo,
		mailGW:      mailGW,
		issuer:      issuer,
	}
}

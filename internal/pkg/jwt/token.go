package jwt

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/vndocs/authcore/internal/pkg/constants"
	"github.com/vndocs/authcore/internal/pkg/logger"
	"github.com/vndocs/authcore/internal/pkg/models"
)

// Claims is the signed token payload. The registered ID claim carries the
// jti used as the token record key; Type discriminates access from refresh.
type Claims struct {
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies token payloads. The signing mode is decided once
// at construction: RS256 when a key pair is configured, HS256 otherwise.
type Issuer struct {
	cfg        models.JWTConfig
	method     jwt.SigningMethod
	signKey    interface{}
	verifyKey  interface{}
	asymmetric bool
}

// NewIssuer builds an Issuer from configuration. A configured key pair that
// cannot be loaded, or whose halves do not correspond, is a hard error, not
// a fallback.
func NewIssuer(cfg models.JWTConfig) (*Issuer, error) {
	if cfg.PrivateKeyPath != "" || cfg.PublicKeyPath != "" {
		if cfg.PrivateKeyPath == "" || cfg.PublicKeyPath == "" {
			return nil, fmt.Errorf("jwt: both private and public key paths must be set")
		}

		privateKey, publicKey, err := loadKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath)
		if err != nil {
			return nil, err
		}

		iss := &Issuer{
			cfg:        cfg,
			method:     jwt.SigningMethodRS256,
			signKey:    privateKey,
			verifyKey:  publicKey,
			asymmetric: true,
		}
		if err := iss.selfCheck(); err != nil {
			return nil, err
		}
		return iss, nil
	}

	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: no key pair configured and JWT_SECRET is empty")
	}

	logger.Warn("jwt: no RSA key pair configured, falling back to HS256 shared secret; " +
		"tokens can be forged by any holder of the secret")

	return &Issuer{
		cfg:       cfg,
		method:    jwt.SigningMethodHS256,
		signKey:   []byte(cfg.Secret),
		verifyKey: []byte(cfg.Secret),
	}, nil
}

func loadKeyPair(privatePath, publicPath string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privatePEM, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt: failed to read private key: %w", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt: failed to parse private key: %w", err)
	}

	publicPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt: failed to read public key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt: failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// selfCheck signs and verifies a probe token so a mismatched key pair fails
// at startup instead of on the first live request.
func (i *Issuer) selfCheck() error {
	probe, err := jwt.NewWithClaims(i.method, jwt.RegisteredClaims{
		Subject:   "selfcheck",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(i.signKey)
	if err != nil {
		return fmt.Errorf("jwt: key self-check sign failed: %w", err)
	}

	_, err = jwt.Parse(probe, func(t *jwt.Token) (interface{}, error) {
		return i.verifyKey, nil
	})
	if err != nil {
		return fmt.Errorf("jwt: public key does not match private key: %w", err)
	}
	return nil
}

// GenerateAccessToken signs an access token carrying the full user claims.
// Returns the signed string and its expiry in epoch seconds.
func (i *Issuer) GenerateAccessToken(user *models.User, jti string) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(i.cfg.AccessExpiration) * time.Minute)

	claims := Claims{
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
		Phone:    user.Phone,
		Type:     constants.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        jti,
			Issuer:    i.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.signKey)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// GenerateRefreshToken signs a refresh token carrying only the subject and jti.
func (i *Issuer) GenerateRefreshToken(userID, jti string) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(i.cfg.RefreshExpiration) * time.Minute)

	claims := Claims{
		Type: constants.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			Issuer:    i.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.signKey)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// Verify parses a token string and returns its claims. Any signature
// mismatch, malformed payload, wrong algorithm, or expired exp claim is an
// error; a partially-trusted payload is never returned.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return i.verifyKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

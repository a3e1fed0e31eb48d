package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/constants"
	jwtpkg "github.com/vndocs/authcore/internal/pkg/jwt"
	"github.com/vndocs/authcore/internal/pkg/models"
	"github.com/vndocs/authcore/services/auth/mocks"
)

// testEnv bundles the usecase with its mocked collaborators. The issuer is
// a real HS256 issuer so signed tokens round-trip through Verify.
type testEnv struct {
	uc          *AuthUC
	issuer      *jwtpkg.Issuer
	userRepo    *mocks.MockUserRepo
	sessionRepo *mocks.MockSessionRepo
	tokenRepo   *mocks.MockTokenRepo
	otpRepo     *mocks.MockOTPRepo
	mailGW      *mocks.MockMailGW
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller) *testEnv {
	t.Helper()

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "authcore-test",
			AccessExpiration:  15,
			RefreshExpiration: 450,
		},
		OTP: models.OTPConfig{
			ExpirySeconds:        180,
			CooldownSeconds:      60,
			MaxRequests:          3,
			RequestWindowSeconds: 600,
			MaxRetries:           3,
			BlockSeconds:         600,
			IPDailyLimit:         100,
			SignKeyTTLSeconds:    600,
		},
	}

	issuer, err := jwtpkg.NewIssuer(cfg.JWT)
	require.NoError(t, err)

	env := &testEnv{
		issuer:      issuer,
		userRepo:    mocks.NewMockUserRepo(ctrl),
		sessionRepo: mocks.NewMockSessionRepo(ctrl),
		tokenRepo:   mocks.NewMockTokenRepo(ctrl),
		otpRepo:     mocks.NewMockOTPRepo(ctrl),
		mailGW:      mocks.NewMockMailGW(ctrl),
	}
	env.uc = NewAuthUC(cfg, env.userRepo, env.sessionRepo, env.tokenRepo, env.otpRepo, env.mailGW, issuer)
	return env
}

func testUser(role string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "buyer@example.com",
		FullName: "Nguyen Van A",
		Phone:    "+84912345678",
		Role:     role,
		IsActive: true,
		IsVerify: true,
	}
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)

	var accessJTI, refreshJTI string
	var session *models.SessionDevice

	gomock.InOrder(
		env.tokenRepo.EXPECT().
			StoreTokenRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, jti string, record *models.TokenRecord, ttl time.Duration) error {
				accessJTI = jti
				assert.Equal(t, constants.TokenKindAccess, record.Type)
				assert.NotEmpty(t, record.Parent)
				assert.Equal(t, user.ID.String(), record.UserID)
				return nil
			}),
		env.tokenRepo.EXPECT().
			StoreTokenRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, jti string, record *models.TokenRecord, ttl time.Duration) error {
				refreshJTI = jti
				assert.Equal(t, constants.TokenKindRefresh, record.Type)
				assert.Empty(t, record.Parent)
				return nil
			}),
		env.sessionRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *models.SessionDevice) error {
				session = s
				return nil
			}),
	)

	// Act
	result, err := env.uc.Login(context.Background(), user, constants.PortalUser, "Mozilla/5.0", "iPhone 13")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, result.AccessToken, result.RefreshToken)
	assert.Equal(t, user.Email, result.User.Email)

	// The access record's parent must be the refresh jti, and the ledger row
	// must carry both identifiers.
	assert.Equal(t, accessJTI, session.JTI)
	assert.Equal(t, refreshJTI, session.JTIRefresh)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "iPhone 13", session.DeviceName)

	expMillis, err := strconv.ParseInt(session.Exp, 10, 64)
	require.NoError(t, err)
	assert.Greater(t, expMillis, time.Now().UnixMilli())
}

func TestLogin_AdminPortalRequiresAdminRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)

	// Act
	result, err := env.uc.Login(context.Background(), user, constants.PortalAdmin, "", "")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestLogin_AdminRejectedOnUserPortal(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	admin := testUser(constants.RoleAdmin)

	// Act
	result, err := env.uc.Login(context.Background(), admin, constants.PortalUser, "", "")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRefreshToken_Success_NoRotation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)
	jtiRF := uuid.New().String()

	refreshToken, refreshExp, err := env.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	require.NoError(t, err)

	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(&models.TokenRecord{
			Exp:    refreshExp,
			Type:   constants.TokenKindRefresh,
			UserID: user.ID.String(),
		}, nil)
	env.userRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID.String()).
		Return(user, nil)

	var newJTI string
	env.tokenRepo.EXPECT().
		StoreTokenRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, jti string, record *models.TokenRecord, ttl time.Duration) error {
			newJTI = jti
			assert.Equal(t, constants.TokenKindAccess, record.Type)
			assert.Equal(t, jtiRF, record.Parent)
			return nil
		})
	env.sessionRepo.EXPECT().
		UpdateAccessJTI(gomock.Any(), jtiRF, gomock.Any()).
		Return(nil)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, refreshToken, pair.RefreshToken, "refresh token must not rotate")
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, jtiRF, newJTI, "new access token must get a fresh jti")
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)

	accessToken, _, err := env.issuer.GenerateAccessToken(user, uuid.New().String())
	require.NoError(t, err)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), accessToken)

	// Assert
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshToken_GarbageToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), "not-a-token")

	// Assert
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshToken_LedgerFallback(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)
	jtiRF := uuid.New().String()

	refreshToken, refreshExp, err := env.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	require.NoError(t, err)

	// Fast store has evicted the record; the ledger row is still live.
	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(nil, nil)
	env.sessionRepo.EXPECT().
		GetSessionByRefreshJTI(gomock.Any(), jtiRF).
		Return(&models.SessionDevice{
			JTIRefresh: jtiRF,
			Exp:        strconv.FormatInt(refreshExp*1000, 10),
			UserID:     user.ID,
		}, nil)
	env.userRepo.EXPECT().
		GetUserByID(gomock.Any(), user.ID.String()).
		Return(user, nil)
	env.tokenRepo.EXPECT().
		StoreTokenRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	env.sessionRepo.EXPECT().
		UpdateAccessJTI(gomock.Any(), jtiRF, gomock.Any()).
		Return(nil)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, refreshToken, pair.RefreshToken)
}

func TestRefreshToken_RevokedLedgerRow(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)
	jtiRF := uuid.New().String()

	refreshToken, refreshExp, err := env.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	require.NoError(t, err)

	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(nil, nil)
	env.sessionRepo.EXPECT().
		GetSessionByRefreshJTI(gomock.Any(), jtiRF).
		Return(&models.SessionDevice{
			JTIRefresh: jtiRF,
			Exp:        strconv.FormatInt(refreshExp*1000, 10),
			Revoked:    true,
			UserID:     user.ID,
		}, nil)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestRefreshToken_ExpiredLedgerRow(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)
	jtiRF := uuid.New().String()

	refreshToken, _, err := env.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	require.NoError(t, err)

	pastMillis := time.Now().Add(-time.Hour).UnixMilli()

	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(nil, nil)
	env.sessionRepo.EXPECT().
		GetSessionByRefreshJTI(gomock.Any(), jtiRF).
		Return(&models.SessionDevice{
			JTIRefresh: jtiRF,
			Exp:        strconv.FormatInt(pastMillis, 10),
			UserID:     user.ID,
		}, nil)

	// Act
	pair, err := env.uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestIsTokenValid_LiveAccessWithLiveParent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	jti := uuid.New().String()
	jtiRF := uuid.New().String()
	userID := uuid.New().String()

	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jti).
		Return(&models.TokenRecord{Type: constants.TokenKindAccess, Parent: jtiRF, UserID: userID}, nil)
	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(&models.TokenRecord{Type: constants.TokenKindRefresh, UserID: userID}, nil)

	// Act & Assert
	assert.True(t, env.uc.IsTokenValid(context.Background(), jti))
}

func TestIsTokenValid_CascadeFromRevokedParent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	jti := uuid.New().String()
	jtiRF := uuid.New().String()

	// The access record is still present but its parent refresh record is
	// gone: revocation cascades to the child.
	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jti).
		Return(&models.TokenRecord{Type: constants.TokenKindAccess, Parent: jtiRF}, nil)
	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jtiRF).
		Return(nil, nil)

	// Act & Assert
	assert.False(t, env.uc.IsTokenValid(context.Background(), jti))
}

func TestIsTokenValid_MissingRecord(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	jti := uuid.New().String()

	env.tokenRepo.EXPECT().
		GetTokenRecord(gomock.Any(), jti).
		Return(nil, nil)

	// Act & Assert
	assert.False(t, env.uc.IsTokenValid(context.Background(), jti))
}

func TestLogout_RevokesSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	user := testUser(constants.RoleBuyer)
	jtiRF := uuid.New().String()

	refreshToken, _, err := env.issuer.GenerateRefreshToken(user.ID.String(), jtiRF)
	require.NoError(t, err)

	env.tokenRepo.EXPECT().
		DeleteTokenRecord(gomock.Any(), jtiRF).
		Return(nil)
	env.sessionRepo.EXPECT().
		RevokeSession(gomock.Any(), jtiRF).
		Return(nil)

	// Act
	env.uc.Logout(context.Background(), refreshToken)
}

func TestPruneSessions(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	env.sessionRepo.EXPECT().
		DeleteExpiredSessions(gomock.Any(), gomock.Any()).
		Return(int64(7), nil)

	// Act
	deleted, err := env.uc.PruneSessions(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestLogout_GarbageToken_NoOp(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	// Act: no expectations set, so any repo call would fail the test.
	env.uc.Logout(context.Background(), "")
	env.uc.Logout(context.Background(), "not-a-token")
}

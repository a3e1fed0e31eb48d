package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/constants"
	"github.com/vndocs/authcore/internal/pkg/logger"
	"github.com/vndocs/authcore/internal/pkg/models"
	"github.com/vndocs/authcore/internal/utils"
)

const bcryptCost = 10

// ValidateUser checks a plaintext secret against the stored hash. Every
// failure mode collapses to ErrInvalidCredential so callers cannot probe
// which check failed.
func (u *AuthUC) ValidateUser(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := u.userRepo.GetUserByEmailOrPhone(ctx, identifier)
	if err != nil {
		return nil, apperrors.ErrInvalidCredential
	}
	if !user.IsActive || user.Password == "" {
		return nil, apperrors.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredential
	}

	return user, nil
}

// RegisterInit creates an unverified account ahead of the OTP round-trip.
// The user becomes verified only after FinalizeRegister consumes a sign key.
func (u *AuthUC) RegisterInit(ctx context.Context, email, phone, fullName, password string) (*models.User, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, err.Error())
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := u.userRepo.GetUserByPhone(ctx, normalized); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		FullName: fullName,
		Phone:    normalized,
		Role:     constants.RoleBuyer,
		IsActive: true,
		IsVerify: false,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("registered unverified user",
		logger.String("user_id", user.ID.String()),
		logger.String("phone", utils.MaskPhone(normalized)))

	return user, nil
}

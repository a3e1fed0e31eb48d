package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vndocs/authcore/internal/pkg/apperrors"
	"github.com/vndocs/authcore/internal/pkg/models"
)

func setupSQLRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(id uuid.UUID, email, phone string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password", "full_name", "phone", "role",
		"is_active", "is_verify", "otp_code", "otp_exp", "otp_retry",
		"created_at", "updated_at",
	}).AddRow(
		id, email, "$2a$10$hash", "Nguyen Van A", phone, "buyer",
		true, true, nil, nil, 0,
		time.Now(), time.Now(),
	)
}

func TestGetUserByEmail(t *testing.T) {
	testCases := []struct {
		name       string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:  "Success",
			email: "buyer@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("buyer@example.com").
					WillReturnRows(userRows(userID, "buyer@example.com", "+84912345678"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "buyer@example.com", user.Email)
				assert.Equal(t, "+84912345678", user.Phone)
				assert.True(t, user.IsActive)
			},
		},
		{
			name:  "Not Found",
			email: "nobody@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("nobody@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
			},
		},
		{
			name:  "Database Error",
			email: "buyer@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("buyer@example.com").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, apperrors.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupSQLRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByEmail(context.Background(), tc.email)
			tc.assertFunc(t, user, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmailOrPhone(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery(`^SELECT (.+) FROM users WHERE email = \$1 OR phone = \$1`).
		WithArgs("+84912345678").
		WillReturnRows(userRows(userID, "buyer@example.com", "+84912345678"))

	user, err := repo.GetUserByEmailOrPhone(context.Background(), "+84912345678")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{
		Email:    "new@example.com",
		Password: "$2a$10$hash",
		FullName: "Tran Thi B",
		Phone:    "+84912345679",
		Role:     "buyer",
		IsActive: true,
	}
	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID, "CreateUser must assign an id")
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE users").
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), userID, "$2a$10$newhash")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkVerified(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE users").
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkVerified(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOTPState(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	expiresAt := time.Now().Add(3 * time.Minute)
	mock.ExpectExec("^UPDATE users").
		WithArgs("482910", expiresAt, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetOTPState(context.Background(), userID, "482910", expiresAt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearOTPState(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE users").
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearOTPState(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementOTPRetry(t *testing.T) {
	repo, mock, cleanup := setupSQLRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("^UPDATE users").
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"otp_retry"}).AddRow(2))

	retry, err := repo.IncrementOTPRetry(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 2, retry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dquintero/hr-records/internal/config"
	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/mock"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey  = "unit-test-sign-key"
	testIssuer   = "hr-records"
	testPassword = "correct horse battery staple"
)

// newTestAuthSvc builds an authService backed by a gomock UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUsers, config.Auth{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	return svc, mockUsers
}

// activeUser returns a stored account whose hash matches testPassword.
func activeUser(t *testing.T) models.User {
	t.Helper()
	hash, err := utils.HashPassword(testPassword, 0)
	require.NoError(t, err)
	return models.User{
		UserID:       7,
		Username:     "dquintero",
		PasswordHash: hash,
		Status:       models.StatusActive,
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := activeUser(t)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByUsername(ctx, "dquintero").Return(stored, nil),
		mockUsers.EXPECT().UpdateLastLogin(ctx, stored.UserID).Return(nil),
	)

	token, user, err := svc.Login(ctx, "dquintero", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, stored.UserID, user.UserID)
	assert.Equal(t, stored.Username, user.Username)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service layer")

	// the issued token must round-trip through the verifier
	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, parsed.UserID)
	assert.Equal(t, stored.Username, parsed.Username)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pass"},
		{name: "empty password", username: "dquintero", password: ""},
		{name: "both empty", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(ctx, "ghost", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// A storage outage must not masquerade as bad credentials.
func TestAuthService_Login_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "dquintero").
		Return(models.User{}, store.ErrExecutingQuery)

	_, _, err := svc.Login(ctx, "dquintero", testPassword)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "dquintero").
		Return(activeUser(t), nil)

	_, _, err := svc.Login(ctx, "dquintero", "not the password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown username and wrong password must be indistinguishable to a caller.
func TestAuthService_Login_FailureReasonsCollapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)
	_, _, unknownErr := svc.Login(ctx, "ghost", testPassword)

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "dquintero").
		Return(activeUser(t), nil)
	_, _, wrongPassErr := svc.Login(ctx, "dquintero", "wrong")

	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	inactive := activeUser(t)
	inactive.Status = models.StatusInactive

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "dquintero").
		Return(inactive, nil)

	_, _, err := svc.Login(ctx, "dquintero", testPassword)
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

// Password check must run before the status check: an inactive account with
// a wrong password still reports invalid credentials.
func TestAuthService_Login_InactiveAccountWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	inactive := activeUser(t)
	inactive.Status = models.StatusInactive

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "dquintero").
		Return(inactive, nil)

	_, _, err := svc.Login(ctx, "dquintero", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LastLoginFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := activeUser(t)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByUsername(ctx, "dquintero").Return(stored, nil),
		mockUsers.EXPECT().UpdateLastLogin(ctx, stored.UserID).Return(errors.New("connection reset")),
	)

	token, user, err := svc.Login(ctx, "dquintero", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, stored.UserID, user.UserID)
}

// ── VerifyToken ──────────────────────────────────────────────────────────────

func TestAuthService_VerifyToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := activeUser(t)

	issued, err := utils.GenerateJWTToken(testIssuer, stored.UserID, stored.Username, time.Hour, testSignKey)
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByID(ctx, stored.UserID).
		Return(stored, nil)

	token, err := svc.VerifyToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, token.UserID)
	assert.Equal(t, stored.Username, token.Username)
}

func TestAuthService_VerifyToken_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := activeUser(t)

	validToken, err := utils.GenerateJWTToken(testIssuer, stored.UserID, stored.Username, time.Hour, testSignKey)
	require.NoError(t, err)
	expiredToken, err := utils.GenerateJWTToken(testIssuer, stored.UserID, stored.Username, -time.Minute, testSignKey)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateJWTToken("some-other-service", stored.UserID, stored.Username, time.Hour, testSignKey)
	require.NoError(t, err)

	inactive := stored
	inactive.Status = models.StatusInactive

	tests := []struct {
		name        string
		tokenString string
		setup       func()
	}{
		{
			name:        "malformed token",
			tokenString: "not.a.jwt",
		},
		{
			name:        "expired token",
			tokenString: expiredToken.SignedString,
		},
		{
			name:        "wrong issuer",
			tokenString: foreignToken.SignedString,
		},
		{
			name:        "account removed after issue",
			tokenString: validToken.SignedString,
			setup: func() {
				mockUsers.EXPECT().
					FindUserByID(ctx, stored.UserID).
					Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name:        "account deactivated after issue",
			tokenString: validToken.SignedString,
			setup: func() {
				mockUsers.EXPECT().
					FindUserByID(ctx, stored.UserID).
					Return(inactive, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			_, err := svc.VerifyToken(ctx, tt.tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ── UserFromToken ────────────────────────────────────────────────────────────

func TestAuthService_UserFromToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := activeUser(t)

	issued, err := utils.GenerateJWTToken(testIssuer, stored.UserID, stored.Username, time.Hour, testSignKey)
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByID(ctx, stored.UserID).
		Return(stored, nil).
		Times(2)

	user, err := svc.UserFromToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
	assert.Equal(t, stored.Username, user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_UserFromToken_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.UserFromToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

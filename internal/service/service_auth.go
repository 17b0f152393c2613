package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dquintero/hr-records/internal/config"
	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password comparison.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing account.
//
// The flow is: look up the account by username, compare the supplied
// password against the stored bcrypt hash, require the account to be
// active, stamp last_login, and issue a signed token.
//
// The last_login update is best-effort: a persistence failure there is
// logged and the login still succeeds, since the write is advisory and no
// transaction spans the flow.
//
// Returns the token and the public view of the account, or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials for an unknown username or a wrong password;
//     the two are indistinguishable on purpose.
//   - ErrInactiveAccount if the account status forbids authentication.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Token{}, models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		return models.Token{}, models.User{}, fmt.Errorf("user lookup: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive() {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("inactive account attempted login")
		return models.Token{}, models.User{}, ErrInactiveAccount
	}

	// Best-effort: a failed last_login stamp must not abort the login.
	if err := a.userRepository.UpdateLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("failed to update last login")
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, foundUser.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token generation failed")
		return models.Token{}, models.User{}, ErrTokenCreationFailed
	}

	return token, foundUser.Public(), nil
}

// VerifyToken validates and parses a raw JWT string, then re-resolves the
// referenced account and requires it to still be active. The status
// re-check defends against tokens outliving an account deactivation.
//
// Any validation failure (expired, wrong issuer, malformed, forged,
// missing account, inactive account) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers cannot distinguish the root
// cause.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("token subject lookup failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !foundUser.IsActive() {
		log.Error().Int64("id", foundUser.UserID).Msg("token references an inactive account")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserFromToken is VerifyToken plus a re-fetch of the full public identity
// view of the account. It returns ErrTokenIsExpiredOrInvalid if either
// step fails.
func (a *authService) UserFromToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.VerifyToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("identity re-fetch failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return foundUser.Public(), nil
}

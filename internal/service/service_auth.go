package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// temporaryEmailSuffix is appended to the username of accounts that were
// created before an email was mandatory.
const temporaryEmailSuffix = "@temporary.com"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles registration, bcrypt credential verification and the session
// lifecycle. A session is a row in the sessions table; the JWT handed to the
// client only names it.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	validator         validators.Validator
	sessionIDs        idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session and its token remain valid.
	tokenDuration time.Duration

	bcryptCost int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		validator:         validator,
		sessionIDs:        utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		bcryptCost:        cfg.BcryptCost,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// Register creates a new account and logs it in.
//
// Username and email are trimmed before validation. Returns:
//   - *ValidationError for a blank username, an email without "@" or a
//     password shorter than 6 characters.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists (wrapped)
//     when either is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid registration data")
		return models.LoginResult{}, newValidationError(err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.LoginResult{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.LoginResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.openSession(ctx, user)
}

// Login authenticates by username or email (an identifier containing "@" is
// an email) and opens a new session.
//
// An unknown identifier and a wrong password both return
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	identifier, isEmail := req.Identifier()
	if identifier == "" {
		return models.LoginResult{}, &ValidationError{Field: "username", Message: "Username or email is required"}
	}
	if req.Password == "" {
		return models.LoginResult{}, &ValidationError{Field: "password", Message: "Password is required"}
	}

	var (
		user models.User
		err  error
	)
	if isEmail {
		user, err = a.userRepository.FindUserByEmail(ctx, identifier)
	} else {
		user, err = a.userRepository.FindUserByUsername(ctx, identifier)
	}
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug().Str("func", "*authService.Login").Str("identifier", identifier).Msg("unknown user")
		return models.LoginResult{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("user search failed")
		return models.LoginResult{}, fmt.Errorf("user search failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	return a.openSession(ctx, user)
}

// openSession persists a new session for user and signs a token naming it.
func (a *authService) openSession(ctx context.Context, user models.User) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	createdAt := a.now()
	session := models.Session{
		ID:        a.sessionIDs.Generate(),
		UserID:    user.UserID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, session.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.openSession").Msg("error generating token")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.openSession").Int64("user_id", user.UserID).Msg("error saving session")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return models.LoginResult{
		Token:     token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      user.Public(),
	}, nil
}

// Logout destroys the session named by token. Unparsable, expired and
// already destroyed tokens are ignored.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Logout").Msg("ignoring invalid token")
		return nil
	}

	if err = a.sessionRepository.DeleteSession(ctx, parsed.SessionID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// Authenticate returns the live session named by token. Expired sessions are
// deleted when found.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Session{}, ErrUnauthenticated
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("invalid token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenIsExpiredOrInvalid)
	}

	session, err := a.sessionRepository.FindSession(ctx, parsed.SessionID)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return models.Session{}, ErrUnauthenticated
	case err != nil:
		log.Err(err).Str("func", "*authService.Authenticate").Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != parsed.UserID {
		log.Warn().Str("func", "*authService.Authenticate").
			Int64("token_user_id", parsed.UserID).
			Int64("session_user_id", session.UserID).
			Msg("token subject does not match session owner")
		return models.Session{}, ErrUnauthenticated
	}

	if session.Expired(a.now()) {
		if err = a.sessionRepository.DeleteSession(ctx, session.ID); err != nil {
			log.Err(err).Str("func", "*authService.Authenticate").Msg("error deleting expired session")
		}
		return models.Session{}, ErrUnauthenticated
	}

	return session, nil
}

// CurrentUser returns the owner of the session named by token.
func (a *authService) CurrentUser(ctx context.Context, token string) (models.PublicUser, error) {
	session, err := a.Authenticate(ctx, token)
	if err != nil {
		return models.PublicUser{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.PublicUser{}, ErrUnauthenticated
	case err != nil:
		return models.PublicUser{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}

// BackfillMissingEmails gives every account without an email the address
// "<username>@temporary.com".
func (a *authService) BackfillMissingEmails(ctx context.Context) (int64, error) {
	updated, err := a.userRepository.BackfillMissingEmails(ctx, temporaryEmailSuffix)
	if err != nil {
		return 0, fmt.Errorf("error backfilling emails: %w", err)
	}

	return updated, nil
}

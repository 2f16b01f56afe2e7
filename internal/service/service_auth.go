package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/internal/validators"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService authenticates operators against a single bcrypt admin hash and
// issues JWTs whose subject names the operator. The subject is what audit
// entries and the manual-sync cooldown are keyed on.
type authService struct {
	// adminPasswordHash is the bcrypt hash every operator password is
	// checked against.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		validator:         validators.NewWhitelistValidator(),
		logger:            logger,
	}
}

// Login verifies req.Password and issues a token for req.Actor.
//
// Returns:
//   - ErrInvalidCredentials if the actor or password is missing or malformed.
//   - ErrAuthNotConfigured if no admin hash is configured.
//   - ErrWrongPassword if the password does not match.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) Login(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, mapValidationError(err)
	}
	if len(a.adminPasswordHash) == 0 {
		log.Error().Str("func", "authService.Login").Msg("admin password hash is not configured")
		return models.Token{}, ErrAuthNotConfigured
	}

	actor := strings.TrimSpace(req.Actor)
	if err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().Str("func", "authService.Login").Str("actor", actor).Msg("wrong password")
			return models.Token{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "authService.Login").Msg("admin password hash is unusable")
		return models.Token{}, fmt.Errorf("%w: %w", ErrAuthNotConfigured, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, actor, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("func", "authService.Login").Str("actor", actor).Msg("token issued")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

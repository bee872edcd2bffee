package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/logging"
	"github.com/obolotin/ledgerboard/internal/server/auth"
	"github.com/obolotin/ledgerboard/internal/server/config"
	"github.com/obolotin/ledgerboard/internal/server/models"
	"github.com/obolotin/ledgerboard/internal/server/repositories/repomanager"
)

// dummyHash is compared against when the email matches no user, so a missing
// account costs the same as a wrong password. The caller can never tell which
// of the two it was.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	provider   ConnProvider
	repos      repomanager.RepositoryManager
	logger     logging.Logger
	secretKey  []byte
	sessionTTL time.Duration
}

func NewAuthService(provider ConnProvider, repos repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		provider:   provider,
		repos:      repos,
		logger:     logger,
		secretKey:  []byte(cfg.SecretKey),
		sessionTTL: cfg.SessionTTL,
	}
}

// Verify checks an email/password pair against the store. It returns the full
// user record on a match and common.ErrorUnauthorized otherwise, without
// disclosing whether the email or the password was wrong. The plaintext
// password is never logged.
func (s *AuthService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	var user *models.User

	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		u, err := s.repos.Users(conn).GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a hash comparison so an unknown email takes as long as a
			// wrong password.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "email", email, "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch User.", common.ErrorDatabase)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// EstablishSession verifies the credentials and, on success, issues the signed
// session token carrying the user's identity.
func (s *AuthService) EstablishSession(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.Verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateSessionToken(user.ID, user.Email, s.secretKey, s.sessionTTL)
	if err != nil {
		s.logger.Error(ctx, "session token signing failed", "user_id", user.ID, "err", err)
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

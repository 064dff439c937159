// Package services contains server-side business logic. This file implements
// AuthService: super-admin credential checks and the optional bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/server/auth"
	"github.com/dmitrijs2005/storeadmin/internal/server/config"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies super-admin credentials. There is no session: every
// protected request pays for a lookup and a bcrypt comparison, unless token
// authentication is enabled and the caller presents a token.
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	tokenAuth             bool
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		tokenAuth:             cfg.TokenAuth,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// VerifyAdmin returns the identity of the active super-admin owning email
// if password matches its stored hash.
//
// Errors: common.ErrMissingCredentials, common.ErrAccountNotFound,
// common.ErrWrongPassword, or a wrapped common.ErrorInternal.
func (s *AuthService) VerifyAdmin(ctx context.Context, email, password string) (*models.AdminIdentity, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindActiveSuperAdmin(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, common.ErrWrongPassword
		}
		return nil, fmt.Errorf("%w: stored hash: %w", common.ErrorInternal, err)
	}

	return user.Identity(), nil
}

// TokenAuthEnabled reports whether bearer tokens are issued and accepted.
func (s *AuthService) TokenAuthEnabled() bool {
	return s.tokenAuth
}

// IssueToken signs a token for admin. It returns "" when token
// authentication is disabled.
func (s *AuthService) IssueToken(admin *models.AdminIdentity) (string, error) {
	if !s.tokenAuth {
		return "", nil
	}
	token, err := auth.GenerateToken(admin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// VerifyToken checks a bearer token. The account is not re-read, so a
// deactivated admin keeps access until the token expires.
func (s *AuthService) VerifyToken(token string) (*models.AdminIdentity, error) {
	if !s.tokenAuth {
		return nil, common.ErrInvalidToken
	}
	admin, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleSuperAdmin {
		return nil, common.ErrInvalidToken
	}
	return admin, nil
}

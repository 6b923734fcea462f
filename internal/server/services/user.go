// Package services contains server-side business logic. This file implements
// UserService, which handles registration and the session-token lifecycle:
// issuing tokens on login, revoking them on logout, and resolving a token
// back to its user. ResolveUser is the single authorization gate every other
// operation passes through.
package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivolkov/filecab/internal/common"
	"github.com/ivolkov/filecab/internal/dbx"
	"github.com/ivolkov/filecab/internal/server/auth"
	"github.com/ivolkov/filecab/internal/server/config"
	"github.com/ivolkov/filecab/internal/server/models"
	"github.com/ivolkov/filecab/internal/server/repositories/repomanager"
	"github.com/ivolkov/filecab/internal/server/repositories/sessions"
)

// sessionKeyPrefix namespaces token keys inside the session store.
const sessionKeyPrefix = "auth_"

func sessionKey(token string) string { return sessionKeyPrefix + token }

// UserService provides account and authentication operations.
type UserService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	sessions sessions.Repository
	hasher   auth.Hasher
	tokenTTL time.Duration
}

// NewUserService constructs a UserService using repositories, the session
// store, the injected password hash, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, s sessions.Repository, h auth.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:       db,
		repos:    m,
		sessions: s,
		hasher:   h,
		tokenTTL: cfg.SessionTTL,
	}
}

// Register creates a new user. The email must be unused; the uniqueness
// check and insert run in one transaction so two concurrent registrations
// cannot both succeed.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, common.ErrMissingEmail
	}
	if password == "" {
		return nil, common.ErrMissingPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return common.ErrAlreadyExist
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		created, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExist) {
			return nil, common.ErrAlreadyExist
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login decodes a basic-auth header, verifies the credentials, and issues a
// fresh opaque token stored with the configured TTL. Any malformed header or
// credential mismatch yields ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, authHeader string) (string, error) {
	email, password, ok := parseBasicCredentials(authHeader)
	if !ok {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token := uuid.NewString()
	if err := s.sessions.SetWithTTL(ctx, sessionKey(token), user.ID, s.tokenTTL); err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Logout revokes the session for token. A missing, expired, or unknown
// token yields ErrorUnauthorized; at most one session is removed.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrorUnauthorized
	}
	if _, err := s.sessions.Get(ctx, sessionKey(token)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}
	if err := s.sessions.Delete(ctx, sessionKey(token)); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// ResolveUser maps a token to its user. Fails with ErrorUnauthorized when
// the token is missing, the session is absent or expired, or the user record
// no longer exists.
func (s *UserService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	userID, err := s.sessions.Get(ctx, sessionKey(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	user, err := s.repos.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Count returns the number of registered users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repos.Users(s.db).Count(ctx)
}

// parseBasicCredentials decodes an "Authorization: Basic ..." header value
// into email and password.
func parseBasicCredentials(header string) (string, string, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	email, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", "", false
	}
	return email, password, true
}

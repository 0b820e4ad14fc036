// Package services contains the server-side business logic of SIGA.
// This file implements AuthService, the single credential verifier consumed
// by every transport adapter.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/cryptox"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// AuthService decides whether a claimed (username, password) pair is valid.
// It is stateless, performs a single read and a single hash comparison per
// call, and issues no session or token.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAuthService constructs an AuthService over an injected store handle.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager) *AuthService {
	return &AuthService{db: db, repomanager: m}
}

// Verify checks the credential and returns the sanitized identity on success.
//
// Failure modes:
//   - common.ErrorInvalidRequest: empty username or password; no store
//     lookup is attempted.
//   - common.ErrorInvalidCredentials: unknown username or wrong password.
//     The two cases are indistinguishable to the caller.
//   - common.ErrorStoreUnavailable: the store could not be reached or
//     returned an unexpected error (including caller timeouts). Never
//     reported as a credential rejection.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*models.Identity, error) {

	if username == "" || password == "" {
		return nil, common.ErrorInvalidRequest
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorStoreUnavailable
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return user.Identity(), nil
}

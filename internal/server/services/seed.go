package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/cryptox"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/users"
)

// Seed is one user record to provision.
type Seed struct {
	Username string
	Password string
	Role     string
	Name     string
}

// SeedService provisions user records with freshly hashed passwords. It is an
// operator-invoked administrative component, not part of the runtime path.
type SeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSeedService(db *sql.DB, m repomanager.RepositoryManager) *SeedService {
	return &SeedService{db: db, repomanager: m}
}

// EnsureUser creates the user if no record with that username exists. If one
// does, the existing record is returned unchanged: an existing password hash
// is never silently overwritten. The second return value reports whether a
// record was created.
func (s *SeedService) EnsureUser(ctx context.Context, seed Seed) (*models.User, bool, error) {

	if err := validateSeed(seed); err != nil {
		return nil, false, err
	}

	repo := s.repomanager.Users(s.db)

	existing, err := repo.GetByUsername(ctx, seed.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, false, common.ErrorStoreUnavailable
	}

	user, err := s.createUser(ctx, repo, seed)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// ResetUsers deletes every user record and inserts the given seeds fresh, all
// within one transaction. Old passwords stop verifying; the new ones take
// effect atomically.
func (s *SeedService) ResetUsers(ctx context.Context, seeds []Seed) error {

	for _, seed := range seeds {
		if err := validateSeed(seed); err != nil {
			return err
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}

		for _, seed := range seeds {
			if _, err := s.createUser(ctx, repo, seed); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *SeedService) createUser(ctx context.Context, repo users.Repository, seed Seed) (*models.User, error) {

	hash, err := cryptox.HashPassword(seed.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     seed.Username,
		PasswordHash: hash,
		Role:         seed.Role,
		Name:         seed.Name,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func validateSeed(seed Seed) error {
	if seed.Username == "" || seed.Password == "" || seed.Name == "" {
		return common.ErrorInvalidRequest
	}
	if seed.Role != models.RoleAdmin && seed.Role != models.RoleCoach {
		return common.ErrorInvalidRequest
	}
	return nil
}

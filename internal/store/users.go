package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/auth"
	"github.com/noteagent/noteagent/internal/models"
)

const minPasswordLength = 8

// DefaultWorkspaceName is given to the workspace created alongside every new
// account.
const DefaultWorkspaceName = "Default"

// Register creates a user plus their default workspace in one transaction.
func (s *Store) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	if email == "" {
		return nil, apperrors.InvalidInput("Email is required")
	}

	if len(password) < minPasswordLength {
		return nil, apperrors.InvalidInput("Password must be at least 8 characters")
	}

	var existing models.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, apperrors.Conflict("Email already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "checking existing user"))
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "hashing password"))
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		workspace := models.Workspace{
			OwnerID: user.ID,
			Name:    DefaultWorkspaceName,
		}

		return tx.Create(&workspace).Error
	})

	if err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "creating user"))
	}

	return &user, nil
}

// VerifyCredentials resolves a login to its user. Unknown email and wrong
// password return the identical error so callers cannot probe for accounts.
func (s *Store) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	var user models.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("Invalid email or password")
		}
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "fetching user"))
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	return &user, nil
}

// GetUser loads a user by ID, for resolving token subjects.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("User not found")
		}
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "fetching user"))
	}

	return &user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/dbx"
	"github.com/dmitrijs2005/storeadmin/internal/server/config"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordBytes = 72
)

// UserService lists and creates users on behalf of a verified admin.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{db: db, repomanager: m, bcryptCost: cfg.BcryptCost}
}

// ValidateNewUser checks a creation request before anything touches the
// database.
func ValidateNewUser(in models.NewUser) error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return common.ErrMissingUserFields
	}
	if len([]rune(in.Password)) < MinPasswordLength {
		return common.ErrPasswordTooShort
	}
	if len(in.Password) > MaxPasswordBytes {
		return common.ErrPasswordTooLong
	}
	if hasRole(in) && !in.Role.Valid() {
		return common.ErrInvalidRole
	}
	if in.StoreLimit != nil && *in.StoreLimit < 0 {
		return common.ErrInvalidStoreLimit
	}
	return nil
}

// hasRole reports whether in names a role. An empty role, like a zero
// store limit, means the default.
func hasRole(in models.NewUser) bool {
	return in.Role != nil && *in.Role != ""
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]models.UserView, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	result := make([]models.UserView, 0, len(users))
	for i := range users {
		result = append(result, users[i].View())
	}
	return result, nil
}

// Create validates in, hashes the password and inserts the user on behalf
// of createdBy. The email check and the insert share one transaction.
func (s *UserService) Create(ctx context.Context, createdBy string, in models.NewUser) (*models.CreatedUser, error) {
	if err := ValidateNewUser(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		StoreLimit:   models.DefaultStoreLimit,
		IsActive:     true,
		CreatedBy:    sql.NullString{String: createdBy, Valid: createdBy != ""},
	}
	if hasRole(in) {
		user.Role = *in.Role
	}
	if in.StoreLimit != nil && *in.StoreLimit > 0 {
		user.StoreLimit = *in.StoreLimit
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrEmailTaken
		}

		user, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return &models.CreatedUser{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		StoreLimit: user.StoreLimit,
	}, nil
}

// BootstrapSuperAdmin creates a super-admin, or promotes, re-activates and
// resets the password of the existing account with that email.
func (s *UserService) BootstrapSuperAdmin(ctx context.Context, name, email, password string) (*models.AdminIdentity, error) {
	if err := ValidateNewUser(models.NewUser{Name: name, Email: email, Password: password}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %w", common.ErrorInternal, err)
	}

	user, err := s.repomanager.Users(s.db).UpsertSuperAdmin(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		StoreLimit:   models.DefaultStoreLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return user.Identity(), nil
}

package users

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/server/models"
)

type Repository interface {
	FindActiveSuperAdmin(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpsertSuperAdmin(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	CountActive(ctx context.Context) (int64, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

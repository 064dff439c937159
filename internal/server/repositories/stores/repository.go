package stores

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/server/models"
)

type Repository interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountUpdatedSince(ctx context.Context, since time.Time) (int64, error)
	Platforms(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, limit int) ([]models.Store, error)
}

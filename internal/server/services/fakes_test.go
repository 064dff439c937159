package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storeadmin/internal/dbx"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
	storesrepo "github.com/dmitrijs2005/storeadmin/internal/server/repositories/stores"
	usersrepo "github.com/dmitrijs2005/storeadmin/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	mu sync.Mutex

	findOut *models.User
	findErr error

	exists    bool
	existsErr error

	created   *models.User
	createErr error

	upserted  *models.User
	upsertErr error

	listOut []models.User
	listErr error

	activeCount int64
	countErr    error

	names      map[string]string
	namesErr   error
	namesAsked []string
}

func (f *fakeUsersRepo) FindActiveSuperAdmin(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "new-id"
	u.CreatedAt = time.Now()
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) UpsertSuperAdmin(ctx context.Context, u *models.User) (*models.User, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	u.ID = "admin-id"
	u.Role = models.RoleSuperAdmin
	u.IsActive = true
	f.upserted = u
	return u, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) CountActive(ctx context.Context) (int64, error) {
	return f.activeCount, f.countErr
}

func (f *fakeUsersRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.namesAsked = append([]string(nil), ids...)
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	return f.names, nil
}

type fakeStoresRepo struct {
	total, today, active          int64
	totalErr, todayErr, activeErr error
	platforms                     []string
	platformsErr                  error
	recent                        []models.Store
	recentErr                     error
	todaySince, activeSince       time.Time
	recentLimit                   int
}

func (f *fakeStoresRepo) Count(ctx context.Context) (int64, error) {
	return f.total, f.totalErr
}

func (f *fakeStoresRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	f.todaySince = since
	return f.today, f.todayErr
}

func (f *fakeStoresRepo) CountUpdatedSince(ctx context.Context, since time.Time) (int64, error) {
	f.activeSince = since
	return f.active, f.activeErr
}

func (f *fakeStoresRepo) Platforms(ctx context.Context) ([]string, error) {
	return f.platforms, f.platformsErr
}

func (f *fakeStoresRepo) Recent(ctx context.Context, limit int) ([]models.Store, error) {
	f.recentLimit = limit
	return f.recent, f.recentErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeStoresRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Stores(db dbx.DBTX) storesrepo.Repository     { return m.s }

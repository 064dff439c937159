package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/server/activity"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storeadmin/internal/timex"
	"golang.org/x/sync/errgroup"
)

const (
	// RecentActivityLimit caps the activity feed.
	RecentActivityLimit = 10
	// ActiveStoreWindow is how recently a store must have been updated to
	// count as active.
	ActiveStoreWindow = 7 * 24 * time.Hour
)

// DashboardService aggregates the admin dashboard from the stores and
// users tables.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	formatter   *activity.Formatter
	location    *time.Location
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, f *activity.Formatter, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{db: db, repomanager: m, formatter: f, location: loc}
}

// Build computes the dashboard as of asOf. The six base queries run
// concurrently; the first failure cancels the rest and fails the whole
// build with a wrapped common.ErrorInternal.
func (s *DashboardService) Build(ctx context.Context, asOf time.Time) (*models.DashboardSummary, error) {
	todayStart := timex.StartOfDay(asOf, s.location)
	sevenDaysAgo := asOf.Add(-ActiveStoreWindow)

	storesRepo := s.repomanager.Stores(s.db)
	usersRepo := s.repomanager.Users(s.db)

	var (
		summary   models.Summary
		platforms []string
		recent    []models.Store
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.TotalStores, err = storesRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalUsers, err = usersRepo.CountActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TodayNewStores, err = storesRepo.CountCreatedSince(gctx, todayStart)
		return err
	})
	g.Go(func() (err error) {
		summary.ActiveStores, err = storesRepo.CountUpdatedSince(gctx, sevenDaysAgo)
		return err
	})
	g.Go(func() (err error) {
		platforms, err = storesRepo.Platforms(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = storesRepo.Recent(gctx, RecentActivityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	activities, err := s.recentActivities(ctx, recent, asOf)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		Summary:              summary,
		PlatformDistribution: PlatformDistribution(platforms),
		RecentActivities:     activities,
		Timestamp:            timex.ISOTime{Time: asOf},
	}, nil
}

func (s *DashboardService) recentActivities(ctx context.Context, recent []models.Store, now time.Time) ([]models.ActivityEntry, error) {
	result := make([]models.ActivityEntry, 0, len(recent))
	if len(recent) == 0 {
		return result, nil
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}

	var names map[string]string
	if ids := ownerIDs(recent); len(ids) > 0 {
		var err error
		names, err = s.repomanager.Users(s.db).NamesByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
	}

	for _, store := range recent {
		owner := ""
		if store.OwnerID.Valid {
			owner = names[store.OwnerID.String]
		}
		result = append(result, s.formatter.StoreCreated(store, owner, now))
	}

	return result, nil
}

// ownerIDs returns the distinct non-null owner ids in first-seen order.
func ownerIDs(stores []models.Store) []string {
	seen := make(map[string]struct{}, len(stores))
	ids := make([]string, 0, len(stores))
	for _, s := range stores {
		if !s.OwnerID.Valid {
			continue
		}
		if _, ok := seen[s.OwnerID.String]; ok {
			continue
		}
		seen[s.OwnerID.String] = struct{}{}
		ids = append(ids, s.OwnerID.String)
	}
	return ids
}

// PlatformDistribution tallies platforms and sorts them by count,
// descending. Equal counts keep the order in which platforms first appear.
func PlatformDistribution(platforms []string) []models.PlatformCount {
	index := make(map[string]int)
	result := make([]models.PlatformCount, 0)

	for _, p := range platforms {
		if i, ok := index[p]; ok {
			result[i].Count++
			continue
		}
		index[p] = len(result)
		result = append(result, models.PlatformCount{Platform: p, Count: 1})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

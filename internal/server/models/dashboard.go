// Package models holds the row and response types shared by repositories,
// services and the HTTP layer.
package models

import "github.com/dmitrijs2005/storeadmin/internal/timex"

type Summary struct {
	TotalStores    int64 `json:"total_stores"`
	TotalUsers     int64 `json:"total_users"`
	TodayNewStores int64 `json:"today_new_stores"`
	ActiveStores   int64 `json:"active_stores"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

// ActivityEntry is one line of the dashboard feed. Timestamp is unix
// milliseconds of the underlying event.
type ActivityEntry struct {
	Time      string `json:"time"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// DashboardSummary is computed per request and never stored.
type DashboardSummary struct {
	Summary              Summary         `json:"summary"`
	PlatformDistribution []PlatformCount `json:"platform_distribution"`
	RecentActivities     []ActivityEntry `json:"recent_activities"`
	Timestamp            timex.ISOTime   `json:"timestamp"`
}

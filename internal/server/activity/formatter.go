// Package activity turns store rows into the dashboard's human-readable
// activity feed.
package activity

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/server/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
)

type bucket int

const (
	bucketJustNow bucket = iota
	bucketMinutes
	bucketHours
	bucketYesterday
	bucketDayBefore
	bucketDays
)

// classify picks the label bucket for elapsed and the number shown in it.
//
// Days are whole 24h periods of elapsed time, not calendar days: 25h ago
// at 00:30 is "yesterday" even though it falls two dates back.
func classify(elapsed time.Duration) (bucket, int) {
	minutes := int(elapsed / time.Minute)
	hours := int(elapsed / time.Hour)
	days := int(elapsed / (24 * time.Hour))

	switch {
	case minutes < 1:
		return bucketJustNow, 0
	case minutes < 60:
		return bucketMinutes, minutes
	case hours < 24:
		return bucketHours, hours
	case days == 1:
		return bucketYesterday, 1
	case days == 2:
		return bucketDayBefore, 2
	default:
		return bucketDays, days
	}
}

type Formatter struct {
	catalog *i18n.Catalog
}

func NewFormatter(c *i18n.Catalog) *Formatter {
	return &Formatter{catalog: c}
}

// RelativeTime renders how long ago past was, seen from now. A past in the
// future reads as "just now".
func (f *Formatter) RelativeTime(past, now time.Time) string {
	b, n := classify(now.Sub(past))

	switch b {
	case bucketJustNow:
		return f.catalog.JustNow
	case bucketMinutes:
		return fmt.Sprintf(f.catalog.MinutesAgoFormat, n)
	case bucketHours:
		return fmt.Sprintf(f.catalog.HoursAgoFormat, n)
	case bucketYesterday:
		return f.catalog.Yesterday
	case bucketDayBefore:
		return f.catalog.DayBeforeYesterday
	default:
		return fmt.Sprintf(f.catalog.DaysAgoFormat, n)
	}
}

// StoreCreated builds the feed entry for a new store. An empty owner name
// is replaced by the catalog's placeholder.
func (f *Formatter) StoreCreated(s models.Store, owner string, now time.Time) models.ActivityEntry {
	if owner == "" {
		owner = f.catalog.UnknownOwner
	}
	return models.ActivityEntry{
		Time:      f.RelativeTime(s.CreatedAt, now),
		Content:   fmt.Sprintf(f.catalog.StoreCreatedFormat, owner, s.Platform, s.Name),
		Timestamp: s.CreatedAt.UnixMilli(),
	}
}

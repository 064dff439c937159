package models

import (
	"database/sql"
	"time"
)

// Store mirrors the columns of the stores table read by the dashboard.
type Store struct {
	ID        string
	Name      string
	Platform  string
	OwnerID   sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

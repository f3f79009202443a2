package domain

import "time"

const (
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncStatus is the sync ledger. One row per data domain and city,
// overwritten entirely on each sync run; no history is kept.
type SyncStatus struct {
	ID            int64     `db:"id"`
	Domain        string    `db:"domain"`
	City          string    `db:"city"`
	LastSyncAt    time.Time `db:"last_sync_at"`
	RecordsSynced int       `db:"records_synced"`
	Status        string    `db:"status"`
	ErrorMessage  *string   `db:"error_message"`
}

// SyncResult summarizes one sync invocation across the requested cities.
// Per-city failures are reported here, not as errors.
type SyncResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SyncedCities []string `json:"synced_cities"`
	TotalRecords int      `json:"total_records"`
}

// SyncEvent is published after each successfully synced city.
type SyncEvent struct {
	Domain        string    `json:"domain"`
	City          string    `json:"city"`
	RecordsSynced int       `json:"records_synced"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
)

type SyncStatusStore struct {
	db *sqlx.DB
}

func NewSyncStatusStore(db *sqlx.DB) *SyncStatusStore {
	return &SyncStatusStore{db: db}
}

// Upsert overwrites the ledger row for a domain/city pair. Every run
// replaces status, timestamp, count, and error message; only the latest
// state is kept. Each data domain keeps its own row per city.
func (s *SyncStatusStore) Upsert(ctx context.Context, status *domain.SyncStatus) error {
	query := `
		INSERT INTO sync_status (domain, city, last_sync_at, records_synced, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (domain, city) DO UPDATE SET
			last_sync_at = EXCLUDED.last_sync_at,
			records_synced = EXCLUDED.records_synced,
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message`

	_, err := s.db.ExecContext(ctx, query,
		status.Domain,
		status.City,
		status.LastSyncAt,
		status.RecordsSynced,
		status.Status,
		status.ErrorMessage,
	)
	return err
}

// List returns ledger rows for every domain, ordered by domain then city;
// a non-empty city filters to that city's rows.
func (s *SyncStatusStore) List(ctx context.Context, city string) ([]domain.SyncStatus, error) {
	statuses := []domain.SyncStatus{}

	if city != "" {
		err := s.db.SelectContext(ctx, &statuses,
			"SELECT * FROM sync_status WHERE city = $1 ORDER BY domain", city)
		return statuses, err
	}

	err := s.db.SelectContext(ctx, &statuses,
		"SELECT * FROM sync_status ORDER BY domain, city")
	return statuses, err
}

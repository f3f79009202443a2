package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
)

// ErrUnknownCity is returned when a requested city code is not in the
// source's supported set. The whole request is refused before any fetch.
var ErrUnknownCity = errors.New("unknown city code")

// SyncService runs the fetch-normalize-merge-upsert pipeline for one data
// domain. Cities are processed strictly one at a time; a failure in one
// city is recorded in the ledger and does not affect the others.
type SyncService[R Record] struct {
	source    Source[R]
	store     FacilityStore[R]
	status    SyncStatusStore
	publisher Publisher
	logger    *slog.Logger
}

func NewSyncService[R Record](
	source Source[R],
	store FacilityStore[R],
	status SyncStatusStore,
	publisher Publisher,
	logger *slog.Logger,
) *SyncService[R] {
	return &SyncService[R]{
		source:    source,
		store:     store,
		status:    status,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
	}
}

// Sync synchronizes the requested cities, or every supported city when
// none are given. Per-city outcomes land in the sync ledger; the returned
// result reports them as data. Only request validation and ledger
// bookkeeping failures surface as errors.
func (s *SyncService[R]) Sync(ctx context.Context, cities []string) (*domain.SyncResult, error) {
	if len(cities) == 0 {
		cities = s.source.Partitions()
	}

	supported := make(map[string]struct{}, len(s.source.Partitions()))
	for _, c := range s.source.Partitions() {
		supported[c] = struct{}{}
	}
	var invalid []string
	for _, c := range cities {
		if _, ok := supported[c]; !ok {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCity, invalid)
	}

	startTime := time.Now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"cities", len(cities),
	)

	result := &domain.SyncResult{}

	for _, city := range cities {
		synced, err := s.syncCity(ctx, city)
		if err != nil {
			s.logger.Error("city sync failed", "city", city, "error", err)
			if ledgerErr := s.recordFailure(ctx, city, synced, err); ledgerErr != nil {
				return result, fmt.Errorf("record sync status for %s: %w", city, ledgerErr)
			}
			continue
		}

		if ledgerErr := s.recordSuccess(ctx, city, synced); ledgerErr != nil {
			return result, fmt.Errorf("record sync status for %s: %w", city, ledgerErr)
		}

		result.SyncedCities = append(result.SyncedCities, city)
		result.TotalRecords += synced

		s.publish(ctx, city, synced)
	}

	result.Success = len(result.SyncedCities) > 0
	result.Message = fmt.Sprintf("Synced %d cities with %d total records",
		len(result.SyncedCities), result.TotalRecords)

	s.logger.Info("sync completed",
		"synced_cities", len(result.SyncedCities),
		"total_records", result.TotalRecords,
		"duration", time.Since(startTime),
	)

	return result, nil
}

// syncCity fetches and upserts one city. Each upsert is an independent
// single-statement commit, so records written before a failure stay
// persisted; the returned count covers them either way.
func (s *SyncService[R]) syncCity(ctx context.Context, city string) (int, error) {
	records, err := s.source.Fetch(ctx, city)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", city, err)
	}

	synced := 0
	for i := range records {
		if records[i].ExternalKey() == "" {
			// Known upstream data-quality gap, not a failure.
			continue
		}
		if err := s.store.Upsert(ctx, &records[i]); err != nil {
			return synced, fmt.Errorf("upsert %s: %w", records[i].ExternalKey(), err)
		}
		synced++
	}

	return synced, nil
}

func (s *SyncService[R]) recordSuccess(ctx context.Context, city string, synced int) error {
	return s.status.Upsert(ctx, &domain.SyncStatus{
		Domain:        s.source.ID(),
		City:          city,
		LastSyncAt:    time.Now().UTC(),
		RecordsSynced: synced,
		Status:        domain.SyncStatusSuccess,
	})
}

func (s *SyncService[R]) recordFailure(ctx context.Context, city string, synced int, cause error) error {
	msg := cause.Error()
	return s.status.Upsert(ctx, &domain.SyncStatus{
		Domain:        s.source.ID(),
		City:          city,
		LastSyncAt:    time.Now().UTC(),
		RecordsSynced: synced,
		Status:        domain.SyncStatusFailed,
		ErrorMessage:  &msg,
	})
}

func (s *SyncService[R]) publish(ctx context.Context, city string, synced int) {
	if s.publisher == nil {
		return
	}

	event := domain.SyncEvent{
		Domain:        s.source.ID(),
		City:          city,
		RecordsSynced: synced,
		Status:        domain.SyncStatusSuccess,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish sync event failed", "city", city, "error", err)
	}
}

// Status returns ledger rows, optionally filtered to one city.
func (s *SyncService[R]) Status(ctx context.Context, city string) ([]domain.SyncStatus, error) {
	return s.status.List(ctx, city)
}

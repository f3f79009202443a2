package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/geo"
)

// Record is a canonical facility record. The external key is the upstream
// identifier used as the upsert natural key; an empty key marks an
// upstream data-quality gap and the record is skipped.
type Record interface {
	ExternalKey() string
	Coordinates() (lat, lng float64, ok bool)
}

// Source fetches and merges upstream data for one city at a time.
type Source[R Record] interface {
	ID() string
	Name() string
	Partitions() []string
	Fetch(ctx context.Context, city string) ([]R, error)
}

// FacilityStore persists canonical records idempotently by external key.
type FacilityStore[R Record] interface {
	Upsert(ctx context.Context, rec *R) error
}

// BoundsStore loads facilities with known coordinates inside a
// bounding box.
type BoundsStore[R Record] interface {
	ListInBounds(ctx context.Context, b geo.Bounds) ([]R, error)
}

// SyncStatusStore maintains the sync ledger, one row per data domain
// and city.
type SyncStatusStore interface {
	Upsert(ctx context.Context, status *domain.SyncStatus) error
	List(ctx context.Context, city string) ([]domain.SyncStatus, error)
}

// Publisher emits an event for each synced city. May be nil-wired.
type Publisher interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Close() error
}

// Geocoder resolves a free-text address to coordinates. found is false
// when the provider has no match; only transport problems are errors.
type Geocoder interface {
	GeocodeAddress(ctx context.Context, address, city string) (lat, lng float64, found bool, err error)
}

// StationCoordinateStore backs the geocode backfill for charging stations
// that arrived from upstream without a position.
type StationCoordinateStore interface {
	ListMissingCoordinates(ctx context.Context, limit int) ([]domain.ChargingStation, error)
	UpdateCoordinates(ctx context.Context, stationID string, lat, lng float64) error
}

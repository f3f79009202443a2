package service

import (
	"context"
	"fmt"
	"log/slog"
)

// GeocodeResult summarizes one backfill pass.
type GeocodeResult struct {
	Processed int `json:"processed"`
	Geocoded  int `json:"geocoded"`
	Skipped   int `json:"skipped"`
}

// GeocodeService backfills coordinates for charging stations the upstream
// feed delivered without a position. Stations the provider cannot resolve,
// including transient provider failures, are skipped, not failed.
type GeocodeService struct {
	geocoder Geocoder
	store    StationCoordinateStore
	logger   *slog.Logger
}

func NewGeocodeService(geocoder Geocoder, store StationCoordinateStore, logger *slog.Logger) *GeocodeService {
	return &GeocodeService{
		geocoder: geocoder,
		store:    store,
		logger:   logger.With("component", "geocode_backfill"),
	}
}

// Backfill geocodes up to limit stations missing coordinates. Falls back
// to a name-plus-city query when the address is empty.
func (s *GeocodeService) Backfill(ctx context.Context, limit int) (*GeocodeResult, error) {
	stations, err := s.store.ListMissingCoordinates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list stations missing coordinates: %w", err)
	}

	result := &GeocodeResult{Processed: len(stations)}

	for _, station := range stations {
		query := station.Address
		if query == "" {
			query = station.Name
		}

		lat, lng, found, err := s.geocoder.GeocodeAddress(ctx, query, station.City)
		if err != nil {
			// One flaky provider call must not stop the rest of the pass.
			s.logger.Warn("geocode failed", "station_id", station.StationID, "error", err)
			result.Skipped++
			continue
		}
		if !found {
			result.Skipped++
			continue
		}

		if err := s.store.UpdateCoordinates(ctx, station.StationID, lat, lng); err != nil {
			return result, fmt.Errorf("update coordinates for %s: %w", station.StationID, err)
		}
		result.Geocoded++
	}

	s.logger.Info("geocode backfill completed",
		"processed", result.Processed,
		"geocoded", result.Geocoded,
		"skipped", result.Skipped,
	)

	return result, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cwcfrank/lifepic-backend/internal/geo"
)

// ErrInvalidCoordinates is returned for query points outside the valid
// latitude/longitude ranges.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Hit pairs a facility with its exact distance from the query point.
type Hit[R Record] struct {
	Record         R
	DistanceMeters float64
}

// NearbyService answers nearest-N-within-radius queries: a loose bounding
// box narrows the candidate set through an indexable range predicate, then
// exact great-circle distances filter, order, and truncate it.
type NearbyService[R Record] struct {
	store  BoundsStore[R]
	logger *slog.Logger
}

func NewNearbyService[R Record](store BoundsStore[R], logger *slog.Logger) *NearbyService[R] {
	return &NearbyService[R]{
		store:  store,
		logger: logger,
	}
}

// Nearby returns up to limit facilities within radiusMeters of (lat, lng),
// ascending by distance. Facilities without coordinates never match.
func (s *NearbyService[R]) Nearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]Hit[R], error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinates, lat, lng)
	}

	bounds := geo.BoundsAround(lat, lng, radiusMeters)

	candidates, err := s.store.ListInBounds(ctx, bounds)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	hits := make([]Hit[R], 0, len(candidates))
	for _, c := range candidates {
		cLat, cLng, ok := c.Coordinates()
		if !ok {
			continue
		}
		distance := geo.Haversine(lat, lng, cLat, cLng)
		if distance <= radiusMeters {
			hits = append(hits, Hit[R]{Record: c, DistanceMeters: distance})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].DistanceMeters < hits[j].DistanceMeters
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	s.logger.Debug("nearby query",
		"candidates", len(candidates),
		"hits", len(hits),
		"radius", radiusMeters,
	)

	return hits, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/geo"
)

// ErrNotFound is returned by single-row lookups with no matching row.
var ErrNotFound = errors.New("not found")

// ListFilter narrows facility list queries.
type ListFilter struct {
	City         string
	HasAvailable *bool
	Limit        int
	Offset       int
}

type ParkingLotStore struct {
	db *sqlx.DB
}

func NewParkingLotStore(db *sqlx.DB) *ParkingLotStore {
	return &ParkingLotStore{db: db}
}

// Upsert inserts or fully replaces a parking lot by park_id. Every mutable
// field is overwritten and updated_at refreshed; created_at stays.
func (s *ParkingLotStore) Upsert(ctx context.Context, lot *domain.ParkingLot) error {
	query := `
		INSERT INTO parking_lots (
			park_id, name, city, address, latitude, longitude,
			total_spaces, available_spaces, fare_description, parking_type,
			data_updated_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
		)
		ON CONFLICT (park_id) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			address = EXCLUDED.address,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			total_spaces = EXCLUDED.total_spaces,
			available_spaces = EXCLUDED.available_spaces,
			fare_description = EXCLUDED.fare_description,
			parking_type = EXCLUDED.parking_type,
			data_updated_at = EXCLUDED.data_updated_at,
			updated_at = NOW()`

	_, err := s.db.ExecContext(ctx, query,
		lot.ParkID,
		lot.Name,
		lot.City,
		lot.Address,
		lot.Latitude,
		lot.Longitude,
		lot.TotalSpaces,
		lot.AvailableSpaces,
		lot.FareDescription,
		lot.ParkingType,
		lot.DataUpdatedAt,
	)
	return err
}

func (s *ParkingLotStore) GetByParkID(ctx context.Context, parkID string) (*domain.ParkingLot, error) {
	var lot domain.ParkingLot
	err := s.db.GetContext(ctx, &lot,
		"SELECT * FROM parking_lots WHERE park_id = $1", parkID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

// List returns a filtered page of parking lots plus the unpaginated total.
func (s *ParkingLotStore) List(ctx context.Context, f ListFilter) ([]domain.ParkingLot, int, error) {
	where, args := buildFacilityFilter(f, "available_spaces")

	var total int
	if err := s.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM parking_lots"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM parking_lots" + where +
		" ORDER BY city, name LIMIT " + itoa(f.Limit) + " OFFSET " + itoa(f.Offset)

	lots := []domain.ParkingLot{}
	if err := s.db.SelectContext(ctx, &lots, query, args...); err != nil {
		return nil, 0, err
	}
	return lots, total, nil
}

// ListInBounds returns lots with known coordinates inside the box.
func (s *ParkingLotStore) ListInBounds(ctx context.Context, b geo.Bounds) ([]domain.ParkingLot, error) {
	query := `
		SELECT * FROM parking_lots
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
			AND latitude BETWEEN $1 AND $2
			AND longitude BETWEEN $3 AND $4`

	lots := []domain.ParkingLot{}
	err := s.db.SelectContext(ctx, &lots, query, b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	return lots, err
}

// buildFacilityFilter assembles the shared WHERE clause for list queries.
// availColumn names the domain's availability count column.
func buildFacilityFilter(f ListFilter, availColumn string) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.City != "" {
		args = append(args, f.City)
		clauses = append(clauses, "city = $"+itoa(len(args)))
	}
	if f.HasAvailable != nil {
		if *f.HasAvailable {
			clauses = append(clauses, availColumn+" > 0")
		} else {
			clauses = append(clauses, availColumn+" = 0")
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}

func itoa(i int) string {
	if i < 0 {
		return "0"
	}
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}

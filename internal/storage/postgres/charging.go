package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/geo"
)

type ChargingStationStore struct {
	db *sqlx.DB
}

func NewChargingStationStore(db *sqlx.DB) *ChargingStationStore {
	return &ChargingStationStore{db: db}
}

// Upsert inserts or fully replaces a charging station by station_id.
func (s *ChargingStationStore) Upsert(ctx context.Context, station *domain.ChargingStation) error {
	query := `
		INSERT INTO charging_stations (
			station_id, name, address, city, latitude, longitude,
			operator_name, phone, is_24h, business_hours,
			total_chargers, available_chargers, charger_types,
			fee_description, parking_fee, data_updated_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW()
		)
		ON CONFLICT (station_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			operator_name = EXCLUDED.operator_name,
			phone = EXCLUDED.phone,
			is_24h = EXCLUDED.is_24h,
			business_hours = EXCLUDED.business_hours,
			total_chargers = EXCLUDED.total_chargers,
			available_chargers = EXCLUDED.available_chargers,
			charger_types = EXCLUDED.charger_types,
			fee_description = EXCLUDED.fee_description,
			parking_fee = EXCLUDED.parking_fee,
			data_updated_at = EXCLUDED.data_updated_at,
			updated_at = NOW()`

	_, err := s.db.ExecContext(ctx, query,
		station.StationID,
		station.Name,
		station.Address,
		station.City,
		station.Latitude,
		station.Longitude,
		station.OperatorName,
		station.Phone,
		station.Is24H,
		station.BusinessHours,
		station.TotalChargers,
		station.AvailableChargers,
		station.ChargerTypes,
		station.FeeDescription,
		station.ParkingFee,
		station.DataUpdatedAt,
	)
	return err
}

func (s *ChargingStationStore) GetByStationID(ctx context.Context, stationID string) (*domain.ChargingStation, error) {
	var station domain.ChargingStation
	err := s.db.GetContext(ctx, &station,
		"SELECT * FROM charging_stations WHERE station_id = $1", stationID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (s *ChargingStationStore) List(ctx context.Context, f ListFilter) ([]domain.ChargingStation, int, error) {
	where, args := buildFacilityFilter(f, "available_chargers")

	var total int
	if err := s.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM charging_stations"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM charging_stations" + where +
		" ORDER BY name LIMIT " + itoa(f.Limit) + " OFFSET " + itoa(f.Offset)

	stations := []domain.ChargingStation{}
	if err := s.db.SelectContext(ctx, &stations, query, args...); err != nil {
		return nil, 0, err
	}
	return stations, total, nil
}

func (s *ChargingStationStore) ListInBounds(ctx context.Context, b geo.Bounds) ([]domain.ChargingStation, error) {
	query := `
		SELECT * FROM charging_stations
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
			AND latitude BETWEEN $1 AND $2
			AND longitude BETWEEN $3 AND $4`

	stations := []domain.ChargingStation{}
	err := s.db.SelectContext(ctx, &stations, query, b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	return stations, err
}

// ListMissingCoordinates returns stations the upstream feed delivered
// without a usable position, oldest first.
func (s *ChargingStationStore) ListMissingCoordinates(ctx context.Context, limit int) ([]domain.ChargingStation, error) {
	query := `
		SELECT * FROM charging_stations
		WHERE latitude IS NULL OR longitude IS NULL
		ORDER BY created_at
		LIMIT $1`

	stations := []domain.ChargingStation{}
	err := s.db.SelectContext(ctx, &stations, query, limit)
	return stations, err
}

func (s *ChargingStationStore) UpdateCoordinates(ctx context.Context, stationID string, lat, lng float64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE charging_stations
		 SET latitude = $2, longitude = $3, updated_at = NOW()
		 WHERE station_id = $1`,
		stationID, lat, lng,
	)
	return err
}

package domain

import "time"

// ParkingLot is an off-street car park as served by the TDX open-data API.
// ParkID is the upstream identifier and the only natural key: one row per
// ParkID, updated in place on every sync.
type ParkingLot struct {
	ID              int64      `db:"id" json:"id"`
	ParkID          string     `db:"park_id" json:"park_id"`
	Name            string     `db:"name" json:"name"`
	City            string     `db:"city" json:"city"`
	Address         string     `db:"address" json:"address"`
	Latitude        *float64   `db:"latitude" json:"latitude"`
	Longitude       *float64   `db:"longitude" json:"longitude"`
	TotalSpaces     *int       `db:"total_spaces" json:"total_spaces"`
	AvailableSpaces *int       `db:"available_spaces" json:"available_spaces"`
	FareDescription string     `db:"fare_description" json:"fare_description"`
	ParkingType     string     `db:"parking_type" json:"parking_type"`
	DataUpdatedAt   *time.Time `db:"data_updated_at" json:"data_updated_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

func (p ParkingLot) ExternalKey() string { return p.ParkID }

func (p ParkingLot) Coordinates() (lat, lng float64, ok bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

// ChargingStation is an EV charging station from the TDX EV dataset.
// StationID is the natural key.
type ChargingStation struct {
	ID                int64      `db:"id" json:"id"`
	StationID         string     `db:"station_id" json:"station_id"`
	Name              string     `db:"name" json:"name"`
	Address           string     `db:"address" json:"address"`
	City              string     `db:"city" json:"city"`
	Latitude          *float64   `db:"latitude" json:"latitude"`
	Longitude         *float64   `db:"longitude" json:"longitude"`
	OperatorName      *string    `db:"operator_name" json:"operator_name"`
	Phone             *string    `db:"phone" json:"phone"`
	Is24H             *bool      `db:"is_24h" json:"is_24h"`
	BusinessHours     *string    `db:"business_hours" json:"business_hours"`
	TotalChargers     *int       `db:"total_chargers" json:"total_chargers"`
	AvailableChargers *int       `db:"available_chargers" json:"available_chargers"`
	ChargerTypes      *string    `db:"charger_types" json:"charger_types"`
	FeeDescription    *string    `db:"fee_description" json:"fee_description"`
	ParkingFee        *string    `db:"parking_fee" json:"parking_fee"`
	DataUpdatedAt     *time.Time `db:"data_updated_at" json:"data_updated_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

func (c ChargingStation) ExternalKey() string { return c.StationID }

func (c ChargingStation) Coordinates() (lat, lng float64, ok bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return 0, 0, false
	}
	return *c.Latitude, *c.Longitude, true
}

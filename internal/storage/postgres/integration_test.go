//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/geo"
	"github.com/cwcfrank/lifepic-backend/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_parking_lots.up.sql"),
			filepath.Join(migrationsPath, "002_create_charging_stations.up.sql"),
			filepath.Join(migrationsPath, "003_create_sync_status.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM parking_lots")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM charging_stations")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_status")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestParkingLotStore_Upsert_Insert() {
	store := NewParkingLotStore(s.db)

	lot := &domain.ParkingLot{
		ParkID:          "TPE001",
		Name:            "Xinyi Underground",
		City:            "Taipei",
		Address:         "No. 1, Xinyi Rd.",
		Latitude:        utils.Ptr(25.0330),
		Longitude:       utils.Ptr(121.5654),
		TotalSpaces:     utils.Ptr(120),
		AvailableSpaces: utils.Ptr(45),
		FareDescription: "30/hr",
		ParkingType:     "OffStreet",
	}

	err := store.Upsert(s.ctx, lot)
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM parking_lots WHERE park_id = $1", "TPE001")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestParkingLotStore_Upsert_Idempotent() {
	store := NewParkingLotStore(s.db)

	lot := &domain.ParkingLot{
		ParkID:          "TPE001",
		Name:            "Xinyi Underground",
		City:            "Taipei",
		AvailableSpaces: utils.Ptr(5),
	}
	s.NoError(store.Upsert(s.ctx, lot))

	var createdAt, updatedAt time.Time
	row := s.db.QueryRowContext(s.ctx,
		"SELECT created_at, updated_at FROM parking_lots WHERE park_id = $1", "TPE001")
	s.NoError(row.Scan(&createdAt, &updatedAt))

	time.Sleep(50 * time.Millisecond)

	lot.AvailableSpaces = utils.Ptr(3)
	s.NoError(store.Upsert(s.ctx, lot))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM parking_lots"))
	s.Equal(1, count)

	stored, err := store.GetByParkID(s.ctx, "TPE001")
	s.NoError(err)
	s.Require().NotNil(stored.AvailableSpaces)
	s.Equal(3, *stored.AvailableSpaces)
	s.WithinDuration(createdAt, stored.CreatedAt, time.Millisecond)
	s.True(stored.UpdatedAt.After(updatedAt))
}

func (s *PostgresIntegrationSuite) TestParkingLotStore_GetByParkID_NotFound() {
	store := NewParkingLotStore(s.db)

	_, err := store.GetByParkID(s.ctx, "MISSING")
	s.ErrorIs(err, ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestParkingLotStore_List_Filters() {
	store := NewParkingLotStore(s.db)

	lots := []domain.ParkingLot{
		{ParkID: "TPE001", Name: "A", City: "Taipei", AvailableSpaces: utils.Ptr(10)},
		{ParkID: "TPE002", Name: "B", City: "Taipei", AvailableSpaces: utils.Ptr(0)},
		{ParkID: "TAO001", Name: "C", City: "Taoyuan", AvailableSpaces: utils.Ptr(5)},
	}
	for i := range lots {
		s.NoError(store.Upsert(s.ctx, &lots[i]))
	}

	got, total, err := store.List(s.ctx, ListFilter{City: "Taipei", Limit: 10})
	s.NoError(err)
	s.Equal(2, total)
	s.Len(got, 2)

	got, total, err = store.List(s.ctx, ListFilter{City: "Taipei", HasAvailable: utils.Ptr(true), Limit: 10})
	s.NoError(err)
	s.Equal(1, total)
	s.Equal("TPE001", got[0].ParkID)

	got, total, err = store.List(s.ctx, ListFilter{Limit: 2})
	s.NoError(err)
	s.Equal(3, total)
	s.Len(got, 2)
}

func (s *PostgresIntegrationSuite) TestParkingLotStore_ListInBounds() {
	store := NewParkingLotStore(s.db)

	lots := []domain.ParkingLot{
		{ParkID: "IN", Name: "Inside", City: "Taipei", Latitude: utils.Ptr(25.0335), Longitude: utils.Ptr(121.5650)},
		{ParkID: "OUT", Name: "Outside", City: "Taipei", Latitude: utils.Ptr(25.2000), Longitude: utils.Ptr(121.5650)},
		{ParkID: "NOPOS", Name: "No Position", City: "Taipei"},
	}
	for i := range lots {
		s.NoError(store.Upsert(s.ctx, &lots[i]))
	}

	got, err := store.ListInBounds(s.ctx, geo.BoundsAround(25.0330, 121.5654, 1000))
	s.NoError(err)
	s.Require().Len(got, 1)
	s.Equal("IN", got[0].ParkID)
}

func (s *PostgresIntegrationSuite) TestChargingStationStore_Upsert_RoundTrip() {
	store := NewChargingStationStore(s.db)

	station := &domain.ChargingStation{
		StationID:         "EV001",
		Name:              "City Hall Station",
		Address:           "No. 1, Shifu Rd.",
		City:              "Taipei",
		Latitude:          utils.Ptr(25.0375),
		Longitude:         utils.Ptr(121.5637),
		OperatorName:      utils.Ptr("Taipower"),
		Phone:             utils.Ptr("02-1234-5678"),
		Is24H:             utils.Ptr(true),
		TotalChargers:     utils.Ptr(4),
		AvailableChargers: utils.Ptr(2),
		ChargerTypes:      utils.Ptr("CCS2, CHAdeMO"),
		FeeDescription:    utils.Ptr("5/kWh"),
	}
	s.NoError(store.Upsert(s.ctx, station))

	stored, err := store.GetByStationID(s.ctx, "EV001")
	s.NoError(err)
	s.Equal("City Hall Station", stored.Name)
	s.Require().NotNil(stored.OperatorName)
	s.Equal("Taipower", *stored.OperatorName)
	s.Require().NotNil(stored.AvailableChargers)
	s.Equal(2, *stored.AvailableChargers)
	s.Require().NotNil(stored.Is24H)
	s.True(*stored.Is24H)
}

func (s *PostgresIntegrationSuite) TestChargingStationStore_ListMissingCoordinates() {
	store := NewChargingStationStore(s.db)

	stations := []domain.ChargingStation{
		{StationID: "EV001", Name: "Has Position", City: "Taipei", Latitude: utils.Ptr(25.0), Longitude: utils.Ptr(121.5)},
		{StationID: "EV002", Name: "No Position", City: "Taipei"},
		{StationID: "EV003", Name: "Half Position", City: "Taipei", Latitude: utils.Ptr(25.0)},
	}
	for i := range stations {
		s.NoError(store.Upsert(s.ctx, &stations[i]))
	}

	missing, err := store.ListMissingCoordinates(s.ctx, 10)
	s.NoError(err)
	s.Len(missing, 2)

	missing, err = store.ListMissingCoordinates(s.ctx, 1)
	s.NoError(err)
	s.Len(missing, 1)
}

func (s *PostgresIntegrationSuite) TestChargingStationStore_UpdateCoordinates() {
	store := NewChargingStationStore(s.db)

	station := &domain.ChargingStation{StationID: "EV002", Name: "No Position", City: "Taipei"}
	s.NoError(store.Upsert(s.ctx, station))

	s.NoError(store.UpdateCoordinates(s.ctx, "EV002", 25.0478, 121.5170))

	stored, err := store.GetByStationID(s.ctx, "EV002")
	s.NoError(err)
	s.Require().NotNil(stored.Latitude)
	s.Equal(25.0478, *stored.Latitude)
	s.Require().NotNil(stored.Longitude)
	s.Equal(121.5170, *stored.Longitude)

	missing, err := store.ListMissingCoordinates(s.ctx, 10)
	s.NoError(err)
	s.Empty(missing)
}

func (s *PostgresIntegrationSuite) TestSyncStatusStore_UpsertOverwrites() {
	store := NewSyncStatusStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
		Domain:        "parking",
		City:          "Taipei",
		LastSyncAt:    now.Add(-time.Hour),
		RecordsSynced: 100,
		Status:        domain.SyncStatusSuccess,
	}))

	s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
		Domain:        "parking",
		City:          "Taipei",
		LastSyncAt:    now,
		RecordsSynced: 7,
		Status:        domain.SyncStatusFailed,
		ErrorMessage:  utils.Ptr("upstream 500"),
	}))

	rows, err := store.List(s.ctx, "Taipei")
	s.NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(7, rows[0].RecordsSynced)
	s.Equal(domain.SyncStatusFailed, rows[0].Status)
	s.Require().NotNil(rows[0].ErrorMessage)
	s.Equal("upstream 500", *rows[0].ErrorMessage)
	s.WithinDuration(now, rows[0].LastSyncAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestSyncStatusStore_DomainsDoNotCollide() {
	store := NewSyncStatusStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
		Domain:        "parking",
		City:          "Taipei",
		LastSyncAt:    now,
		RecordsSynced: 50,
		Status:        domain.SyncStatusFailed,
		ErrorMessage:  utils.Ptr("upstream 500"),
	}))

	s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
		Domain:        "charging",
		City:          "Taipei",
		LastSyncAt:    now,
		RecordsSynced: 12,
		Status:        domain.SyncStatusSuccess,
	}))

	rows, err := store.List(s.ctx, "Taipei")
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("charging", rows[0].Domain)
	s.Equal(domain.SyncStatusSuccess, rows[0].Status)
	s.Equal("parking", rows[1].Domain)
	s.Equal(domain.SyncStatusFailed, rows[1].Status)
	s.Require().NotNil(rows[1].ErrorMessage)
	s.Equal("upstream 500", *rows[1].ErrorMessage)
}

func (s *PostgresIntegrationSuite) TestSyncStatusStore_ListOrdersByDomainThenCity() {
	store := NewSyncStatusStore(s.db)
	now := time.Now().UTC()

	for _, city := range []string{"Taoyuan", "Keelung", "Taipei"} {
		s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
			Domain:     "parking",
			City:       city,
			LastSyncAt: now,
			Status:     domain.SyncStatusSuccess,
		}))
	}
	s.NoError(store.Upsert(s.ctx, &domain.SyncStatus{
		Domain:     "charging",
		City:       "Taoyuan",
		LastSyncAt: now,
		Status:     domain.SyncStatusSuccess,
	}))

	rows, err := store.List(s.ctx, "")
	s.NoError(err)
	s.Require().Len(rows, 4)
	s.Equal("charging", rows[0].Domain)
	s.Equal("Keelung", rows[1].City)
	s.Equal("Taipei", rows[2].City)
	s.Equal("Taoyuan", rows[3].City)
}

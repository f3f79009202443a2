package tdx

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParkingSource(t *testing.T, carParks, availability string) *ParkingSource {
	t.Helper()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/CarPark/"):
			_, _ = w.Write([]byte(carParks))
		case strings.Contains(r.URL.Path, "/ParkingAvailability/"):
			_, _ = w.Write([]byte(availability))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return NewParkingSource(client, testLogger())
}

func TestParkingFetch_MergesAvailability(t *testing.T) {
	src := newParkingSource(t,
		`{"CarParks": [{
			"CarParkID": "TPE001",
			"CarParkName": {"Zh_tw": "信義停車場"},
			"Address": "No. 1, Xinyi Rd.",
			"FareDescription": {"Zh_tw": "30元/小時"},
			"TotalSpaces": 120,
			"CarParkPosition": {"PositionLat": 25.0330, "PositionLon": 121.5654}
		}]}`,
		`{"ParkingAvailabilities": [{
			"CarParkID": "TPE001",
			"AvailableSpaces": 45,
			"DataCollectTime": "2024-03-15T08:30:00+08:00"
		}]}`,
	)

	lots, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, lots, 1)

	lot := lots[0]
	assert.Equal(t, "TPE001", lot.ParkID)
	assert.Equal(t, "信義停車場", lot.Name)
	assert.Equal(t, "Taipei", lot.City)
	assert.Equal(t, "No. 1, Xinyi Rd.", lot.Address)
	assert.Equal(t, "30元/小時", lot.FareDescription)
	assert.Equal(t, "OffStreet", lot.ParkingType)
	require.NotNil(t, lot.TotalSpaces)
	assert.Equal(t, 120, *lot.TotalSpaces)
	require.NotNil(t, lot.AvailableSpaces)
	assert.Equal(t, 45, *lot.AvailableSpaces)
	require.NotNil(t, lot.Latitude)
	assert.Equal(t, 25.0330, *lot.Latitude)
	require.NotNil(t, lot.DataUpdatedAt)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), *lot.DataUpdatedAt)
}

func TestParkingFetch_NoAvailabilityMatchLeavesLotUntouched(t *testing.T) {
	src := newParkingSource(t,
		`{"CarParks": [{"CarParkID": "TPE001", "CarParkName": "Lot One"}]}`,
		`{"ParkingAvailabilities": [{"CarParkID": "OTHER", "AvailableSpaces": 9}]}`,
	)

	lots, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Nil(t, lots[0].AvailableSpaces)
	assert.Nil(t, lots[0].DataUpdatedAt)
}

func TestParkingFetch_MissingNameFallsBackToUnknown(t *testing.T) {
	src := newParkingSource(t,
		`{"CarParks": [{"CarParkID": "TPE002"}]}`,
		`[]`,
	)

	lots, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "Unknown", lots[0].Name)
	assert.Equal(t, "", lots[0].Address)
}

func TestParkingFetch_MissingPositionKeepsNilCoordinates(t *testing.T) {
	src := newParkingSource(t,
		`{"CarParks": [{"CarParkID": "TPE003", "CarParkName": "No Position"}]}`,
		`[]`,
	)

	lots, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Nil(t, lots[0].Latitude)
	assert.Nil(t, lots[0].Longitude)

	_, _, ok := lots[0].Coordinates()
	assert.False(t, ok)
}

func TestParkingFetch_ZeroAvailableSpacesIsPreserved(t *testing.T) {
	src := newParkingSource(t,
		`{"CarParks": [{"CarParkID": "TPE004", "CarParkName": "Full Lot"}]}`,
		`{"ParkingAvailabilities": [{"CarParkID": "TPE004", "AvailableSpaces": 0}]}`,
	)

	lots, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, lots, 1)
	require.NotNil(t, lots[0].AvailableSpaces)
	assert.Equal(t, 0, *lots[0].AvailableSpaces)
}

func TestParkingFetch_EmptyCity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	src := NewParkingSource(client, testLogger())

	lots, err := src.Fetch(context.Background(), "LienchiangCounty")

	require.NoError(t, err)
	assert.Empty(t, lots)
}

func TestParkingSource_PartitionsCoverSupportedCities(t *testing.T) {
	partitions := NewParkingSource(nil, testLogger()).Partitions()

	assert.Len(t, partitions, 22)
	assert.Contains(t, partitions, "Taipei")
	assert.Contains(t, partitions, "PenghuCounty")
}

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

func newChargingSource(t *testing.T, stations, statuses string) *ChargingSource {
	t.Helper()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/EV/Station/"):
			_, _ = w.Write([]byte(stations))
		case strings.Contains(r.URL.Path, "/EV/ConnectorLiveStatus/"):
			_, _ = w.Write([]byte(statuses))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return NewChargingSource(client, testLogger())
}

func TestChargingFetch_MergesConnectorStatus(t *testing.T) {
	src := newChargingSource(t,
		`{"Stations": [{
			"StationID": "EV001",
			"StationName": {"Zh_tw": "市府充電站"},
			"Address": "No. 1, Shifu Rd.",
			"OperatorName": {"Zh_tw": "台灣電力"},
			"Phone": "02-1234-5678",
			"Is24Hours": true,
			"ChargingFee": "5元/度",
			"Position": {"PositionLat": 25.0375, "PositionLon": 121.5637},
			"Connectors": [
				{"ConnectorType": "CCS2"},
				{"ConnectorType": "CHAdeMO"},
				{"ConnectorType": "CCS2"}
			]
		}]}`,
		`{"ConnectorLiveStatuses": [{
			"StationID": "EV001",
			"UpdateTime": "2024-03-15T08:30:00+08:00",
			"Connectors": [
				{"Status": "Available"},
				{"Status": "Charging"},
				{"Status": "Available"}
			]
		}]}`,
	)

	stations, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, stations, 1)

	st := stations[0]
	assert.Equal(t, "EV001", st.StationID)
	assert.Equal(t, "市府充電站", st.Name)
	require.NotNil(t, st.OperatorName)
	assert.Equal(t, "台灣電力", *st.OperatorName)
	require.NotNil(t, st.Phone)
	assert.Equal(t, "02-1234-5678", *st.Phone)
	require.NotNil(t, st.Is24H)
	assert.True(t, *st.Is24H)
	require.NotNil(t, st.FeeDescription)
	assert.Equal(t, "5元/度", *st.FeeDescription)

	require.NotNil(t, st.TotalChargers)
	assert.Equal(t, 3, *st.TotalChargers)
	require.NotNil(t, st.ChargerTypes)
	assert.Equal(t, "CCS2, CHAdeMO", *st.ChargerTypes)

	require.NotNil(t, st.AvailableChargers)
	assert.Equal(t, 2, *st.AvailableChargers)
	require.NotNil(t, st.DataUpdatedAt)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), *st.DataUpdatedAt)
}

func TestChargingFetch_OnlyAvailableCounts(t *testing.T) {
	src := newChargingSource(t,
		`{"Stations": [{"StationID": "EV002", "StationName": "S", "Connectors": [{"ConnectorType": "Type2"}]}]}`,
		`{"ConnectorLiveStatuses": [{
			"StationID": "EV002",
			"Connectors": [
				{"Status": "Charging"},
				{"Status": "OutOfService"},
				{"Status": "available"}
			]
		}]}`,
	)

	stations, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, stations, 1)
	// The status match is case-sensitive; "available" does not count.
	require.NotNil(t, stations[0].AvailableChargers)
	assert.Equal(t, 0, *stations[0].AvailableChargers)
}

func TestChargingFetch_NoStatusMatchKeepsNilAvailability(t *testing.T) {
	src := newChargingSource(t,
		`{"Stations": [{"StationID": "EV003", "StationName": "S"}]}`,
		`[]`,
	)

	stations, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Nil(t, stations[0].AvailableChargers)
	assert.Nil(t, stations[0].DataUpdatedAt)
}

func TestChargingFetch_EmptyOptionalFieldsStayNil(t *testing.T) {
	src := newChargingSource(t,
		`{"Stations": [{"StationID": "EV004"}]}`,
		`[]`,
	)

	stations, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, stations, 1)

	st := stations[0]
	assert.Equal(t, "Unknown", st.Name)
	assert.Nil(t, st.OperatorName)
	assert.Nil(t, st.Phone)
	assert.Nil(t, st.FeeDescription)
	assert.Nil(t, st.ParkingFee)
	assert.Nil(t, st.TotalChargers)
	assert.Nil(t, st.ChargerTypes)
	assert.Nil(t, st.Latitude)
	assert.Nil(t, st.Longitude)
}

func TestChargingFetch_AlternateWrapperKey(t *testing.T) {
	src := newChargingSource(t,
		`{"EVStations": [{"StationID": "EV005", "StationName": "Wrapped"}]}`,
		`[]`,
	)

	stations, err := src.Fetch(context.Background(), "Taipei")

	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "EV005", stations[0].StationID)
}

func TestConnectorTypeLabel(t *testing.T) {
	tests := []struct {
		name       string
		connectors []connector
		want       string
	}{
		{"empty", nil, ""},
		{"single", []connector{{ConnectorType: "CCS2"}}, "CCS2"},
		{
			"deduplicated first-seen order",
			[]connector{{ConnectorType: "CHAdeMO"}, {ConnectorType: "CCS2"}, {ConnectorType: "CHAdeMO"}},
			"CHAdeMO, CCS2",
		},
		{
			"blank types skipped",
			[]connector{{ConnectorType: ""}, {ConnectorType: "Type2"}},
			"Type2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connectorTypeLabel(tt.connectors))
		})
	}
}

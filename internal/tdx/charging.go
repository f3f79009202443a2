package tdx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
)

const (
	ChargingSourceID   = "charging"
	ChargingSourceName = "TDX EV Charging Stations"

	// connectorAvailable is the TDX live-status sentinel for a free connector.
	connectorAvailable = "Available"
)

type evStation struct {
	StationID    string      `json:"StationID"`
	StationName  Text        `json:"StationName"`
	Address      Text        `json:"Address"`
	OperatorName Text        `json:"OperatorName"`
	Phone        *string     `json:"Phone"`
	Is24Hours    *bool       `json:"Is24Hours"`
	ServiceTime  *string     `json:"ServiceTime"`
	ChargingFee  Text        `json:"ChargingFee"`
	ParkingFee   Text        `json:"ParkingFee"`
	Position     *Point      `json:"Position"`
	Connectors   []connector `json:"Connectors"`
}

type connector struct {
	ConnectorType string `json:"ConnectorType"`
}

type connectorLiveStatus struct {
	StationID     string            `json:"StationID"`
	UpdateTime    string            `json:"UpdateTime"`
	SrcUpdateTime string            `json:"SrcUpdateTime"`
	Connectors    []connectorStatus `json:"Connectors"`
}

type connectorStatus struct {
	Status string `json:"Status"`
}

// ChargingSource fetches EV charging stations and their connector live
// status for one city, returning merged canonical records.
type ChargingSource struct {
	client *Client
	logger *slog.Logger
}

func NewChargingSource(client *Client, logger *slog.Logger) *ChargingSource {
	return &ChargingSource{
		client: client,
		logger: logger.With("source", ChargingSourceID),
	}
}

func (s *ChargingSource) ID() string   { return ChargingSourceID }
func (s *ChargingSource) Name() string { return ChargingSourceName }

func (s *ChargingSource) Partitions() []string { return domain.CityCodes() }

func (s *ChargingSource) Fetch(ctx context.Context, city string) ([]domain.ChargingStation, error) {
	rawStations, err := s.client.GetList(ctx,
		"/v1/EV/Station/City/"+city,
		"Stations", "EVStations", "ChargingStations",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch charging stations: %w", err)
	}

	rawStatuses, err := s.client.GetList(ctx,
		"/v1/EV/ConnectorLiveStatus/City/"+city,
		"ConnectorLiveStatuses", "Statuses",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch connector status: %w", err)
	}

	statusByID := make(map[string]connectorLiveStatus, len(rawStatuses))
	for _, raw := range rawStatuses {
		var st connectorLiveStatus
		if err := json.Unmarshal(raw, &st); err != nil {
			s.logger.Warn("skipping malformed connector status", "error", err)
			continue
		}
		if st.StationID != "" {
			statusByID[st.StationID] = st
		}
	}

	stations := make([]domain.ChargingStation, 0, len(rawStations))
	for _, raw := range rawStations {
		var ev evStation
		if err := json.Unmarshal(raw, &ev); err != nil {
			s.logger.Warn("skipping malformed station record", "error", err)
			continue
		}
		stations = append(stations, s.merge(s.normalize(ev, city), statusByID))
	}

	s.logger.Debug("fetched charging stations",
		"city", city,
		"stations", len(stations),
		"statuses", len(statusByID),
	)

	return stations, nil
}

func (s *ChargingSource) normalize(ev evStation, city string) domain.ChargingStation {
	station := domain.ChargingStation{
		StationID:     ev.StationID,
		Name:          ev.StationName.Or("Unknown"),
		City:          city,
		Address:       ev.Address.Or(""),
		Phone:         ev.Phone,
		Is24H:         ev.Is24Hours,
		BusinessHours: ev.ServiceTime,
	}

	if op := ev.OperatorName.Or(""); op != "" {
		station.OperatorName = &op
	}
	if fee := ev.ChargingFee.Or(""); fee != "" {
		station.FeeDescription = &fee
	}
	if fee := ev.ParkingFee.Or(""); fee != "" {
		station.ParkingFee = &fee
	}

	if pos := ev.Position; pos != nil {
		station.Latitude = pos.PositionLat
		station.Longitude = pos.PositionLon
	}

	if total := len(ev.Connectors); total > 0 {
		station.TotalChargers = &total
		if types := connectorTypeLabel(ev.Connectors); types != "" {
			station.ChargerTypes = &types
		}
	}

	return station
}

// connectorTypeLabel flattens the connector sub-list into a de-duplicated,
// comma-joined label, keeping first-seen order.
func connectorTypeLabel(connectors []connector) string {
	seen := make(map[string]struct{}, len(connectors))
	var types []string
	for _, c := range connectors {
		if c.ConnectorType == "" {
			continue
		}
		if _, dup := seen[c.ConnectorType]; dup {
			continue
		}
		seen[c.ConnectorType] = struct{}{}
		types = append(types, c.ConnectorType)
	}
	return strings.Join(types, ", ")
}

func (s *ChargingSource) merge(station domain.ChargingStation, statusByID map[string]connectorLiveStatus) domain.ChargingStation {
	st, ok := statusByID[station.StationID]
	if !ok {
		return station
	}

	available := 0
	for _, c := range st.Connectors {
		if c.Status == connectorAvailable {
			available++
		}
	}
	station.AvailableChargers = &available

	if ts := firstTimestamp(st.UpdateTime, st.SrcUpdateTime); ts != nil {
		station.DataUpdatedAt = ts
	}

	return station
}

package tdx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
)

const (
	ParkingSourceID   = "parking"
	ParkingSourceName = "TDX Off-Street Parking"
)

type carPark struct {
	CarParkID       string `json:"CarParkID"`
	CarParkName     Text   `json:"CarParkName"`
	Address         Text   `json:"Address"`
	FareDescription Text   `json:"FareDescription"`
	TotalSpaces     *int   `json:"TotalSpaces"`
	CarParkPosition *Point `json:"CarParkPosition"`
}

type parkingAvailability struct {
	CarParkID       string `json:"CarParkID"`
	AvailableSpaces *int   `json:"AvailableSpaces"`
	DataCollectTime string `json:"DataCollectTime"`
	SrcUpdateTime   string `json:"SrcUpdateTime"`
}

// ParkingSource fetches off-street car parks and their live availability
// for one city, returning merged canonical records.
type ParkingSource struct {
	client *Client
	logger *slog.Logger
}

func NewParkingSource(client *Client, logger *slog.Logger) *ParkingSource {
	return &ParkingSource{
		client: client,
		logger: logger.With("source", ParkingSourceID),
	}
}

func (s *ParkingSource) ID() string   { return ParkingSourceID }
func (s *ParkingSource) Name() string { return ParkingSourceName }

func (s *ParkingSource) Partitions() []string { return domain.CityCodes() }

// Fetch retrieves the static car-park list and the live availability list
// for city, normalizes the raw records, and overlays availability by
// CarParkID.
func (s *ParkingSource) Fetch(ctx context.Context, city string) ([]domain.ParkingLot, error) {
	rawLots, err := s.client.GetList(ctx,
		"/v1/Parking/OffStreet/CarPark/City/"+city,
		"CarParks",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch car parks: %w", err)
	}

	rawAvail, err := s.client.GetList(ctx,
		"/v1/Parking/OffStreet/ParkingAvailability/City/"+city,
		"ParkingAvailabilities",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch parking availability: %w", err)
	}

	availByID := make(map[string]parkingAvailability, len(rawAvail))
	for _, raw := range rawAvail {
		var a parkingAvailability
		if err := json.Unmarshal(raw, &a); err != nil {
			s.logger.Warn("skipping malformed availability record", "error", err)
			continue
		}
		if a.CarParkID != "" {
			availByID[a.CarParkID] = a
		}
	}

	lots := make([]domain.ParkingLot, 0, len(rawLots))
	for _, raw := range rawLots {
		var cp carPark
		if err := json.Unmarshal(raw, &cp); err != nil {
			s.logger.Warn("skipping malformed car park record", "error", err)
			continue
		}
		lots = append(lots, s.merge(s.normalize(cp, city), availByID))
	}

	s.logger.Debug("fetched parking lots",
		"city", city,
		"lots", len(lots),
		"availability", len(availByID),
	)

	return lots, nil
}

func (s *ParkingSource) normalize(cp carPark, city string) domain.ParkingLot {
	lot := domain.ParkingLot{
		ParkID:          cp.CarParkID,
		Name:            cp.CarParkName.Or("Unknown"),
		City:            city,
		Address:         cp.Address.Or(""),
		TotalSpaces:     cp.TotalSpaces,
		FareDescription: cp.FareDescription.Or(""),
		ParkingType:     "OffStreet",
	}

	if pos := cp.CarParkPosition; pos != nil {
		lot.Latitude = pos.PositionLat
		lot.Longitude = pos.PositionLon
	}

	return lot
}

func (s *ParkingSource) merge(lot domain.ParkingLot, availByID map[string]parkingAvailability) domain.ParkingLot {
	avail, ok := availByID[lot.ParkID]
	if !ok {
		return lot
	}

	lot.AvailableSpaces = avail.AvailableSpaces
	if ts := firstTimestamp(avail.DataCollectTime, avail.SrcUpdateTime); ts != nil {
		lot.DataUpdatedAt = ts
	}

	return lot
}

package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/service"
	"github.com/cwcfrank/lifepic-backend/internal/storage/postgres"
)

type listResponse[T any] struct {
	Total  int `json:"total"`
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type nearbyResponse[T any] struct {
	Items     []T     `json:"items"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Radius    int     `json:"radius"`
}

type nearbyParkingItem struct {
	domain.ParkingLot
	DistanceMeters float64 `json:"distance_meters"`
}

type nearbyChargingItem struct {
	domain.ChargingStation
	DistanceMeters float64 `json:"distance_meters"`
}

type syncStatusItem struct {
	Domain        string    `json:"domain"`
	City          string    `json:"city"`
	LastSyncAt    time.Time `json:"last_sync_at"`
	RecordsSynced int       `json:"records_synced"`
	Status        string    `json:"status"`
	ErrorMessage  *string   `json:"error_message"`
}

// nearbyParams parses the shared lat/lng/radius/limit query contract.
func nearbyParams(r *http.Request) (lat, lng float64, radius, limit int, ok bool) {
	lat, ok = queryFloat(r, "lat")
	if !ok {
		return 0, 0, 0, 0, false
	}
	lng, ok = queryFloat(r, "lng")
	if !ok {
		return 0, 0, 0, 0, false
	}
	radius, ok = queryInt(r, "radius", 1000, 100, 10000)
	if !ok {
		return 0, 0, 0, 0, false
	}
	limit, ok = queryInt(r, "limit", 20, 1, 100)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return lat, lng, radius, limit, true
}

func listFilter(r *http.Request) (postgres.ListFilter, bool) {
	limit, ok := queryInt(r, "limit", 50, 1, 200)
	if !ok {
		return postgres.ListFilter{}, false
	}
	offset, ok := queryInt(r, "offset", 0, 0, math.MaxInt32)
	if !ok {
		return postgres.ListFilter{}, false
	}

	f := postgres.ListFilter{
		City:   r.URL.Query().Get("city"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := r.URL.Query().Get("has_available"); raw != "" {
		hasAvailable := raw == "true"
		f.HasAvailable = &hasAvailable
	}
	return f, true
}

func (s *Server) handleListCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.City{"cities": domain.SupportedCities})
}

func (s *Server) handleListParking(w http.ResponseWriter, r *http.Request) {
	f, ok := listFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	lots, total, err := s.parking.List(r.Context(), f)
	if err != nil {
		s.logger.Error("list parking lots", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.ParkingLot]{
		Total:  total,
		Items:  lots,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func (s *Server) handleGetParking(w http.ResponseWriter, r *http.Request) {
	lot, err := s.parking.GetByParkID(r.Context(), chi.URLParam(r, "parkID"))
	if errors.Is(err, postgres.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Parking lot not found")
		return
	}
	if err != nil {
		s.logger.Error("get parking lot", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, lot)
}

func (s *Server) handleNearbyParking(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, limit, ok := nearbyParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	hits, err := s.parkingNearby.Nearby(r.Context(), lat, lng, float64(radius), limit)
	if errors.Is(err, service.ErrInvalidCoordinates) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("nearby parking", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]nearbyParkingItem, len(hits))
	for i, h := range hits {
		items[i] = nearbyParkingItem{
			ParkingLot:     h.Record,
			DistanceMeters: roundDistance(h.DistanceMeters),
		}
	}
	writeJSON(w, http.StatusOK, nearbyResponse[nearbyParkingItem]{
		Items:     items,
		CenterLat: lat,
		CenterLng: lng,
		Radius:    radius,
	})
}

func (s *Server) handleListCharging(w http.ResponseWriter, r *http.Request) {
	f, ok := listFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	stations, total, err := s.charging.List(r.Context(), f)
	if err != nil {
		s.logger.Error("list charging stations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.ChargingStation]{
		Total:  total,
		Items:  stations,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func (s *Server) handleGetCharging(w http.ResponseWriter, r *http.Request) {
	station, err := s.charging.GetByStationID(r.Context(), chi.URLParam(r, "stationID"))
	if errors.Is(err, postgres.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Charging station not found")
		return
	}
	if err != nil {
		s.logger.Error("get charging station", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

func (s *Server) handleNearbyCharging(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, limit, ok := nearbyParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	hits, err := s.chargingNearby.Nearby(r.Context(), lat, lng, float64(radius), limit)
	if errors.Is(err, service.ErrInvalidCoordinates) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("nearby charging", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]nearbyChargingItem, len(hits))
	for i, h := range hits {
		items[i] = nearbyChargingItem{
			ChargingStation: h.Record,
			DistanceMeters:  roundDistance(h.DistanceMeters),
		}
	}
	writeJSON(w, http.StatusOK, nearbyResponse[nearbyChargingItem]{
		Items:     items,
		CenterLat: lat,
		CenterLng: lng,
		Radius:    radius,
	})
}

func (s *Server) handleTriggerParkingSync(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cities []string `json:"cities"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := s.parkingSync.Sync(r.Context(), req.Cities)
	if errors.Is(err, service.ErrUnknownCity) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("parking sync", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTriggerChargingSync(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cities []string `json:"cities"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := s.chargingSync.Sync(r.Context(), req.Cities)
	if errors.Is(err, service.ErrUnknownCity) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("charging sync", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.parkingSync.Status(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		s.logger.Error("sync status", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]syncStatusItem, len(statuses))
	for i, st := range statuses {
		items[i] = syncStatusItem{
			Domain:        st.Domain,
			City:          st.City,
			LastSyncAt:    st.LastSyncAt,
			RecordsSynced: st.RecordsSynced,
			Status:        st.Status,
			ErrorMessage:  st.ErrorMessage,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGeocodeBackfill(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 50, 1, 500)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	result, err := s.geocode.Backfill(r.Context(), limit)
	if err != nil {
		s.logger.Error("geocode backfill", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// roundDistance keeps the wire format at centimeter precision.
func roundDistance(meters float64) float64 {
	return math.Round(meters*100) / 100
}

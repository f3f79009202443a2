// Package server exposes the read API and the sync trigger surface over
// HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/service"
	"github.com/cwcfrank/lifepic-backend/internal/storage/postgres"
)

// ParkingReader is the read side of the parking store used by handlers.
type ParkingReader interface {
	List(ctx context.Context, f postgres.ListFilter) ([]domain.ParkingLot, int, error)
	GetByParkID(ctx context.Context, parkID string) (*domain.ParkingLot, error)
}

// ChargingReader is the read side of the charging store used by handlers.
type ChargingReader interface {
	List(ctx context.Context, f postgres.ListFilter) ([]domain.ChargingStation, int, error)
	GetByStationID(ctx context.Context, stationID string) (*domain.ChargingStation, error)
}

type Server struct {
	parking        ParkingReader
	charging       ChargingReader
	parkingNearby  *service.NearbyService[domain.ParkingLot]
	chargingNearby *service.NearbyService[domain.ChargingStation]
	parkingSync    *service.SyncService[domain.ParkingLot]
	chargingSync   *service.SyncService[domain.ChargingStation]
	geocode        *service.GeocodeService
	apiKey         string
	logger         *slog.Logger
}

type Deps struct {
	Parking        ParkingReader
	Charging       ChargingReader
	ParkingNearby  *service.NearbyService[domain.ParkingLot]
	ChargingNearby *service.NearbyService[domain.ChargingStation]
	ParkingSync    *service.SyncService[domain.ParkingLot]
	ChargingSync   *service.SyncService[domain.ChargingStation]
	Geocode        *service.GeocodeService
	APIKey         string
}

func New(deps Deps, logger *slog.Logger) *Server {
	return &Server{
		parking:        deps.Parking,
		charging:       deps.Charging,
		parkingNearby:  deps.ParkingNearby,
		chargingNearby: deps.ChargingNearby,
		parkingSync:    deps.ParkingSync,
		chargingSync:   deps.ChargingSync,
		geocode:        deps.Geocode,
		apiKey:         deps.APIKey,
		logger:         logger.With("component", "http"),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)

	r.Route("/api/parking", func(r chi.Router) {
		r.Get("/", s.handleListParking)
		r.Get("/cities", s.handleListCities)
		r.Get("/nearby", s.handleNearbyParking)
		r.Get("/{parkID}", s.handleGetParking)
	})

	r.Route("/api/charging", func(r chi.Router) {
		r.Get("/", s.handleListCharging)
		r.Get("/nearby", s.handleNearbyCharging)
		r.Get("/{stationID}", s.handleGetCharging)
	})

	r.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", s.handleSyncStatus)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAPIKey)
			r.Post("/trigger", s.handleTriggerParkingSync)
			r.Post("/charging", s.handleTriggerChargingSync)
			r.Post("/geocode", s.handleGeocodeBackfill)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAPIKey guards the sync surface with a shared X-API-Key header.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" || r.Header.Get("X-API-Key") != s.apiKey {
			writeError(w, http.StatusForbidden, "Invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// queryInt parses an integer query parameter, applying def when absent
// and rejecting values outside [min, max].
func queryInt(r *http.Request, name string, def, min, max int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

func queryFloat(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

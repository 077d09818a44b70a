// Package service implements catalog queries over the immutable store.
package service

import (
	"math"
	"strings"

	"vehicle_advisor_backend/internal/catalog/domain"
	"vehicle_advisor_backend/internal/catalog/repository"
	"vehicle_advisor_backend/internal/catalog/transport"
	"vehicle_advisor_backend/platform/apperr"
	"vehicle_advisor_backend/platform/logger"
)

const defaultGasPrice = 3.50

// Service provides catalog queries.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// All returns every vehicle in catalog order.
func (s *Service) All() []domain.Vehicle {
	return s.repo.All()
}

// ByID returns a single vehicle.
func (s *Service) ByID(id string) (domain.Vehicle, error) {
	v, ok := s.repo.ByID(id)
	if !ok {
		return domain.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	return v, nil
}

// Details returns the wire representation of a single vehicle.
func (s *Service) Details(id string) (transport.VehicleResponse, error) {
	v, ok := s.repo.ByID(id)
	if !ok {
		return transport.VehicleResponse{}, apperr.NotFound("vehicle not found")
	}
	return toResponse(v), nil
}

// List returns a page of the catalog.
func (s *Service) List(req transport.ListVehiclesRequest) transport.VehicleListResponse {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	all := s.repo.All()
	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]transport.VehicleResponse, 0, end-start)
	for _, v := range all[start:end] {
		items = append(items, toResponse(v))
	}

	return transport.VehicleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Find filters the catalog with AND semantics across all given criteria.
// A vehicle_type without a body_style is treated as a body_style alias.
func (s *Service) Find(req transport.SearchVehiclesRequest) transport.SearchVehiclesResponse {
	bodyStyle := req.BodyStyle
	if bodyStyle == "" {
		bodyStyle = req.VehicleType
	}

	items := make([]transport.VehicleResponse, 0)
	for _, v := range s.repo.All() {
		if req.Model != "" && !strings.Contains(strings.ToLower(v.Model), strings.ToLower(req.Model)) {
			continue
		}
		if bodyStyle != "" && v.BodyStyle() != strings.ToLower(bodyStyle) {
			continue
		}
		if req.FuelType != "" && v.FuelType() != strings.ToLower(req.FuelType) {
			continue
		}
		if req.MaxPrice > 0 && v.Price() > req.MaxPrice {
			continue
		}
		if req.MinMPG > 0 && v.MPGHighway() < req.MinMPG {
			continue
		}
		if req.MinSeating > 0 && v.Seats() < req.MinSeating {
			continue
		}
		if req.Year > 0 && v.Year != req.Year {
			continue
		}
		items = append(items, toResponse(v))
	}

	return transport.SearchVehiclesResponse{Items: items, Total: len(items)}
}

// Stats summarizes the loaded catalog.
func (s *Service) Stats() transport.CatalogStatsResponse {
	all := s.repo.All()
	stats := transport.CatalogStatsResponse{
		TotalVehicles: len(all),
		ByBodyStyle:   make(map[string]int),
		ByFuelType:    make(map[string]int),
	}
	if len(all) == 0 {
		return stats
	}

	min := math.MaxFloat64
	max := 0.0
	sum := 0.0
	for _, v := range all {
		p := v.Price()
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
		sum += p
		stats.ByBodyStyle[v.BodyStyle()]++
		stats.ByFuelType[v.FuelType()]++
	}
	stats.PriceMin = min
	stats.PriceMax = max
	stats.PriceAvg = round2(sum / float64(len(all)))
	return stats
}

// TrueCost estimates the five year ownership cost including fuel for the
// given commute. Annual mileage assumes a round trip on 250 working days.
func (s *Service) TrueCost(req transport.TrueCostRequest) (transport.TrueCostResponse, error) {
	v, ok := s.repo.ByID(req.VehicleID)
	if !ok {
		return transport.TrueCostResponse{}, apperr.NotFound("vehicle not found")
	}

	gasPrice := req.GasPrice
	if gasPrice <= 0 {
		gasPrice = defaultGasPrice
	}

	annualMiles := float64(req.CommuteMiles * 2 * 250)
	annualFuel := 0.0
	if mpg := v.MPGHighway(); mpg > 0 {
		annualFuel = annualMiles / float64(mpg) * gasPrice
	}

	return transport.TrueCostResponse{
		VehicleName:      v.DisplayName(),
		MSRP:             v.Price(),
		AnnualFuelCost:   round2(annualFuel),
		FiveYearFuelCost: round2(annualFuel * 5),
		FiveYearTotal:    round2(v.Price() + annualFuel*5),
	}, nil
}

func toResponse(v domain.Vehicle) transport.VehicleResponse {
	return transport.VehicleResponse{
		ID:              v.ID,
		Name:            v.DisplayName(),
		Make:            v.Make,
		Model:           v.Model,
		Trim:            v.Trim,
		Year:            v.Year,
		BodyStyle:       v.BodyStyle(),
		FuelType:        v.FuelType(),
		Drivetrain:      v.Drivetrain(),
		Price:           v.Price(),
		MPGCity:         v.MPGCity(),
		MPGHighway:      v.MPGHighway(),
		Seats:           v.Seats(),
		CrashTestScore:  v.CrashTestScore(),
		DriverAssist:    v.DriverAssist(),
		OffroadCapable:  v.OffroadCapable(),
		GroundClearance: v.GroundClearance(),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

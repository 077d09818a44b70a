// Package domain defines the vehicle catalog records and their defaulting
// accessors. Records are loaded once at startup and never mutated.
package domain

import "strings"

// Pricing holds the price fields of a vehicle.
type Pricing struct {
	BaseMSRP float64 `json:"base_msrp"`
}

// Powertrain holds engine and drivetrain fields.
type Powertrain struct {
	FuelType   string `json:"fuel_type"`
	Drivetrain string `json:"drivetrain"`
	MPGCity    int    `json:"mpg_city"`
	MPGHighway int    `json:"mpg_hwy"`
}

// Capacity holds seating and cargo fields.
type Capacity struct {
	Seats                int     `json:"seats"`
	CargoVolumeL         float64 `json:"cargo_volume_l"`
	RearSeatChildSeatFit string  `json:"rear_seat_child_seat_fit"`
}

// Safety holds crash ratings and driver assistance features.
type Safety struct {
	CrashTestScore float64  `json:"crash_test_score"`
	DriverAssist   []string `json:"driver_assist"`
}

// EnvironmentFit holds terrain capability fields.
type EnvironmentFit struct {
	GroundClearanceIn float64 `json:"ground_clearance_in"`
	OffroadCapable    bool    `json:"offroad_capable"`
}

// Specs groups the nested specification blocks of a vehicle.
type Specs struct {
	BodyStyle      string         `json:"body_style"`
	Pricing        Pricing        `json:"pricing"`
	Powertrain     Powertrain     `json:"powertrain"`
	Capacity       Capacity       `json:"capacity"`
	Safety         Safety         `json:"safety"`
	EnvironmentFit EnvironmentFit `json:"environment_fit"`
}

// Vehicle is an immutable catalog record.
type Vehicle struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Trim  string `json:"trim"`
	Year  int    `json:"year"`
	Specs Specs  `json:"specs"`

	AnnualFuelCost  float64 `json:"annual_fuel_cost"`
	AnnualInsurance float64 `json:"annual_insurance"`
	AnnualMaint     float64 `json:"annual_maintenance"`
}

// Conservative defaults used when a catalog record is missing a field.
// Scoring must never fail on a sparse record.
const (
	DefaultPrice           = 50000.0
	DefaultMPGCity         = 25
	DefaultMPGHighway      = 30
	DefaultSeats           = 5
	DefaultDrivetrain      = "FWD"
	DefaultBodyStyle       = "sedan"
	DefaultFuelType        = "gasoline"
	DefaultCrashScore      = 0.8
	DefaultGroundClearance = 5.0
	DefaultChildSeatFit    = "good"

	DefaultAnnualFuelCost  = 1200.0
	DefaultAnnualInsurance = 1200.0
	DefaultAnnualMaint     = 800.0
)

// Price returns the base MSRP, defaulting when absent.
func (v Vehicle) Price() float64 {
	if v.Specs.Pricing.BaseMSRP > 0 {
		return v.Specs.Pricing.BaseMSRP
	}
	return DefaultPrice
}

// MPGCity returns the city fuel economy, defaulting when absent.
func (v Vehicle) MPGCity() int {
	if v.Specs.Powertrain.MPGCity > 0 {
		return v.Specs.Powertrain.MPGCity
	}
	return DefaultMPGCity
}

// MPGHighway returns the highway fuel economy, defaulting when absent.
func (v Vehicle) MPGHighway() int {
	if v.Specs.Powertrain.MPGHighway > 0 {
		return v.Specs.Powertrain.MPGHighway
	}
	return DefaultMPGHighway
}

// AvgMPG returns the mean of city and highway fuel economy.
func (v Vehicle) AvgMPG() float64 {
	return (float64(v.MPGCity()) + float64(v.MPGHighway())) / 2
}

// Seats returns the seating capacity, defaulting when absent.
func (v Vehicle) Seats() int {
	if v.Specs.Capacity.Seats > 0 {
		return v.Specs.Capacity.Seats
	}
	return DefaultSeats
}

// Drivetrain returns the drivetrain, defaulting when absent.
func (v Vehicle) Drivetrain() string {
	if v.Specs.Powertrain.Drivetrain != "" {
		return v.Specs.Powertrain.Drivetrain
	}
	return DefaultDrivetrain
}

// BodyStyle returns the lowercased body style, defaulting when absent.
func (v Vehicle) BodyStyle() string {
	if v.Specs.BodyStyle != "" {
		return strings.ToLower(v.Specs.BodyStyle)
	}
	return DefaultBodyStyle
}

// FuelType returns the lowercased fuel type, defaulting when absent.
func (v Vehicle) FuelType() string {
	if v.Specs.Powertrain.FuelType != "" {
		return strings.ToLower(v.Specs.Powertrain.FuelType)
	}
	return DefaultFuelType
}

// CrashTestScore returns the crash score on a 0-1 scale, defaulting when absent.
func (v Vehicle) CrashTestScore() float64 {
	if v.Specs.Safety.CrashTestScore > 0 {
		return v.Specs.Safety.CrashTestScore
	}
	return DefaultCrashScore
}

// DriverAssist returns the driver assistance feature list, never nil.
func (v Vehicle) DriverAssist() []string {
	if v.Specs.Safety.DriverAssist == nil {
		return []string{}
	}
	return v.Specs.Safety.DriverAssist
}

// GroundClearance returns the ground clearance in inches, defaulting when absent.
func (v Vehicle) GroundClearance() float64 {
	if v.Specs.EnvironmentFit.GroundClearanceIn > 0 {
		return v.Specs.EnvironmentFit.GroundClearanceIn
	}
	return DefaultGroundClearance
}

// OffroadCapable reports whether the vehicle is rated for offroad use.
func (v Vehicle) OffroadCapable() bool {
	return v.Specs.EnvironmentFit.OffroadCapable
}

// ChildSeatFit returns the rear seat child seat fit rating, defaulting when absent.
func (v Vehicle) ChildSeatFit() string {
	if v.Specs.Capacity.RearSeatChildSeatFit != "" {
		return strings.ToLower(v.Specs.Capacity.RearSeatChildSeatFit)
	}
	return DefaultChildSeatFit
}

// HasHybridPowertrain reports whether the fuel type is any electrified variant.
func (v Vehicle) HasHybridPowertrain() bool {
	ft := v.FuelType()
	return strings.Contains(ft, "hybrid") || strings.Contains(ft, "electric") || strings.Contains(ft, "plug")
}

// FuelCostPerYear returns the annual fuel cost, defaulting when absent.
func (v Vehicle) FuelCostPerYear() float64 {
	if v.AnnualFuelCost > 0 {
		return v.AnnualFuelCost
	}
	return DefaultAnnualFuelCost
}

// InsurancePerYear returns the annual insurance cost, defaulting when absent.
func (v Vehicle) InsurancePerYear() float64 {
	if v.AnnualInsurance > 0 {
		return v.AnnualInsurance
	}
	return DefaultAnnualInsurance
}

// MaintenancePerYear returns the annual maintenance cost, defaulting when absent.
func (v Vehicle) MaintenancePerYear() float64 {
	if v.AnnualMaint > 0 {
		return v.AnnualMaint
	}
	return DefaultAnnualMaint
}

// DisplayName returns a human readable vehicle name.
func (v Vehicle) DisplayName() string {
	parts := make([]string, 0, 4)
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.Trim != "" {
		parts = append(parts, v.Trim)
	}
	return strings.Join(parts, " ")
}

package transport

// SearchVehiclesRequest filters the catalog. All criteria are optional and
// combined with AND semantics.
type SearchVehiclesRequest struct {
	Model       string  `form:"model" json:"model,omitempty" validate:"omitempty,max=100"`
	VehicleType string  `form:"vehicle_type" json:"vehicle_type,omitempty" validate:"omitempty,max=50"`
	BodyStyle   string  `form:"body_style" json:"body_style,omitempty" validate:"omitempty,max=50"`
	FuelType    string  `form:"fuel_type" json:"fuel_type,omitempty" validate:"omitempty,max=50"`
	MaxPrice    float64 `form:"max_price" json:"max_price,omitempty" validate:"omitempty,min=0"`
	MinMPG      int     `form:"min_mpg" json:"min_mpg,omitempty" validate:"omitempty,min=0,max=200"`
	MinSeating  int     `form:"min_seating" json:"min_seating,omitempty" validate:"omitempty,min=0,max=12"`
	Year        int     `form:"year" json:"year,omitempty" validate:"omitempty,min=1980,max=2100"`
}

// ListVehiclesRequest paginates the full catalog.
type ListVehiclesRequest struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// VehicleResponse is the wire representation of a catalog record.
type VehicleResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Trim            string   `json:"trim,omitempty"`
	Year            int      `json:"year"`
	BodyStyle       string   `json:"body_style"`
	FuelType        string   `json:"fuel_type"`
	Drivetrain      string   `json:"drivetrain"`
	Price           float64  `json:"price"`
	MPGCity         int      `json:"mpg_city"`
	MPGHighway      int      `json:"mpg_highway"`
	Seats           int      `json:"seats"`
	CrashTestScore  float64  `json:"crash_test_score"`
	DriverAssist    []string `json:"driver_assist"`
	OffroadCapable  bool     `json:"offroad_capable"`
	GroundClearance float64  `json:"ground_clearance_in"`
}

// VehicleListResponse wraps a page of vehicles.
type VehicleListResponse struct {
	Items      []VehicleResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// SearchVehiclesResponse wraps a filtered result set.
type SearchVehiclesResponse struct {
	Items []VehicleResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogStatsResponse summarizes the loaded catalog.
type CatalogStatsResponse struct {
	TotalVehicles int            `json:"total_vehicles"`
	PriceMin      float64        `json:"price_min"`
	PriceMax      float64        `json:"price_max"`
	PriceAvg      float64        `json:"price_avg"`
	ByBodyStyle   map[string]int `json:"by_body_style"`
	ByFuelType    map[string]int `json:"by_fuel_type"`
}

// TrueCostRequest asks for a cost-of-ownership estimate.
type TrueCostRequest struct {
	VehicleID    string  `json:"vehicle_id" validate:"required"`
	CommuteMiles int     `json:"commute_miles" validate:"required,min=1,max=500"`
	GasPrice     float64 `json:"gas_price" validate:"omitempty,min=0.5,max=20"`
}

// TrueCostResponse is the cost-of-ownership breakdown.
type TrueCostResponse struct {
	VehicleName      string  `json:"vehicle_name"`
	MSRP             float64 `json:"msrp"`
	AnnualFuelCost   float64 `json:"annual_fuel_cost"`
	FiveYearFuelCost float64 `json:"five_year_fuel_cost"`
	FiveYearTotal    float64 `json:"five_year_total"`
}

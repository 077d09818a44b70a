package agent

import (
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	catalogtransport "vehicle_advisor_backend/internal/catalog/transport"
	"vehicle_advisor_backend/internal/finance/affordability"
	"vehicle_advisor_backend/internal/recommend/scoring"
	recommendtransport "vehicle_advisor_backend/internal/recommend/transport"
)

// ToolDependencies contains the services the advisor tools call into.
type ToolDependencies struct {
	Catalog *catalogservice.Service
	Engine  *scoring.Engine
}

func createFindCarsTool(deps *ToolDependencies) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "FindCars",
		Description: "Find vehicles matching specific criteria. Use this when the user is looking for a car with a certain body style, fuel type, price range, fuel economy, or seating capacity. vehicle_type is an alias for body_style.",
	}, func(ctx tool.Context, input FindCarsInput) (FindCarsOutput, error) {
		result := deps.Catalog.Find(catalogtransport.SearchVehiclesRequest{
			VehicleType: input.VehicleType,
			BodyStyle:   input.BodyStyle,
			FuelType:    input.FuelType,
			MaxPrice:    input.MaxPrice,
			MinMPG:      input.MinMPG,
			MinSeating:  input.MinSeating,
			Year:        input.Year,
		})
		return FindCarsOutput{Vehicles: result.Items, Count: result.Total}, nil
	})
}

func createGetVehicleDetailsTool(deps *ToolDependencies) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "GetVehicleDetails",
		Description: "Get detailed information about a specific vehicle by its ID. Use this when the user asks about features, specifications, or details of a particular vehicle.",
	}, func(ctx tool.Context, input GetVehicleDetailsInput) (GetVehicleDetailsOutput, error) {
		vehicle, err := deps.Catalog.Details(input.VehicleID)
		if err != nil {
			return GetVehicleDetailsOutput{Found: false, Message: "vehicle not found"}, nil
		}
		return GetVehicleDetailsOutput{Found: true, Vehicle: &vehicle}, nil
	})
}

func createTrueCostTool(deps *ToolDependencies) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "CalculateTrueCost",
		Description: "Calculate the true cost of owning a vehicle over 5 years including fuel for the user's commute. Use this when the user asks about cost of ownership or wants to compare vehicles on total cost.",
	}, func(ctx tool.Context, input CalculateTrueCostInput) (CalculateTrueCostOutput, error) {
		cost, err := deps.Catalog.TrueCost(catalogtransport.TrueCostRequest{
			VehicleID:    input.VehicleID,
			CommuteMiles: input.CommuteMiles,
			GasPrice:     input.GasPrice,
		})
		if err != nil {
			return CalculateTrueCostOutput{Found: false, Message: "vehicle not found"}, nil
		}
		return CalculateTrueCostOutput{Found: true, Cost: &cost}, nil
	})
}

func createScoreCarsTool(deps *ToolDependencies) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "ScoreCarsForUser",
		Description: "Rank every vehicle in the catalog against the user's profile using the weighted scoring engine. Returns scores between 0 and 1 with reason tags. Use this to produce recommendations once you know the user's budget, passengers, commute, or priorities.",
	}, func(ctx tool.Context, input ScoreCarsInput) (ScoreCarsOutput, error) {
		req := recommendtransport.ScoreRequest{
			Terrain:        input.Terrain,
			FeaturesWanted: input.FeaturesWanted,
			Priorities:     input.Priorities,
			TopPriority:    input.TopPriority,
			Weights:        input.Weights,
		}
		if input.BudgetMax > 0 {
			req.BudgetMax = &input.BudgetMax
		}
		if input.Passengers > 0 {
			req.Passengers = &input.Passengers
		}
		if input.CommuteMiles > 0 {
			req.CommuteMiles = &input.CommuteMiles
		}
		if input.HasChildren {
			req.HasChildren = &input.HasChildren
		}

		scored := deps.Engine.ScoreCarsForUser(req.Profile())
		top := scored
		if len(top) > 3 {
			top = top[:3]
		}
		return ScoreCarsOutput{ScoredCars: scored, Top3: top}, nil
	})
}

func createAffordabilityTool(deps *ToolDependencies) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "EvaluateAffordability",
		Description: "Evaluate whether a specific vehicle fits the user's financial situation. Computes monthly payment via loan amortization, debt-to-income ratio, 5 year cost and an affordability score. Use this when income, credit, or down payment come up.",
	}, func(ctx tool.Context, input EvaluateAffordabilityInput) (EvaluateAffordabilityOutput, error) {
		vehicle, err := deps.Catalog.ByID(input.VehicleID)
		if err != nil {
			return EvaluateAffordabilityOutput{Found: false, Message: "vehicle not found"}, nil
		}
		result := affordability.Evaluate(vehicle, input.FinancialProfile)
		return EvaluateAffordabilityOutput{Found: true, Result: &result}, nil
	})
}

// buildTools creates all tools for the vehicle advisor agent.
func buildTools(deps *ToolDependencies) ([]tool.Tool, error) {
	builders := []struct {
		name  string
		build func(*ToolDependencies) (tool.Tool, error)
	}{
		{"FindCars", createFindCarsTool},
		{"GetVehicleDetails", createGetVehicleDetailsTool},
		{"CalculateTrueCost", createTrueCostTool},
		{"ScoreCarsForUser", createScoreCarsTool},
		{"EvaluateAffordability", createAffordabilityTool},
	}

	var tools []tool.Tool
	for _, b := range builders {
		t, err := b.build(deps)
		if err != nil {
			return tools, fmt.Errorf("%s tool: %w", b.name, err)
		}
		tools = append(tools, t)
	}
	return tools, nil
}

// Catalog lists the advisor's tools for the status endpoints. The list
// is static so it is available even when no agent is configured.
func Catalog() []ToolInfo {
	return []ToolInfo{
		{Name: "FindCars", Description: "Filter the catalog by body style, fuel type, price, MPG, seating, or year."},
		{Name: "GetVehicleDetails", Description: "Look up a single vehicle by ID."},
		{Name: "CalculateTrueCost", Description: "Estimate 5 year ownership cost including commute fuel."},
		{Name: "ScoreCarsForUser", Description: "Rank the catalog against a user profile with the weighted scoring engine."},
		{Name: "EvaluateAffordability", Description: "Check loan affordability for a vehicle and financial profile."},
	}
}

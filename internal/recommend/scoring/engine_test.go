package scoring

import (
	"math"
	"reflect"
	"testing"

	"vehicle_advisor_backend/internal/catalog/domain"
	"vehicle_advisor_backend/platform/logger"
)

type stubRepo struct {
	vehicles []domain.Vehicle
}

func (r *stubRepo) All() []domain.Vehicle {
	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}

func (r *stubRepo) ByID(id string) (domain.Vehicle, bool) {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vehicle{}, false
}

func (r *stubRepo) Count() int { return len(r.vehicles) }

func testEngine(vehicles ...domain.Vehicle) *Engine {
	return NewEngine(&stubRepo{vehicles: vehicles}, logger.New("test"))
}

// oneHot isolates a single factor so its raw score flows through
// ScoreVehicle unscaled.
func oneHot(factor string) map[string]float64 {
	weights := make(map[string]float64, len(factorOrder))
	for _, f := range factorOrder {
		weights[f] = 0
	}
	weights[factor] = 1
	return weights
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func sedan(id string, price float64) domain.Vehicle {
	return domain.Vehicle{
		ID:    id,
		Make:  "Toyota",
		Model: "Test",
		Year:  2024,
		Specs: domain.Specs{
			BodyStyle:  "sedan",
			Pricing:    domain.Pricing{BaseMSRP: price},
			Powertrain: domain.Powertrain{FuelType: "gasoline", Drivetrain: "FWD", MPGCity: 30, MPGHighway: 38},
			Capacity:   domain.Capacity{Seats: 5, RearSeatChildSeatFit: "good"},
			Safety:     domain.Safety{CrashTestScore: 0.9},
		},
	}
}

func TestScoreVehicle_BudgetHeadroomScaling(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{
		BudgetMax: floatPtr(30000),
		Weights:   oneHot(FactorBudget),
	}

	score, reasons := engine.ScoreVehicle(sedan("a", 27000), profile)

	if math.Abs(score-0.73) > 1e-9 {
		t.Fatalf("expected budget score 0.73, got %v", score)
	}
	if !contains(reasons, "within_budget") {
		t.Fatalf("expected within_budget reason, got %v", reasons)
	}
	if contains(reasons, "under_budget") {
		t.Fatalf("did not expect under_budget at 90%% of budget, got %v", reasons)
	}
}

func TestScoreVehicle_WellUnderBudgetGetsExtraTag(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{
		BudgetMax: floatPtr(30000),
		Weights:   oneHot(FactorBudget),
	}

	score, reasons := engine.ScoreVehicle(sedan("a", 21000), profile)

	if math.Abs(score-0.79) > 1e-9 {
		t.Fatalf("expected budget score 0.79, got %v", score)
	}
	if !contains(reasons, "under_budget") {
		t.Fatalf("expected under_budget reason, got %v", reasons)
	}
}

func TestScoreVehicle_OverBudgetIsPenalizedNotZeroed(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{
		BudgetMax: floatPtr(30000),
		Weights:   oneHot(FactorBudget),
	}

	score, reasons := engine.ScoreVehicle(sedan("a", 45000), profile)

	if score != 0.2 {
		t.Fatalf("expected over-budget score 0.2, got %v", score)
	}
	if contains(reasons, "within_budget") {
		t.Fatalf("did not expect within_budget over budget, got %v", reasons)
	}
}

func TestScoreVehicle_LongCommuteRewardsHighMPG(t *testing.T) {
	engine := testEngine()
	hybrid := sedan("a", 30000)
	hybrid.Specs.Powertrain.FuelType = "hybrid"
	hybrid.Specs.Powertrain.MPGCity = 44
	hybrid.Specs.Powertrain.MPGHighway = 48

	profile := UserProfile{
		CommuteMiles: intPtr(40),
		Weights:      oneHot(FactorFuelEfficiency),
	}

	score, reasons := engine.ScoreVehicle(hybrid, profile)

	if score != 1.0 {
		t.Fatalf("expected fuel score 1.0 for 46 avg MPG, got %v", score)
	}
	if !contains(reasons, "eco_friendly") {
		t.Fatalf("expected eco_friendly for hybrid, got %v", reasons)
	}
	if !contains(reasons, "excellent_mpg") {
		t.Fatalf("expected excellent_mpg, got %v", reasons)
	}
}

func TestScoreVehicle_ShortCommuteFlattensFuelScore(t *testing.T) {
	engine := testEngine()
	guzzler := sedan("a", 30000)
	guzzler.Specs.Powertrain.MPGCity = 15
	guzzler.Specs.Powertrain.MPGHighway = 19

	profile := UserProfile{
		CommuteMiles: intPtr(10),
		Weights:      oneHot(FactorFuelEfficiency),
	}

	score, _ := engine.ScoreVehicle(guzzler, profile)

	if score != 0.7 {
		t.Fatalf("expected flat 0.7 fuel score for short commute, got %v", score)
	}
}

func TestScoreVehicle_SeatShortfallNearlyDisqualifies(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{
		Passengers: intPtr(7),
		Weights:    oneHot(FactorSeating),
	}

	score, reasons := engine.ScoreVehicle(sedan("a", 30000), profile)

	if score != 0.2 {
		t.Fatalf("expected seating score 0.2 for 5 seats vs 7 needed, got %v", score)
	}
	if contains(reasons, "enough_seats") {
		t.Fatalf("did not expect enough_seats, got %v", reasons)
	}
}

func TestScoreVehicle_FamilySeatingTags(t *testing.T) {
	engine := testEngine()
	van := sedan("a", 40000)
	van.Specs.BodyStyle = "minivan"
	van.Specs.Capacity.Seats = 8
	van.Specs.Capacity.RearSeatChildSeatFit = "excellent"

	profile := UserProfile{
		Passengers:  intPtr(5),
		HasChildren: boolPtr(true),
		Weights:     oneHot(FactorSeating),
	}

	score, reasons := engine.ScoreVehicle(van, profile)

	if score != 1.0 {
		t.Fatalf("expected seating score 1.0, got %v", score)
	}
	for _, want := range []string{"enough_seats", "extra_space", "child_seat_friendly"} {
		if !contains(reasons, want) {
			t.Fatalf("expected %s in reasons, got %v", want, reasons)
		}
	}
}

func TestScoreVehicle_OffroadTerrainWantsAWD(t *testing.T) {
	engine := testEngine()
	truck := sedan("a", 40000)
	truck.Specs.BodyStyle = "truck"
	truck.Specs.Powertrain.Drivetrain = "4WD"

	profile := UserProfile{
		Terrain: "offroad",
		Weights: oneHot(FactorDrivetrain),
	}

	score, reasons := engine.ScoreVehicle(truck, profile)

	if score != 1.0 {
		t.Fatalf("expected drivetrain score 1.0 for 4WD on offroad terrain, got %v", score)
	}
	if !contains(reasons, "awd_match") {
		t.Fatalf("expected awd_match, got %v", reasons)
	}

	fwd := sedan("b", 40000)
	score, _ = engine.ScoreVehicle(fwd, profile)
	if score != 0.4 {
		t.Fatalf("expected drivetrain score 0.4 when AWD wanted but absent, got %v", score)
	}
}

func TestScoreVehicle_ChildrenPreferFamilyBodyStyles(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{
		HasChildren: boolPtr(true),
		Weights:     oneHot(FactorVehicleType),
	}

	suv := sedan("a", 40000)
	suv.Specs.BodyStyle = "suv"
	score, reasons := engine.ScoreVehicle(suv, profile)
	if score != 1.0 || !contains(reasons, "family_friendly") {
		t.Fatalf("expected suv 1.0 family_friendly, got %v %v", score, reasons)
	}

	score, _ = engine.ScoreVehicle(sedan("b", 40000), profile)
	if score != 0.7 {
		t.Fatalf("expected sedan 0.7 with children, got %v", score)
	}

	coupe := sedan("c", 40000)
	coupe.Specs.BodyStyle = "coupe"
	score, _ = engine.ScoreVehicle(coupe, profile)
	if score != 0.5 {
		t.Fatalf("expected coupe 0.5 with children, got %v", score)
	}
}

func TestScoreVehicle_PerformancePriorityUsesMPGProxy(t *testing.T) {
	engine := testEngine()
	sporty := sedan("a", 32000)
	sporty.Specs.Powertrain.MPGCity = 20
	sporty.Specs.Powertrain.MPGHighway = 27

	profile := UserProfile{
		Priorities: []string{"performance"},
		Weights:    oneHot(FactorPerformance),
	}

	score, reasons := engine.ScoreVehicle(sporty, profile)
	if score != 1.0 || !contains(reasons, "high_performance") {
		t.Fatalf("expected 1.0 high_performance for 23.5 avg MPG, got %v %v", score, reasons)
	}

	noPriority := UserProfile{Weights: oneHot(FactorPerformance)}
	score, reasons = engine.ScoreVehicle(sporty, noPriority)
	if score != 0.7 || !contains(reasons, "adequate_power") {
		t.Fatalf("expected 0.7 adequate_power without priority, got %v %v", score, reasons)
	}
}

func TestScoreVehicle_FeatureMatchRatioClamped(t *testing.T) {
	engine := testEngine()
	hybrid := sedan("a", 30000)
	hybrid.Specs.Powertrain.FuelType = "hybrid"
	hybrid.Specs.Safety.DriverAssist = []string{"hybrid drive assist"}

	profile := UserProfile{
		FeaturesWanted: []string{"hybrid"},
		Weights:        oneHot(FactorFeatures),
	}

	// The wanted feature matches both the assist list and the fuel type;
	// the ratio must still cap at 1.0.
	score, reasons := engine.ScoreVehicle(hybrid, profile)
	if score != 1.0 {
		t.Fatalf("expected feature score clamped to 1.0, got %v", score)
	}
	if !contains(reasons, "feature_rich") {
		t.Fatalf("expected feature_rich, got %v", reasons)
	}
}

func TestScoreVehicle_SafetyTiers(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{Weights: oneHot(FactorSafety)}

	cases := []struct {
		crash float64
		want  float64
	}{
		{0.95, 1.0},
		{0.85, 0.9},
		{0.75, 0.7},
		{0.5, 0.5},
	}
	for _, tc := range cases {
		v := sedan("a", 30000)
		v.Specs.Safety.CrashTestScore = tc.crash
		score, _ := engine.ScoreVehicle(v, profile)
		if score != tc.want {
			t.Fatalf("crash %v: expected safety score %v, got %v", tc.crash, tc.want, score)
		}
	}
}

func TestScoreVehicle_ReasonsFollowFactorOrder(t *testing.T) {
	engine := testEngine()
	profile := UserProfile{BudgetMax: floatPtr(40000)}

	_, reasons := engine.ScoreVehicle(sedan("a", 30000), profile)

	budgetIdx, safetyIdx := -1, -1
	for i, r := range reasons {
		if r == "within_budget" {
			budgetIdx = i
		}
		if r == "top_safety" {
			safetyIdx = i
		}
	}
	if budgetIdx == -1 || safetyIdx == -1 {
		t.Fatalf("expected both within_budget and top_safety, got %v", reasons)
	}
	if budgetIdx > safetyIdx {
		t.Fatalf("expected budget reasons before safety reasons, got %v", reasons)
	}
}

func TestScoreCarsForUser_SortedDescendingAndRounded(t *testing.T) {
	affordable := sedan("affordable", 25000)
	pricey := sedan("pricey", 60000)
	engine := testEngine(affordable, pricey)

	profile := UserProfile{BudgetMax: floatPtr(30000)}
	scored := engine.ScoreCarsForUser(profile)

	if len(scored) != 2 {
		t.Fatalf("expected 2 scored cars, got %d", len(scored))
	}
	if scored[0].ID != "affordable" {
		t.Fatalf("expected affordable car first, got %s", scored[0].ID)
	}
	for i, sc := range scored {
		if sc.Score < 0 || sc.Score > 1 {
			t.Fatalf("score %v out of [0,1] at %d", sc.Score, i)
		}
		if math.Abs(sc.Score*100-math.Round(sc.Score*100)) > 1e-9 {
			t.Fatalf("score %v not rounded to 2 decimals", sc.Score)
		}
		if sc.Reasons == nil {
			t.Fatalf("reasons must never be nil")
		}
		if i > 0 && scored[i-1].Score < sc.Score {
			t.Fatalf("scores not sorted descending: %v", scored)
		}
	}
}

func TestScoreCarsForUser_Deterministic(t *testing.T) {
	engine := testEngine(sedan("a", 25000), sedan("b", 35000), sedan("c", 28000))
	profile := UserProfile{BudgetMax: floatPtr(30000), Passengers: intPtr(4)}

	first := engine.ScoreCarsForUser(profile)
	second := engine.ScoreCarsForUser(profile)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results across runs:\n%v\n%v", first, second)
	}
}

func TestScoreVehicle_SparseRecordUsesDefaults(t *testing.T) {
	engine := testEngine()
	bare := domain.Vehicle{ID: "bare", Make: "Toyota", Model: "Mystery"}

	score, reasons := engine.ScoreVehicle(bare, UserProfile{})

	if score <= 0 || score > 1 {
		t.Fatalf("expected usable score for sparse record, got %v", score)
	}
	if reasons == nil {
		t.Fatalf("reasons must never be nil")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

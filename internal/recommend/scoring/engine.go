// Package scoring ranks the vehicle catalog against a user profile.
//
// The engine is a pure function over its inputs: eight independently
// scored factors, each in [0,1], combined by a weighted sum. Factors emit
// reason tags used downstream for explanation. Missing profile or catalog
// fields resolve to conservative defaults rather than errors, because
// extraction upstream is heuristic and partial profiles are the norm.
package scoring

import (
	"math"
	"sort"
	"strings"

	"vehicle_advisor_backend/internal/catalog/domain"
	"vehicle_advisor_backend/internal/catalog/repository"
	"vehicle_advisor_backend/platform/logger"
)

// ScoredCar is one ranked catalog entry.
type ScoredCar struct {
	ID      string   `json:"id"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Engine scores vehicles for user profiles.
type Engine struct {
	repo repository.Repository
	log  *logger.Logger
}

// NewEngine creates a scoring engine over the catalog store.
func NewEngine(repo repository.Repository, log *logger.Logger) *Engine {
	return &Engine{repo: repo, log: log}
}

// ScoreCarsForUser ranks the whole catalog for the profile, highest score
// first. The sort is stable so ties keep catalog order. Scores are rounded
// to 2 decimals.
func (e *Engine) ScoreCarsForUser(profile UserProfile) []ScoredCar {
	vehicles := e.repo.All()
	scored := make([]ScoredCar, 0, len(vehicles))

	for _, v := range vehicles {
		score, reasons := e.ScoreVehicle(v, profile)
		scored = append(scored, ScoredCar{
			ID:      v.ID,
			Score:   math.Round(score*100) / 100,
			Reasons: reasons,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

type factorFunc func(domain.Vehicle, UserProfile) (float64, []string)

// ScoreVehicle computes the weighted factor sum and collects reason tags
// in factor evaluation order.
func (e *Engine) ScoreVehicle(v domain.Vehicle, profile UserProfile) (float64, []string) {
	weights := resolveWeights(profile.Weights)

	factors := map[string]factorFunc{
		FactorBudget:         scoreBudget,
		FactorFuelEfficiency: scoreFuelEfficiency,
		FactorSeating:        scoreSeating,
		FactorDrivetrain:     scoreDrivetrain,
		FactorVehicleType:    scoreVehicleType,
		FactorPerformance:    scorePerformance,
		FactorFeatures:       scoreFeatures,
		FactorSafety:         scoreSafety,
	}

	total := 0.0
	var reasons []string
	for _, name := range factorOrder {
		score, factorReasons := factors[name](v, profile)
		total += weights[name] * score
		reasons = append(reasons, factorReasons...)
	}
	if reasons == nil {
		reasons = []string{}
	}

	return total, reasons
}

// scoreBudget rewards headroom under budget. Over budget is penalized but
// not zeroed so affordable-but-pricier options still rank.
func scoreBudget(v domain.Vehicle, p UserProfile) (float64, []string) {
	budget := p.budgetMax()
	price := v.Price()

	if price > budget {
		return 0.2, nil
	}

	reasons := []string{"within_budget"}
	if price <= budget*0.8 {
		reasons = append(reasons, "under_budget")
	}
	return 1.0 - (price/budget)*0.3, reasons
}

// scoreFuelEfficiency weighs MPG heavily for long commutes and only
// lightly otherwise. Electrified powertrains always tag eco_friendly.
func scoreFuelEfficiency(v domain.Vehicle, p UserProfile) (float64, []string) {
	var reasons []string
	if v.HasHybridPowertrain() {
		reasons = append(reasons, "eco_friendly")
	}

	avgMPG := v.AvgMPG()
	if p.commuteMiles() > 30 {
		switch {
		case avgMPG >= 40:
			return 1.0, append(reasons, "excellent_mpg")
		case avgMPG >= 30:
			return 0.8, append(reasons, "good_mpg")
		case avgMPG >= 25:
			return 0.6, append(reasons, "decent_mpg")
		default:
			return 0.3, reasons
		}
	}

	if avgMPG >= 30 {
		reasons = append(reasons, "good_mpg")
	}
	return 0.7, reasons
}

// scoreSeating treats a seat shortfall as a near disqualifier.
func scoreSeating(v domain.Vehicle, p UserProfile) (float64, []string) {
	needed := p.passengers()
	seats := v.Seats()

	if seats < needed {
		return 0.2, nil
	}

	reasons := []string{"enough_seats"}
	if seats >= needed+2 {
		reasons = append(reasons, "extra_space")
	}
	if p.hasChildren() {
		fit := v.ChildSeatFit()
		if fit == "good" || fit == "excellent" {
			reasons = append(reasons, "child_seat_friendly")
		}
	}
	return 1.0, reasons
}

// scoreDrivetrain checks AWD demand from features or offroad terrain.
func scoreDrivetrain(v domain.Vehicle, p UserProfile) (float64, []string) {
	wantsAWD := p.wantsFeature("awd") || p.terrain() == "offroad"
	dt := strings.ToUpper(v.Drivetrain())
	hasAWD := dt == "AWD" || dt == "4WD"

	switch {
	case wantsAWD && hasAWD:
		return 1.0, []string{"awd_match"}
	case wantsAWD:
		return 0.4, nil
	default:
		return 0.8, nil
	}
}

func scoreVehicleType(v domain.Vehicle, p UserProfile) (float64, []string) {
	body := v.BodyStyle()

	if p.hasChildren() {
		if body == "suv" || body == "minivan" || v.Seats() >= 7 {
			return 1.0, []string{"family_friendly"}
		}
		if body == "sedan" {
			return 0.7, nil
		}
		return 0.5, nil
	}

	if p.terrain() == "offroad" {
		if v.OffroadCapable() || body == "truck" {
			return 1.0, []string{"offroad_capable"}
		}
		if v.GroundClearance() >= 8.0 {
			return 0.8, []string{"good_clearance"}
		}
		return 0.5, nil
	}

	if body == "sedan" || body == "hatchback" {
		return 0.9, []string{"efficient_choice"}
	}
	return 0.8, nil
}

// scorePerformance uses average MPG as an inverse proxy for engine power.
// This is a coarse heuristic, not a horsepower model; the catalog format
// does not reliably carry output figures.
func scorePerformance(v domain.Vehicle, p UserProfile) (float64, []string) {
	caresAboutPower := p.hasPriority("performance") || p.hasPriority("power")
	if !caresAboutPower {
		return 0.7, []string{"adequate_power"}
	}

	avgMPG := v.AvgMPG()
	switch {
	case avgMPG < 25:
		return 1.0, []string{"high_performance"}
	case avgMPG < 30:
		return 0.8, []string{"good_power"}
	default:
		return 0.6, nil
	}
}

// featureSearchTerms maps wanted feature tags to substrings matched
// against the vehicle's driver assist list.
var featureSearchTerms = map[string][]string{
	"apple_carplay":      {"apple", "carplay"},
	"android_auto":       {"android", "auto"},
	"leather_seats":      {"leather"},
	"panoramic_sunroof":  {"panoramic", "sunroof"},
	"sunroof":            {"sunroof"},
	"blind_spot_monitor": {"blind spot", "blind_spot"},
	"adaptive_cruise":    {"adaptive cruise", "adaptive_cruise_control"},
	"lane_departure":     {"lane", "lane_keep"},
	"3_row_seating":      {"3_row", "three_row"},
	"hybrid":             {"hybrid"},
}

func scoreFeatures(v domain.Vehicle, p UserProfile) (float64, []string) {
	wanted := p.FeaturesWanted
	if len(wanted) == 0 {
		return 0.7, nil
	}

	assistFeatures := make([]string, 0, len(v.DriverAssist()))
	for _, f := range v.DriverAssist() {
		assistFeatures = append(assistFeatures, strings.ReplaceAll(strings.ToLower(f), "_", " "))
	}

	var reasons []string
	matches := 0
	for _, w := range wanted {
		wantedLower := strings.ToLower(w)
		terms, known := featureSearchTerms[wantedLower]
		if !known {
			terms = []string{wantedLower}
		}

		for _, term := range terms {
			if containsSubstring(assistFeatures, term) {
				matches++
				switch {
				case strings.Contains(wantedLower, "carplay") || strings.Contains(wantedLower, "apple"):
					reasons = append(reasons, "has_carplay")
				case strings.Contains(wantedLower, "cruise"):
					reasons = append(reasons, "has_adaptive_cruise")
				case strings.Contains(wantedLower, "lane"):
					reasons = append(reasons, "has_lane_assist")
				}
				break
			}
		}

		if strings.Contains(wantedLower, "hybrid") && strings.Contains(v.FuelType(), "hybrid") {
			matches++
			reasons = append(reasons, "eco_friendly")
		}
	}

	// A wanted feature can match twice (assist list and fuel type), so
	// the ratio is clamped to keep the factor within [0,1].
	ratio := float64(matches) / float64(len(wanted))
	if ratio > 1.0 {
		ratio = 1.0
	}
	if ratio >= 0.8 {
		reasons = append(reasons, "feature_rich")
	}
	return ratio, reasons
}

func scoreSafety(v domain.Vehicle, _ UserProfile) (float64, []string) {
	var reasons []string
	var score float64

	crash := v.CrashTestScore()
	switch {
	case crash >= 0.9:
		score = 1.0
		reasons = append(reasons, "top_safety")
	case crash >= 0.8:
		score = 0.9
		reasons = append(reasons, "excellent_safety")
	case crash >= 0.7:
		score = 0.7
	default:
		score = 0.5
	}

	// Informational tag only; does not move the score.
	if len(v.DriverAssist()) >= 5 {
		reasons = append(reasons, "advanced_safety_features")
	}
	return score, reasons
}

func containsSubstring(haystack []string, term string) bool {
	for _, h := range haystack {
		if strings.Contains(h, term) {
			return true
		}
	}
	return false
}

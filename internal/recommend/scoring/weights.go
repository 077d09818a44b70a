package scoring

import "math"

// Factor category names, in evaluation order.
const (
	FactorBudget         = "budget"
	FactorFuelEfficiency = "fuel_efficiency"
	FactorSeating        = "seating"
	FactorDrivetrain     = "drivetrain"
	FactorVehicleType    = "vehicle_type"
	FactorPerformance    = "performance"
	FactorFeatures       = "features"
	FactorSafety         = "safety"
)

// factorOrder fixes the evaluation and reason emission order.
var factorOrder = []string{
	FactorBudget,
	FactorFuelEfficiency,
	FactorSeating,
	FactorDrivetrain,
	FactorVehicleType,
	FactorPerformance,
	FactorFeatures,
	FactorSafety,
}

// DefaultWeights is the balanced weight vector used when a profile carries
// no override. The values sum to 1.0.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		FactorBudget:         0.20,
		FactorFuelEfficiency: 0.20,
		FactorSeating:        0.15,
		FactorDrivetrain:     0.10,
		FactorVehicleType:    0.10,
		FactorPerformance:    0.10,
		FactorFeatures:       0.10,
		FactorSafety:         0.05,
	}
}

// resolveWeights overlays a partial override map on the defaults. No
// renormalization happens here; callers supplying overrides are expected
// to hand in a vector that sums to 1 (see PrioritiesToWeights).
func resolveWeights(overrides map[string]float64) map[string]float64 {
	weights := DefaultWeights()
	for k, v := range overrides {
		if _, known := weights[k]; known {
			weights[k] = v
		}
	}
	return weights
}

// priorityCategories maps user stated priority tags to factor categories.
var priorityCategories = map[string]string{
	"fuel_efficiency": FactorFuelEfficiency,
	"safety":          FactorSafety,
	"space":           FactorSeating,
	"performance":     FactorPerformance,
	"budget":          FactorBudget,
}

const (
	topPriorityWeight  = 0.45
	listedBudgetWeight = 0.30
	unlistedBaseWeight = 0.06
)

// PrioritiesToWeights converts an ordered priority list into a weight
// vector that sums to 1.0. A top priority, when listed, takes 0.45 and
// the remaining listed priorities split 0.30 evenly. Without a top
// priority the listed priorities split 0.30. Unlisted categories get a
// flat 0.06 base. The additive scheme does not sum to 1 on its own, so
// the vector is normalized and rounded to 2 decimals.
func PrioritiesToWeights(priorities []string, topPriority string) map[string]float64 {
	listed := make(map[string]bool)
	var listedOrder []string
	for _, p := range priorities {
		cat, ok := priorityCategories[p]
		if !ok {
			continue
		}
		if !listed[cat] {
			listed[cat] = true
			listedOrder = append(listedOrder, cat)
		}
	}

	topCat := ""
	if topPriority != "" {
		if cat, ok := priorityCategories[topPriority]; ok && listed[cat] {
			topCat = cat
		}
	}

	weights := make(map[string]float64, len(factorOrder))
	remaining := make([]string, 0, len(listedOrder))
	for _, cat := range listedOrder {
		if cat != topCat {
			remaining = append(remaining, cat)
		}
	}

	if topCat != "" {
		weights[topCat] = topPriorityWeight
		if len(remaining) > 0 {
			share := listedBudgetWeight / float64(len(remaining))
			for _, cat := range remaining {
				weights[cat] = share
			}
		}
	} else if len(listedOrder) > 0 {
		share := listedBudgetWeight / float64(len(listedOrder))
		for _, cat := range listedOrder {
			weights[cat] = share
		}
	}

	for _, cat := range factorOrder {
		if _, ok := weights[cat]; !ok {
			weights[cat] = unlistedBaseWeight
		}
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return DefaultWeights()
	}
	for cat, w := range weights {
		weights[cat] = math.Round(w/sum*100) / 100
	}
	return weights
}

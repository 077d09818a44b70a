package scoring

import (
	"math"
	"testing"
)

func TestPrioritiesToWeights_SinglePriority_NoTop(t *testing.T) {
	weights := PrioritiesToWeights([]string{"fuel_efficiency"}, "")

	if weights[FactorFuelEfficiency] != 0.42 {
		t.Fatalf("expected fuel_efficiency weight 0.42, got %v", weights[FactorFuelEfficiency])
	}
	if weights[FactorSafety] != 0.08 {
		t.Fatalf("expected unlisted safety weight 0.08, got %v", weights[FactorSafety])
	}
	if weights[FactorBudget] != 0.08 {
		t.Fatalf("expected unlisted budget weight 0.08, got %v", weights[FactorBudget])
	}
}

func TestPrioritiesToWeights_TopPriorityDominates(t *testing.T) {
	weights := PrioritiesToWeights([]string{"safety", "budget"}, "safety")

	if weights[FactorSafety] <= weights[FactorBudget] {
		t.Fatalf("expected safety > budget, got %v vs %v", weights[FactorSafety], weights[FactorBudget])
	}
	if weights[FactorBudget] <= weights[FactorDrivetrain] {
		t.Fatalf("expected budget > unlisted drivetrain, got %v vs %v", weights[FactorBudget], weights[FactorDrivetrain])
	}
	// 0.45 / (0.45 + 0.30 + 6*0.06) rounded to 2 decimals.
	if weights[FactorSafety] != 0.41 {
		t.Fatalf("expected safety weight 0.41, got %v", weights[FactorSafety])
	}
}

func TestPrioritiesToWeights_TopPriorityMustBeListed(t *testing.T) {
	weights := PrioritiesToWeights([]string{"budget"}, "safety")

	// safety is not in the priority list, so it stays at the unlisted base
	// and budget takes the listed share.
	if weights[FactorBudget] <= weights[FactorSafety] {
		t.Fatalf("expected budget > safety, got %v vs %v", weights[FactorBudget], weights[FactorSafety])
	}
}

func TestPrioritiesToWeights_UnknownPrioritiesIgnored(t *testing.T) {
	weights := PrioritiesToWeights([]string{"cupholders", "safety"}, "")

	if weights[FactorSafety] <= weights[FactorBudget] {
		t.Fatalf("expected listed safety > unlisted budget, got %v vs %v", weights[FactorSafety], weights[FactorBudget])
	}
}

func TestPrioritiesToWeights_SumsToApproximatelyOne(t *testing.T) {
	cases := [][]string{
		{"fuel_efficiency"},
		{"safety", "budget"},
		{"fuel_efficiency", "safety", "space", "performance", "budget"},
		{"space", "space", "space"},
	}

	for _, priorities := range cases {
		weights := PrioritiesToWeights(priorities, priorities[0])
		var sum float64
		for _, w := range weights {
			sum += w
		}
		if math.Abs(sum-1.0) > 0.05 {
			t.Fatalf("priorities %v: expected weights to sum near 1.0, got %v", priorities, sum)
		}
		if len(weights) != len(factorOrder) {
			t.Fatalf("priorities %v: expected %d weights, got %d", priorities, len(factorOrder), len(weights))
		}
	}
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	var sum float64
	for _, w := range DefaultWeights() {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("expected default weights to sum to 1.0, got %v", sum)
	}
}

func TestResolveWeights_IgnoresUnknownKeys(t *testing.T) {
	weights := resolveWeights(map[string]float64{
		FactorBudget: 0.9,
		"horoscope":  0.5,
	})

	if weights[FactorBudget] != 0.9 {
		t.Fatalf("expected budget override 0.9, got %v", weights[FactorBudget])
	}
	if _, ok := weights["horoscope"]; ok {
		t.Fatalf("expected unknown key to be dropped")
	}
	if weights[FactorSafety] != 0.05 {
		t.Fatalf("expected untouched safety default 0.05, got %v", weights[FactorSafety])
	}
}

package profile

import "testing"

func TestExtractMessage_BudgetWithKSuffix(t *testing.T) {
	e := ExtractMessage("My budget is $30k")

	if e.User.BudgetMax == nil || *e.User.BudgetMax != 30000 {
		t.Fatalf("expected budget 30000, got %v", e.User.BudgetMax)
	}
}

func TestExtractMessage_BudgetWithCommas(t *testing.T) {
	e := ExtractMessage("I can spend $35,000 on a car")

	if e.User.BudgetMax == nil || *e.User.BudgetMax != 35000 {
		t.Fatalf("expected budget 35000, got %v", e.User.BudgetMax)
	}
}

func TestExtractMessage_AnnualIncome(t *testing.T) {
	e := ExtractMessage("I make $60,000 a year")

	if e.Financial.AnnualIncome == nil || *e.Financial.AnnualIncome != 60000 {
		t.Fatalf("expected annual income 60000, got %v", e.Financial.AnnualIncome)
	}
	if e.Financial.MonthlyIncome != nil {
		t.Fatalf("did not expect monthly income, got %v", *e.Financial.MonthlyIncome)
	}
}

func TestExtractMessage_MonthlyIncome(t *testing.T) {
	e := ExtractMessage("I earn $5,000 per month")

	if e.Financial.MonthlyIncome == nil || *e.Financial.MonthlyIncome != 5000 {
		t.Fatalf("expected monthly income 5000, got %v", e.Financial.MonthlyIncome)
	}
}

func TestExtractMessage_SmallBareIncomeIgnored(t *testing.T) {
	e := ExtractMessage("I make 5000")

	if e.Financial.AnnualIncome != nil {
		t.Fatalf("ambiguous small figure must not become annual income, got %v", *e.Financial.AnnualIncome)
	}
}

func TestExtractMessage_NumericCreditScore(t *testing.T) {
	e := ExtractMessage("my credit score is 720")

	if e.Financial.CreditScore.Numeric != 720 {
		t.Fatalf("expected credit 720, got %+v", e.Financial.CreditScore)
	}
}

func TestExtractMessage_CreditPhrases(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"I have excellent credit", "excellent"},
		{"I have bad credit unfortunately", "poor"},
		{"no credit history at all", "very_poor"},
	}
	for _, tc := range cases {
		e := ExtractMessage(tc.text)
		if e.Financial.CreditScore.Rating != tc.want {
			t.Fatalf("%q: expected rating %s, got %+v", tc.text, tc.want, e.Financial.CreditScore)
		}
	}
}

func TestExtractMessage_DownPaymentAndTradeIn(t *testing.T) {
	e := ExtractMessage("I can put $5k down and I have a trade-in worth $8,000")

	if e.Financial.DownPayment == nil || *e.Financial.DownPayment != 5000 {
		t.Fatalf("expected down payment 5000, got %v", e.Financial.DownPayment)
	}
	if e.Financial.TradeInValue == nil || *e.Financial.TradeInValue != 8000 {
		t.Fatalf("expected trade-in 8000, got %v", e.Financial.TradeInValue)
	}
}

func TestExtractMessage_LoanTermYearsToMonths(t *testing.T) {
	e := ExtractMessage("thinking about a 6-year loan")

	if e.Financial.LoanTermMonths == nil || *e.Financial.LoanTermMonths != 72 {
		t.Fatalf("expected 72 month term, got %v", e.Financial.LoanTermMonths)
	}
}

func TestExtractMessage_FamilyOfImpliesChildren(t *testing.T) {
	e := ExtractMessage("We're a family of 5")

	if e.User.Passengers == nil || *e.User.Passengers != 5 {
		t.Fatalf("expected 5 passengers, got %v", e.User.Passengers)
	}
	if e.User.HasChildren == nil || !*e.User.HasChildren {
		t.Fatalf("expected children implied by family of, got %v", e.User.HasChildren)
	}
}

func TestExtractMessage_Commute(t *testing.T) {
	e := ExtractMessage("I drive 45 miles each way to work")

	if e.User.CommuteMiles == nil || *e.User.CommuteMiles != 45 {
		t.Fatalf("expected 45 mile commute, got %v", e.User.CommuteMiles)
	}
}

func TestExtractMessage_OffroadTerrain(t *testing.T) {
	e := ExtractMessage("I go off-road on weekends")

	if e.User.Terrain != "offroad" {
		t.Fatalf("expected offroad terrain, got %q", e.User.Terrain)
	}
}

func TestExtractMessage_PrioritiesNeedPriorityLanguage(t *testing.T) {
	// Mentioning safety without priority phrasing is not a priority.
	e := ExtractMessage("does it have safety features?")
	if len(e.User.Priorities) != 0 {
		t.Fatalf("expected no priorities without priority phrasing, got %v", e.User.Priorities)
	}

	e = ExtractMessage("safety is really important to me")
	if len(e.User.Priorities) != 1 || e.User.Priorities[0] != "safety" {
		t.Fatalf("expected safety priority, got %v", e.User.Priorities)
	}
	if e.TopPriority != "" {
		t.Fatalf("expected no top priority without explicit marker, got %q", e.TopPriority)
	}
}

func TestExtractMessage_TopPriorityMarker(t *testing.T) {
	e := ExtractMessage("fuel efficiency is my top priority")

	if len(e.User.Priorities) == 0 || e.User.Priorities[0] != "fuel_efficiency" {
		t.Fatalf("expected fuel_efficiency priority, got %v", e.User.Priorities)
	}
	if e.TopPriority != "fuel_efficiency" {
		t.Fatalf("expected fuel_efficiency as top, got %q", e.TopPriority)
	}
}

func TestExtractMessage_Features(t *testing.T) {
	e := ExtractMessage("I want AWD and CarPlay, ideally a hybrid")

	want := map[string]bool{"awd": true, "apple_carplay": true, "hybrid": true}
	if len(e.User.FeaturesWanted) != len(want) {
		t.Fatalf("expected %d features, got %v", len(want), e.User.FeaturesWanted)
	}
	for _, f := range e.User.FeaturesWanted {
		if !want[f] {
			t.Fatalf("unexpected feature %q in %v", f, e.User.FeaturesWanted)
		}
	}
}

func TestExtractMessage_EmptyMessage(t *testing.T) {
	e := ExtractMessage("hello there")

	if e.User.BudgetMax != nil || e.User.Passengers != nil || len(e.User.Priorities) != 0 {
		t.Fatalf("expected empty extraction for small talk, got %+v", e)
	}
}

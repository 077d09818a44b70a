package profile

import "testing"

func TestExtractConversation_LatestStatementWins(t *testing.T) {
	conv := ExtractConversation([]string{
		"My budget is $30k",
		"Actually my budget is $40k",
	})

	if conv.User.BudgetMax == nil || *conv.User.BudgetMax != 40000 {
		t.Fatalf("expected corrected budget 40000, got %v", conv.User.BudgetMax)
	}
}

func TestExtractConversation_IncomeCorrection(t *testing.T) {
	conv := ExtractConversation([]string{
		"I make $50,000 a year",
		"Sorry, I actually make $60,000 a year",
	})

	if conv.Financial.AnnualIncome == nil || *conv.Financial.AnnualIncome != 60000 {
		t.Fatalf("expected corrected income 60000, got %v", conv.Financial.AnnualIncome)
	}
}

func TestExtractConversation_MonthlyIncomeReplacesAnnual(t *testing.T) {
	conv := ExtractConversation([]string{
		"I make $60,000 a year",
		"To be precise I earn $4,500 per month",
	})

	if conv.Financial.AnnualIncome != nil {
		t.Fatalf("expected annual income cleared, got %v", *conv.Financial.AnnualIncome)
	}
	if conv.Financial.MonthlyIncome == nil || *conv.Financial.MonthlyIncome != 4500 {
		t.Fatalf("expected monthly income 4500, got %v", conv.Financial.MonthlyIncome)
	}
}

func TestExtractConversation_CreditCorrection(t *testing.T) {
	conv := ExtractConversation([]string{
		"I have bad credit",
		"Good news, my credit score is 720 now",
	})

	if conv.Financial.CreditScore.Numeric != 720 {
		t.Fatalf("expected numeric 720 to replace rating, got %+v", conv.Financial.CreditScore)
	}
	if conv.Financial.CreditScore.Rating != "" {
		t.Fatalf("expected rating cleared, got %+v", conv.Financial.CreditScore)
	}
}

func TestExtractConversation_NewPriorityListReplacesOld(t *testing.T) {
	conv := ExtractConversation([]string{
		"safety is my top priority",
		"Actually what really matters is fuel efficiency",
	})

	if len(conv.User.Priorities) != 1 || conv.User.Priorities[0] != "fuel_efficiency" {
		t.Fatalf("expected fuel_efficiency to replace safety, got %v", conv.User.Priorities)
	}
	if conv.TopPriority != "" {
		t.Fatalf("new list without an explicit top must reset the old top, got %q", conv.TopPriority)
	}
}

func TestExtractConversation_TopPriorityCarriesForward(t *testing.T) {
	conv := ExtractConversation([]string{
		"safety is my top priority",
		"My budget is $35k",
	})

	if conv.TopPriority != "safety" {
		t.Fatalf("expected top priority preserved across unrelated messages, got %q", conv.TopPriority)
	}
	if conv.User.BudgetMax == nil || *conv.User.BudgetMax != 35000 {
		t.Fatalf("expected budget merged alongside, got %v", conv.User.BudgetMax)
	}
}

func TestExtractConversation_FieldsAccumulate(t *testing.T) {
	conv := ExtractConversation([]string{
		"We're a family of 5 and my budget is $45k",
		"I drive 35 miles each way",
		"I want AWD and a hybrid",
	})

	if conv.User.BudgetMax == nil || *conv.User.BudgetMax != 45000 {
		t.Fatalf("expected budget 45000, got %v", conv.User.BudgetMax)
	}
	if conv.User.Passengers == nil || *conv.User.Passengers != 5 {
		t.Fatalf("expected 5 passengers, got %v", conv.User.Passengers)
	}
	if conv.User.HasChildren == nil || !*conv.User.HasChildren {
		t.Fatalf("expected children from family of, got %v", conv.User.HasChildren)
	}
	if conv.User.CommuteMiles == nil || *conv.User.CommuteMiles != 35 {
		t.Fatalf("expected 35 mile commute, got %v", conv.User.CommuteMiles)
	}
	if len(conv.User.FeaturesWanted) != 2 {
		t.Fatalf("expected awd and hybrid, got %v", conv.User.FeaturesWanted)
	}
}

package profile

import (
	"vehicle_advisor_backend/internal/finance/affordability"
	"vehicle_advisor_backend/internal/recommend/scoring"
)

// Conversation accumulates profile facts across a chat. Later messages
// override earlier ones field by field; priorities and wanted features
// are wholesale replaced by the newest message that states them, and
// weight overrides are merged key by key.
type Conversation struct {
	User        scoring.UserProfile
	Financial   affordability.FinancialProfile
	TopPriority string
}

// Apply folds one message extraction into the conversation state.
func (c *Conversation) Apply(e Extraction) {
	mergeUser(&c.User, e.User)
	mergeFinancial(&c.Financial, e.Financial)
	if e.TopPriority != "" {
		c.TopPriority = e.TopPriority
	} else if len(e.User.Priorities) > 0 {
		// A fresh priority list without an explicit top resets the old top.
		c.TopPriority = ""
	}
}

// ExtractConversation runs extraction over every user message in order
// and returns the merged state.
func ExtractConversation(userMessages []string) Conversation {
	var conv Conversation
	for _, msg := range userMessages {
		conv.Apply(ExtractMessage(msg))
	}
	return conv
}

func mergeUser(base *scoring.UserProfile, update scoring.UserProfile) {
	if update.BudgetMax != nil {
		base.BudgetMax = update.BudgetMax
	}
	if update.BudgetFlexible {
		base.BudgetFlexible = true
	}
	if update.Passengers != nil {
		base.Passengers = update.Passengers
	}
	if update.CommuteMiles != nil {
		base.CommuteMiles = update.CommuteMiles
	}
	if update.HasChildren != nil {
		base.HasChildren = update.HasChildren
	}
	if update.Terrain != "" {
		base.Terrain = update.Terrain
	}
	if update.FeaturesWanted != nil {
		base.FeaturesWanted = update.FeaturesWanted
	}
	if update.Priorities != nil {
		base.Priorities = update.Priorities
	}
	if update.Weights != nil {
		if base.Weights == nil {
			base.Weights = make(map[string]float64, len(update.Weights))
		}
		for k, v := range update.Weights {
			base.Weights[k] = v
		}
	}
}

func mergeFinancial(base *affordability.FinancialProfile, update affordability.FinancialProfile) {
	if update.AnnualIncome != nil {
		base.AnnualIncome = update.AnnualIncome
		// Annual and monthly income describe the same fact; the newest
		// statement wins in either form.
		base.MonthlyIncome = nil
	}
	if update.MonthlyIncome != nil {
		base.MonthlyIncome = update.MonthlyIncome
		base.AnnualIncome = nil
	}
	if update.DownPayment != nil {
		base.DownPayment = update.DownPayment
	}
	if update.TradeInValue != nil {
		base.TradeInValue = update.TradeInValue
	}
	if !update.CreditScore.IsZero() {
		base.CreditScore = update.CreditScore
	}
	if update.LoanTermMonths != nil {
		base.LoanTermMonths = update.LoanTermMonths
	}
}

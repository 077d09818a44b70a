package affordability

import (
	"encoding/json"
	"strings"
)

// CreditScore accepts either a numeric FICO-style score (300-850) or a
// categorical rating (excellent/good/fair/poor/very_poor). Upstream
// extraction may produce either form.
type CreditScore struct {
	Numeric int
	Rating  string
}

// UnmarshalJSON accepts a JSON number or string.
func (c *CreditScore) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		c.Numeric = n
		c.Rating = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	c.Numeric = 0
	c.Rating = strings.ToLower(strings.TrimSpace(s))
	return nil
}

// MarshalJSON emits the numeric form when set, else the rating.
func (c CreditScore) MarshalJSON() ([]byte, error) {
	if c.Numeric > 0 {
		return json.Marshal(c.Numeric)
	}
	if c.Rating != "" {
		return json.Marshal(c.Rating)
	}
	return json.Marshal(nil)
}

// IsZero reports whether neither form is set.
func (c CreditScore) IsZero() bool {
	return c.Numeric == 0 && c.Rating == ""
}

// FinancialProfile describes the user's financing situation. All fields
// are optional; missing values degrade to defaults rather than errors.
type FinancialProfile struct {
	AnnualIncome   *float64    `json:"annual_income,omitempty"`
	MonthlyIncome  *float64    `json:"monthly_income,omitempty"`
	DownPayment    *float64    `json:"down_payment,omitempty"`
	TradeInValue   *float64    `json:"trade_in_value,omitempty"`
	CreditScore    CreditScore `json:"credit_score,omitempty"`
	LoanTermMonths *int        `json:"loan_term_months,omitempty"`
}

func (p FinancialProfile) monthlyIncome() float64 {
	if p.MonthlyIncome != nil && *p.MonthlyIncome > 0 {
		return *p.MonthlyIncome
	}
	if p.AnnualIncome != nil && *p.AnnualIncome > 0 {
		return *p.AnnualIncome / 12
	}
	return 0
}

func (p FinancialProfile) downPayment() float64 {
	if p.DownPayment != nil && *p.DownPayment > 0 {
		return *p.DownPayment
	}
	return 0
}

func (p FinancialProfile) tradeInValue() float64 {
	if p.TradeInValue != nil && *p.TradeInValue > 0 {
		return *p.TradeInValue
	}
	return 0
}

func (p FinancialProfile) loanTermMonths() int {
	if p.LoanTermMonths != nil && *p.LoanTermMonths > 0 {
		return *p.LoanTermMonths
	}
	return DefaultLoanTermMonths
}

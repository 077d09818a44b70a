// Package affordability evaluates whether a vehicle fits a user's
// financial situation using standard loan amortization and industry
// affordability guidelines.
package affordability

import (
	"math"

	"vehicle_advisor_backend/internal/catalog/domain"
)

// Affordability guidelines.
const (
	// MaxDTIRatio is the hard ceiling: a car payment above 15% of monthly
	// income is treated as unaffordable.
	MaxDTIRatio = 0.15
	// RecommendedDTIRatio is the comfortable level at 10% of income.
	RecommendedDTIRatio = 0.10
	// MinDownPaymentPercent is assumed when no down payment is supplied.
	MinDownPaymentPercent = 0.10
	// RecommendedDownPaymentPercent avoids being underwater on the loan.
	RecommendedDownPaymentPercent = 0.20
	// DefaultLoanTermMonths is the standard 5 year term.
	DefaultLoanTermMonths = 60
	// FiveYearDepreciationRate is the typical value loss over 5 years.
	FiveYearDepreciationRate = 0.60
)

// Annual interest rates by credit tier, approximate market rates.
const (
	rateExcellent = 0.0549 // 750+
	rateGood      = 0.0699 // 700-749
	rateFair      = 0.0899 // 650-699
	ratePoor      = 0.1199 // 600-649
	rateVeryPoor  = 0.1599 // <600
)

// Result is the outcome of an affordability evaluation.
type Result struct {
	Affordable          bool    `json:"affordable"`
	AffordabilityScore  float64 `json:"affordability_score"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	DownPaymentRequired float64 `json:"down_payment_required"`
	TotalCost5Yr        float64 `json:"total_cost_5yr"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`
	// EstimatedDepreciation is informational. It is deliberately not
	// folded into TotalCost5Yr, which covers cash outlay only.
	EstimatedDepreciation float64  `json:"estimated_depreciation"`
	Reasons               []string `json:"reasons"`
	Warnings              []string `json:"warnings"`
}

// Evaluate computes the affordability of a vehicle for a financial
// profile. It is a pure function and never fails: missing fields degrade
// to defaults, and a missing income forces DTI to 1.0 and affordable to
// false.
func Evaluate(vehicle domain.Vehicle, profile FinancialProfile) Result {
	price := vehicle.Price()
	monthlyIncome := profile.monthlyIncome()
	loanTerm := profile.loanTermMonths()
	interestRate := interestRateFor(profile.CreditScore)

	downPayment := profile.downPayment()
	if downPayment == 0 {
		downPayment = price * MinDownPaymentPercent
	}
	effectiveDown := downPayment + profile.tradeInValue()

	loanAmount := price - effectiveDown
	if loanAmount < 0 {
		loanAmount = 0
	}

	monthlyPayment := MonthlyPayment(loanAmount, interestRate, loanTerm)

	dtiRatio := 1.0
	if monthlyIncome > 0 {
		dtiRatio = monthlyPayment / monthlyIncome
	}

	affordable := monthlyIncome > 0 &&
		dtiRatio <= MaxDTIRatio &&
		effectiveDown >= price*MinDownPaymentPercent

	return Result{
		Affordable:            affordable,
		AffordabilityScore:    affordabilityScore(dtiRatio, effectiveDown, price, monthlyIncome),
		MonthlyPayment:        round2(monthlyPayment),
		DownPaymentRequired:   round2(effectiveDown),
		TotalCost5Yr:          round2(totalCost5Yr(vehicle, monthlyPayment, loanTerm)),
		DebtToIncomeRatio:     round3(dtiRatio),
		EstimatedDepreciation: round2(price * FiveYearDepreciationRate),
		Reasons:               affordabilityReasons(affordable, dtiRatio, effectiveDown, price),
		Warnings:              warnings(dtiRatio, effectiveDown, price, profile.CreditScore, loanTerm),
	}
}

// MonthlyPayment applies the standard amortization formula
// P * [r(1+r)^n] / [(1+r)^n - 1] with r the monthly rate.
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) float64 {
	if loanAmount <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return loanAmount / float64(termMonths)
	}

	r := annualRate / 12
	factor := math.Pow(1+r, float64(termMonths))
	return loanAmount * (r * factor) / (factor - 1)
}

func interestRateFor(score CreditScore) float64 {
	if score.Numeric > 0 {
		switch {
		case score.Numeric >= 750:
			return rateExcellent
		case score.Numeric >= 700:
			return rateGood
		case score.Numeric >= 650:
			return rateFair
		case score.Numeric >= 600:
			return ratePoor
		default:
			return rateVeryPoor
		}
	}

	switch score.Rating {
	case "excellent":
		return rateExcellent
	case "good":
		return rateGood
	case "fair":
		return rateFair
	case "poor":
		return ratePoor
	case "very_poor":
		return rateVeryPoor
	default:
		// Unknown ratings assume average credit.
		return rateGood
	}
}

// totalCost5Yr sums loan payments (capped at 5 years) and operating
// costs. Depreciation is reported separately, not included here.
func totalCost5Yr(vehicle domain.Vehicle, monthlyPayment float64, loanTerm int) float64 {
	months := loanTerm
	if months > 60 {
		months = 60
	}
	purchaseCost := monthlyPayment * float64(months)

	operating := (vehicle.FuelCostPerYear() + vehicle.InsurancePerYear() + vehicle.MaintenancePerYear()) * 5

	return purchaseCost + operating
}

func affordabilityScore(dtiRatio, effectiveDown, price, monthlyIncome float64) float64 {
	if monthlyIncome == 0 {
		return 0
	}

	var dtiScore float64
	switch {
	case dtiRatio <= RecommendedDTIRatio:
		dtiScore = 1.0
	case dtiRatio <= MaxDTIRatio:
		dtiScore = 1.0 - (dtiRatio-RecommendedDTIRatio)/(MaxDTIRatio-RecommendedDTIRatio)*0.4
	default:
		dtiScore = math.Max(0, 0.6-(dtiRatio-MaxDTIRatio)*2)
	}

	downRatio := 0.0
	if price > 0 {
		downRatio = effectiveDown / price
	}
	downScore := 1.0
	if downRatio < RecommendedDownPaymentPercent {
		downScore = downRatio / RecommendedDownPaymentPercent
	}

	score := dtiScore*0.7 + downScore*0.3
	return math.Min(1.0, math.Max(0.0, score))
}

func affordabilityReasons(affordable bool, dtiRatio, effectiveDown, price float64) []string {
	reasons := []string{}
	downRatio := 0.0
	if price > 0 {
		downRatio = effectiveDown / price
	}

	if affordable {
		if dtiRatio <= RecommendedDTIRatio {
			reasons = append(reasons, "excellent_payment_ratio")
		} else if dtiRatio <= MaxDTIRatio {
			reasons = append(reasons, "acceptable_payment_ratio")
		}
		if downRatio >= RecommendedDownPaymentPercent {
			reasons = append(reasons, "strong_down_payment")
		} else if downRatio >= MinDownPaymentPercent {
			reasons = append(reasons, "adequate_down_payment")
		}
		return reasons
	}

	if dtiRatio > MaxDTIRatio {
		reasons = append(reasons, "payment_too_high_for_income")
	}
	if downRatio < MinDownPaymentPercent {
		reasons = append(reasons, "insufficient_down_payment")
	}
	return reasons
}

func warnings(dtiRatio, effectiveDown, price float64, score CreditScore, loanTerm int) []string {
	warnings := []string{}

	if dtiRatio > RecommendedDTIRatio && dtiRatio <= MaxDTIRatio {
		warnings = append(warnings, "Payment is higher than recommended 10% of income")
	} else if dtiRatio > MaxDTIRatio {
		warnings = append(warnings, "Payment exceeds 15% of income - financial strain likely")
	}

	downRatio := 0.0
	if price > 0 {
		downRatio = effectiveDown / price
	}
	if downRatio < RecommendedDownPaymentPercent {
		warnings = append(warnings, "Less than 20% down - may be underwater on loan")
	}

	if score.Numeric > 0 && score.Numeric < 650 {
		warnings = append(warnings, "Credit score may result in high interest rates")
	} else if score.Rating == "fair" || score.Rating == "poor" || score.Rating == "very_poor" {
		warnings = append(warnings, "Credit rating may result in high interest rates")
	}

	if loanTerm > 60 {
		warnings = append(warnings, "Loan term over 5 years - will pay more interest")
	}

	return warnings
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

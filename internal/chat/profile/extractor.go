// Package profile extracts user and financial profiles from chat
// messages. Extraction is heuristic pattern matching, explicitly best
// effort: the scoring and affordability engines downstream default every
// missing field, so a partial extraction is fine.
package profile

import (
	"regexp"
	"strconv"
	"strings"

	"vehicle_advisor_backend/internal/finance/affordability"
	"vehicle_advisor_backend/internal/recommend/scoring"
)

// Extraction is the partial result of scanning a single message. Nil
// pointer fields mean the message said nothing about that field.
type Extraction struct {
	User      scoring.UserProfile
	Financial affordability.FinancialProfile
	// TopPriority is set when the message marks one category as most
	// important.
	TopPriority string
}

// amount matches dollar figures like $30k, $30,000, 30000 dollars.
var (
	reMoney        = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?`)
	reBudget       = regexp.MustCompile(`(?i)(?:budget(?:\s+is)?(?:\s+(?:of|around|about|actually))?|under|below|less than|spend(?:ing)?(?:\s+up to)?|afford(?:\s+up to)?)\s+\$?\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?`)
	reAnnualIncome = regexp.MustCompile(`(?i)(?:make|earn|income(?:\s+is)?|salary(?:\s+is)?(?:\s+(?:of|around|about|actually))?)\s+\$?\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?\s*(?:per year|a year|annually|/year|yearly)?`)
	reMonthly      = regexp.MustCompile(`(?i)(?:make|earn|income(?:\s+is)?)\s+\$?\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?\s*(?:per month|a month|monthly|/month)`)
	reCreditNum    = regexp.MustCompile(`(?i)credit(?:\s+score)?\s+(?:is\s+)?(\d{3})`)
	reDownPayment  = regexp.MustCompile(`(?i)(?:\$\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?\s+down)|(?:down payment(?:\s+(?:of|is))?\s+\$?\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?)`)
	reTradeIn      = regexp.MustCompile(`(?i)trade[\s-]?in(?:\s+(?:worth|value|of|is))?\s+\$?\s?(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s?(k|K)?`)
	rePassengers   = regexp.MustCompile(`(?i)(\d+)\s+(?:passengers|people|seats|adults)`)
	reFamilyOf     = regexp.MustCompile(`(?i)family of\s+(\d+)`)
	reCommute      = regexp.MustCompile(`(?i)(?:(\d+)[\s-]?miles?\s+(?:commute|each way|one way))|(?:commute\s+(?:is\s+)?(?:about\s+)?(\d+)\s?miles?)`)
	reLoanYears    = regexp.MustCompile(`(?i)(\d+)[\s-]?year\s+(?:loan|term|financing)`)
	reLoanMonths   = regexp.MustCompile(`(?i)(\d+)[\s-]?month\s+(?:loan|term|financing)`)
)

// creditRatings maps colloquial credit phrases to rating tiers.
var creditRatings = []struct {
	phrase string
	rating string
}{
	{"excellent credit", "excellent"},
	{"great credit", "excellent"},
	{"good credit", "good"},
	{"fair credit", "fair"},
	{"average credit", "fair"},
	{"bad credit", "poor"},
	{"poor credit", "poor"},
	{"terrible credit", "very_poor"},
	{"no credit", "very_poor"},
}

// priorityPhrases maps keywords to priority tags recognized by the
// weight policy.
var priorityPhrases = []struct {
	keyword  string
	priority string
}{
	{"fuel efficiency", "fuel_efficiency"},
	{"fuel economy", "fuel_efficiency"},
	{"gas mileage", "fuel_efficiency"},
	{"mpg", "fuel_efficiency"},
	{"safety", "safety"},
	{"safe", "safety"},
	{"space", "space"},
	{"room", "space"},
	{"cargo", "space"},
	{"performance", "performance"},
	{"power", "performance"},
	{"fast", "performance"},
	{"budget", "budget"},
	{"cheap", "budget"},
	{"affordable", "budget"},
}

// featurePhrases maps message keywords to feature tags used by the
// scoring engine's feature matcher.
var featurePhrases = []struct {
	keyword string
	tag     string
}{
	{"awd", "awd"},
	{"all-wheel", "awd"},
	{"all wheel", "awd"},
	{"4wd", "awd"},
	{"four wheel", "awd"},
	{"carplay", "apple_carplay"},
	{"android auto", "android_auto"},
	{"leather", "leather_seats"},
	{"panoramic", "panoramic_sunroof"},
	{"sunroof", "sunroof"},
	{"blind spot", "blind_spot_monitor"},
	{"adaptive cruise", "adaptive_cruise"},
	{"lane assist", "lane_departure"},
	{"lane keep", "lane_departure"},
	{"third row", "3_row_seating"},
	{"3 rows", "3_row_seating"},
	{"three rows", "3_row_seating"},
	{"hybrid", "hybrid"},
}

// ExtractMessage scans one user message for profile facts.
func ExtractMessage(text string) Extraction {
	var out Extraction
	lower := strings.ToLower(text)

	extractBudget(text, &out)
	extractIncome(text, &out)
	extractCredit(text, lower, &out)
	extractDownPaymentAndTradeIn(text, &out)
	extractLoanTerm(text, &out)
	extractPassengers(text, &out)
	extractCommute(text, &out)
	extractChildren(lower, &out)
	extractTerrain(lower, &out)
	extractPriorities(lower, &out)
	extractFeatures(lower, &out)

	return out
}

func extractBudget(text string, out *Extraction) {
	m := reBudget.FindStringSubmatch(text)
	if m == nil {
		return
	}
	v := parseAmount(m[1], m[2])
	if v > 0 {
		out.User.BudgetMax = &v
	}
}

func extractIncome(text string, out *Extraction) {
	if m := reMonthly.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2])
		if v > 0 {
			out.Financial.MonthlyIncome = &v
			return
		}
	}
	m := reAnnualIncome.FindStringSubmatch(text)
	if m == nil {
		return
	}
	v := parseAmount(m[1], m[2])
	// Bare "make 5000" without a period is ambiguous; only treat larger
	// figures as annual income.
	if v >= 10000 {
		out.Financial.AnnualIncome = &v
	}
}

func extractCredit(text, lower string, out *Extraction) {
	if m := reCreditNum.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 300 && n <= 850 {
			out.Financial.CreditScore = affordability.CreditScore{Numeric: n}
			return
		}
	}
	for _, cr := range creditRatings {
		if strings.Contains(lower, cr.phrase) {
			out.Financial.CreditScore = affordability.CreditScore{Rating: cr.rating}
			return
		}
	}
}

func extractDownPaymentAndTradeIn(text string, out *Extraction) {
	if m := reDownPayment.FindStringSubmatch(text); m != nil {
		var v float64
		if m[1] != "" {
			v = parseAmount(m[1], m[2])
		} else {
			v = parseAmount(m[3], m[4])
		}
		if v > 0 {
			out.Financial.DownPayment = &v
		}
	}
	if m := reTradeIn.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2])
		if v > 0 {
			out.Financial.TradeInValue = &v
		}
	}
}

func extractLoanTerm(text string, out *Extraction) {
	if m := reLoanMonths.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out.Financial.LoanTermMonths = &n
			return
		}
	}
	if m := reLoanYears.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			months := n * 12
			out.Financial.LoanTermMonths = &months
		}
	}
}

func extractPassengers(text string, out *Extraction) {
	if m := reFamilyOf.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out.User.Passengers = &n
			yes := true
			out.User.HasChildren = &yes
			return
		}
	}
	if m := rePassengers.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= 12 {
			out.User.Passengers = &n
		}
	}
}

func extractCommute(text string, out *Extraction) {
	m := reCommute.FindStringSubmatch(text)
	if m == nil {
		return
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		out.User.CommuteMiles = &n
	}
}

func extractChildren(lower string, out *Extraction) {
	for _, kw := range []string{"kids", "children", "child seat", "car seat", "toddler", "baby"} {
		if strings.Contains(lower, kw) {
			yes := true
			out.User.HasChildren = &yes
			return
		}
	}
}

func extractTerrain(lower string, out *Extraction) {
	switch {
	case strings.Contains(lower, "offroad") || strings.Contains(lower, "off-road") || strings.Contains(lower, "off road") || strings.Contains(lower, "trail"):
		out.User.Terrain = "offroad"
	case strings.Contains(lower, "rough road") || strings.Contains(lower, "pothole"):
		out.User.Terrain = "rough_city"
	case strings.Contains(lower, "highway") || strings.Contains(lower, "freeway"):
		out.User.Terrain = "highway"
	case strings.Contains(lower, "city driving") || strings.Contains(lower, "in the city") || strings.Contains(lower, "urban"):
		out.User.Terrain = "city"
	}
}

func extractPriorities(lower string, out *Extraction) {
	mentionsPriority := strings.Contains(lower, "priority") ||
		strings.Contains(lower, "important") ||
		strings.Contains(lower, "care about") ||
		strings.Contains(lower, "matters")
	if !mentionsPriority {
		return
	}

	seen := make(map[string]bool)
	for _, pp := range priorityPhrases {
		if strings.Contains(lower, pp.keyword) && !seen[pp.priority] {
			seen[pp.priority] = true
			out.User.Priorities = append(out.User.Priorities, pp.priority)
		}
	}

	if len(out.User.Priorities) > 0 &&
		(strings.Contains(lower, "top priority") || strings.Contains(lower, "most important") || strings.Contains(lower, "number one")) {
		out.TopPriority = out.User.Priorities[0]
	}
}

func extractFeatures(lower string, out *Extraction) {
	seen := make(map[string]bool)
	for _, fp := range featurePhrases {
		if strings.Contains(lower, fp.keyword) && !seen[fp.tag] {
			seen[fp.tag] = true
			out.User.FeaturesWanted = append(out.User.FeaturesWanted, fp.tag)
		}
	}
}

// parseAmount converts a captured money figure to dollars, expanding a
// trailing k suffix.
func parseAmount(raw, suffix string) float64 {
	clean := strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if strings.EqualFold(suffix, "k") {
		v *= 1000
	}
	return v
}

package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Row is one parameter/value line of a report
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups rows under a heading. Columns and Cells hold an optional
// grid, used for rate cards and contribution charts.
type Section struct {
	Title   string     `json:"title"`
	Rows    []Row      `json:"rows,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Cells   [][]string `json:"cells,omitempty"`
}

// Report is the format-neutral rendering of one calculation
type Report struct {
	Bank        string      `json:"bank"`
	Title       string      `json:"title"`
	Sections    []Section   `json:"sections"`
	GeneratedOn time.Time   `json:"generated_on"`
	Footer      string      `json:"footer,omitempty"`
	Result      interface{} `json:"result,omitempty"`
}

// ReportBuilder turns calculation results into reports
type ReportBuilder struct {
	Bank           string
	CurrencySymbol string
	Footer         string
	Now            func() time.Time
}

// NewReportBuilder creates a builder with rupee formatting
func NewReportBuilder(bank string) *ReportBuilder {
	return &ReportBuilder{
		Bank:           bank,
		CurrencySymbol: "₹",
		Now:            time.Now,
	}
}

func (b *ReportBuilder) newReport(title string, result interface{}, sections ...Section) *Report {
	return &Report{
		Bank:        b.Bank,
		Title:       title,
		Sections:    sections,
		GeneratedOn: b.Now(),
		Footer:      b.Footer,
		Result:      result,
	}
}

func (b *ReportBuilder) money(d decimal.Decimal) string {
	return FormatCurrency(b.CurrencySymbol, d)
}

// Deposit builds the interest calculation report
func (b *ReportBuilder) Deposit(req domain.DepositRequest, r *domain.CalculationResult) *Report {
	details := []Row{
		{"Principal Amount", b.money(r.Principal)},
		{"Customer Category", r.CustomerClass.Label()},
		{"Interest Rate", FormatPercentage(r.AppliedRate) + " per annum"},
		{"Rate Slab", r.RateSlab},
	}
	details = append(details, periodRows(req.Period)...)

	days := fmt.Sprintf("%d days", r.TotalDays)
	if r.Premature {
		days += " (Broken Period)"
	}
	details = append(details,
		Row{"Time Period (Days)", days},
		Row{"Time Period (Years)", r.TotalYears.StringFixed(4)},
	)

	var results []Row
	if r.Premature {
		results = []Row{
			{"Gross Interest", b.money(r.InterestEarned)},
			{fmt.Sprintf("Penalty Applied (%d%%)", calculation.PrematurePenaltyPoints), b.money(derefDecimal(r.PenaltyAmount))},
			{"Reduced Rate", FormatPercentage(r.PenaltyRate) + " per annum"},
			{"Net Interest", b.money(derefDecimal(r.NetInterestAfterPenalty))},
			{"Net Amount", b.money(r.MaturityAmount)},
		}
	} else {
		results = []Row{
			{"Interest Earned", b.money(r.InterestEarned)},
			{"Maturity Amount", b.money(r.MaturityAmount)},
		}
	}

	return b.newReport("Fixed Deposit Interest Calculation Report", r,
		Section{Title: "Calculation Details", Rows: details},
		Section{Title: "Results", Rows: results},
	)
}

// MonthlyIncome builds the monthly income scheme report
func (b *ReportBuilder) MonthlyIncome(req domain.MonthlyIncomeRequest, r *domain.MonthlyIncomeResult) *Report {
	details := []Row{
		{"Principal Amount", b.money(r.Principal)},
		{"Customer Category", r.CustomerClass.Label()},
		{"Interest Rate", FormatPercentage(r.AppliedRate) + " per annum"},
		{"Rate Slab", r.RateSlab},
		{"Period", fmt.Sprintf("%d years, %d months", req.Period.Years, req.Period.Months)},
		{"Payout Months", fmt.Sprintf("%d", r.Months)},
	}
	results := []Row{
		{"Monthly Income", b.money(r.MonthlyIncome)},
		{"Total Income", b.money(r.TotalIncome)},
		{"Principal Returned", b.money(r.PrincipalReturned)},
	}

	return b.newReport("Monthly Income Scheme Calculation Report", r,
		Section{Title: "Calculation Details", Rows: details},
		Section{Title: "Results", Rows: results},
	)
}

// Charges builds the transfer charges report
func (b *ReportBuilder) Charges(r *domain.ChargeBreakdown) *Report {
	details := []Row{
		{"Transfer Type", string(r.Product)},
		{"Transfer Amount", b.money(r.Amount)},
	}
	results := []Row{
		{"Base Charge", b.money(r.BaseFee)},
		{fmt.Sprintf("GST (%s)", FormatPercentage(r.GSTRate.Mul(decimal.NewFromInt(100)))), b.money(r.GSTAmount)},
		{"Total Charges", b.money(r.TotalCharge)},
	}

	return b.newReport(fmt.Sprintf("%s Charges Calculation Report", r.Product), r,
		Section{Title: "Transfer Details", Rows: details},
		Section{Title: "Charges", Rows: results},
	)
}

// Eligibility builds the government scheme eligibility report
func (b *ReportBuilder) Eligibility(r *domain.AgeEligibility) *Report {
	details := []Row{
		{"Date of Birth", r.BirthDate.Format(domain.DateLayout)},
		{"As Of", r.AsOf.Format(domain.DateLayout)},
		{"Age", fmt.Sprintf("%d years", r.Age)},
	}
	schemes := []Row{
		{"PMSBY (Accident Insurance)", eligibleText(r.EligiblePMSBY)},
		{"PMJJBY (Life Insurance)", eligibleText(r.EligiblePMJJBY)},
		{"APY (Atal Pension Yojana)", eligibleText(r.EligibleAPY)},
	}
	if r.PMSBYAnnualPremium != nil {
		schemes = append(schemes, Row{"PMSBY Annual Premium", b.money(*r.PMSBYAnnualPremium)})
	}
	if r.PMJJBYPremium != nil {
		schemes = append(schemes, Row{
			"PMJJBY Premium",
			fmt.Sprintf("%s for %d months cover", b.money(r.PMJJBYPremium.Premium), r.PMJJBYPremium.CoverageMonths),
		})
	}

	sections := []Section{
		{Title: "Applicant Details", Rows: details},
		{Title: "Scheme Eligibility", Rows: schemes},
	}

	if len(r.APYContributions) > 0 {
		apy := Section{
			Title:   fmt.Sprintf("APY Monthly Contributions (joining age %d)", r.APYBucketAge),
			Columns: []string{"Monthly Pension", "Monthly Contribution"},
		}
		for _, c := range r.APYContributions {
			apy.Cells = append(apy.Cells, []string{
				b.money(decimal.NewFromInt(int64(c.Pension))),
				b.money(decimal.NewFromInt(int64(c.Monthly))),
			})
		}
		sections = append(sections, apy)
	}

	return b.newReport("Government Scheme Eligibility Report", r, sections...)
}

// Rates builds the rate card report with the best rate per class
func (b *ReportBuilder) Rates(table domain.RateTable, best []domain.BestRate) *Report {
	columns := []string{"Period"}
	for _, class := range domain.CustomerClasses {
		columns = append(columns, class.Label())
	}

	card := Section{Title: table.Name, Columns: columns}
	for _, s := range append(append([]domain.RateSlab(nil), table.Slabs...), table.Special...) {
		row := []string{s.PeriodLabel}
		for _, class := range domain.CustomerClasses {
			if rate, ok := s.Rate(class); ok {
				row = append(row, FormatPercentage(rate))
			} else {
				row = append(row, "-")
			}
		}
		card.Cells = append(card.Cells, row)
	}

	highlights := Section{Title: "Best Rates"}
	for _, br := range best {
		highlights.Rows = append(highlights.Rows, Row{
			br.Class.Label(),
			fmt.Sprintf("%s (%s)", FormatPercentage(br.Rate), br.PeriodLabel),
		})
	}

	return b.newReport(table.Name+" Interest Rates", table, card, highlights)
}

func periodRows(p domain.Period) []Row {
	switch period := p.(type) {
	case domain.ManualPeriod:
		return []Row{{"Period (Manual)", fmt.Sprintf("%d years, %d months, %d days", period.Years, period.Months, period.Days)}}
	case domain.DatePeriod:
		rows := []Row{
			{"Start Date", period.Start.Format(domain.DateLayout)},
			{"Maturity Date", period.Maturity.Format(domain.DateLayout)},
		}
		if period.EarlyExit != nil {
			rows = append(rows, Row{"Premature Closure Date", period.EarlyExit.Format(domain.DateLayout)})
		}
		return rows
	case *domain.ManualPeriod:
		if period != nil {
			return periodRows(*period)
		}
	case *domain.DatePeriod:
		if period != nil {
			return periodRows(*period)
		}
	}
	return nil
}

func eligibleText(ok bool) string {
	if ok {
		return "Eligible"
	}
	return "Not eligible"
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// FormatAmount formats a decimal with two places and Indian digit grouping,
// e.g. 1,06,189.00
func FormatAmount(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if amount.IsNegative() {
		return "-" + grouped + frac
	}
	return grouped + frac
}

// FormatCurrency formats a decimal as currency with the given symbol
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + FormatAmount(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

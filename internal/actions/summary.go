package actions

import "github.com/tatianab/enterprise-empire/internal/models"

// FinancialSummary aggregates a ledger.
type FinancialSummary struct {
	Revenue     float64
	Expenses    float64
	NetCashFlow float64 // revenue and loans minus investments and expenses
}

// Summarize totals records.
func Summarize(records []models.FinancialRecord) FinancialSummary {
	var s FinancialSummary
	for _, r := range records {
		switch r.Type {
		case models.FinancialRevenue:
			s.Revenue += r.Amount
		case models.FinancialExpense:
			s.Expenses += r.Amount
		}
		if r.Type.Inflow() {
			s.NetCashFlow += r.Amount
		} else {
			s.NetCashFlow -= r.Amount
		}
	}
	return s
}

// RecordsForTurn returns the records created during turn, in order.
func RecordsForTurn(records []models.FinancialRecord, turn int) []models.FinancialRecord {
	var out []models.FinancialRecord
	for _, r := range records {
		if r.Turn == turn {
			out = append(out, r)
		}
	}
	return out
}

// MarketingTotals aggregates launched campaigns.
type MarketingTotals struct {
	Campaigns          int
	TotalEffectiveness float64
	TotalSpend         float64
}

// SummarizeMarketing totals campaigns.
func SummarizeMarketing(campaigns []models.MarketingCampaign) MarketingTotals {
	t := MarketingTotals{Campaigns: len(campaigns)}
	for _, c := range campaigns {
		t.TotalEffectiveness += c.Effectiveness
		t.TotalSpend += c.Cost
	}
	return t
}

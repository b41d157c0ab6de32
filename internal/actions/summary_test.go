package actions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tatianab/enterprise-empire/internal/models"
)

func TestSummarize(t *testing.T) {
	records := []models.FinancialRecord{
		{Type: models.FinancialRevenue, Amount: 10000, Turn: 1},
		{Type: models.FinancialLoan, Amount: 20000, Turn: 1},
		{Type: models.FinancialExpense, Amount: 4000, Turn: 2},
		{Type: models.FinancialInvest, Amount: 6000, Turn: 2},
		{Type: models.FinancialRevenue, Amount: 500, Turn: 2},
	}

	want := FinancialSummary{Revenue: 10500, Expenses: 4000, NetCashFlow: 20500}
	if diff := cmp.Diff(want, Summarize(records)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	turn2 := RecordsForTurn(records, 2)
	if len(turn2) != 3 {
		t.Fatalf("Expected 3 records for turn 2, got %d", len(turn2))
	}
	want = FinancialSummary{Revenue: 500, Expenses: 4000, NetCashFlow: -9500}
	if diff := cmp.Diff(want, Summarize(turn2)); diff != "" {
		t.Errorf("turn summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeMarketing(t *testing.T) {
	got := SummarizeMarketing([]models.MarketingCampaign{
		{Cost: 10000, Effectiveness: 7},
		{Cost: 15000, Effectiveness: 5},
	})
	want := MarketingTotals{Campaigns: 2, TotalEffectiveness: 12, TotalSpend: 25000}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

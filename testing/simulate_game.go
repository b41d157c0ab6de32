package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/tatianab/enterprise-empire/internal/actions"
	"github.com/tatianab/enterprise-empire/internal/advisor"
	"github.com/tatianab/enterprise-empire/internal/config"
	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
	"github.com/tatianab/enterprise-empire/internal/observe"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const (
	maxTurns = 10

	revenuePerEmployee = 1800
	payrollPerEmployee = 900
)

// Plays a scripted company through maxTurns turns without a terminal UI and
// prints what happened each turn. With GEMINI_API_KEY set the advisor is
// consulted every few turns and its advice is printed next to the script's
// own choices.
func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(ctx)
	metrics, err := observe.NewMetrics(mp)
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	catalog := models.DefaultCatalog()
	if cfg.CatalogPath != "" {
		if catalog, err = models.LoadCatalog(cfg.CatalogPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	eng := engine.NewEngine(engine.WithLogger(logger), engine.WithMetrics(metrics))
	mgr := actions.NewManager(eng, catalog, logger)

	var adv *advisor.Advisor
	if cfg.AdvisorEnabled() {
		gem, err := advisor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.AdvisorModel)
		if err != nil {
			log.Fatalf("Failed to create advisor: %v", err)
		}
		defer gem.Close()
		if adv, err = advisor.New(gem, logger); err != nil {
			log.Fatalf("Failed to create advisor: %v", err)
		}
	}

	// Print a summary whenever a turn closes.
	lastTurn := eng.State().CurrentTurn
	unsubscribe := eng.Subscribe(func(s models.GameState) {
		if s.CurrentTurn == lastTurn || !s.GameStarted {
			return
		}
		printTurn(s, lastTurn)
		lastTurn = s.CurrentTurn
	})
	defer unsubscribe()

	fmt.Println("--- Starting a new company ---")
	if err := eng.Dispatch(ctx, engine.StartNewGame{
		PlayerName:   "Simulator",
		CompanyName:  "Scripted Holdings",
		BusinessType: models.BusinessRetail,
		Difficulty:   models.DifficultyMedium,
	}); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	for turn := 1; turn <= maxTurns; turn++ {
		if adv != nil && turn%3 == 1 {
			printAdvice(ctx, adv, eng.State())
		}
		if err := playTurn(ctx, eng, mgr, turn); err != nil {
			log.Fatalf("Turn %d failed: %v", turn, err)
		}
		if err := eng.Dispatch(ctx, engine.AdvanceTurn{}); err != nil {
			log.Fatalf("Failed to advance turn: %v", err)
		}
	}

	if err := eng.Dispatch(ctx, engine.SetGamePhase{Phase: models.PhaseResults}); err != nil {
		log.Fatalf("Failed to enter results: %v", err)
	}
	if err := eng.Dispatch(ctx, engine.EndGame{}); err != nil {
		log.Fatalf("Failed to end game: %v", err)
	}

	final := eng.State()
	m := engine.SelectBusinessMetrics(final)
	sum := actions.Summarize(final.Financials)
	fmt.Println("--- Game Over ---")
	fmt.Printf("Cash: %.0f  Employees: %.0f  Reputation: %.0f  Research: %.0f\n",
		final.Company.Resources.Cash, final.Company.Resources.Employees,
		final.Company.Resources.Reputation, final.Company.Resources.Research)
	fmt.Printf("Market share: %.1f%%  Growth: %.1f%%  Efficiency: %.1f%%\n",
		m.MarketShare, m.GrowthRate, m.OperationalEfficiency)
	fmt.Printf("Revenue: %.0f  Expenses: %.0f  Net cash flow: %.0f\n", sum.Revenue, sum.Expenses, sum.NetCashFlow)

	printTransitionCounts(ctx, reader)
}

// playTurn runs one turn of the script: collect revenue and pay wages, then
// spend spare cash on staff, marketing or operations depending on the turn.
func playTurn(ctx context.Context, eng *engine.Engine, mgr *actions.Manager, turn int) error {
	s := eng.State()
	employees := s.Company.Resources.Employees
	reputation := s.Company.Resources.Reputation

	if err := eng.Dispatch(ctx, engine.SetGamePhase{Phase: models.PhaseFinance}); err != nil {
		return err
	}
	revenue := employees * revenuePerEmployee * (1 + reputation/100)
	if err := mgr.RecordTransaction(ctx, models.FinancialRevenue, revenue, fmt.Sprintf("Sales, turn %d", turn)); err != nil {
		return err
	}
	payroll := employees * payrollPerEmployee
	if err := mgr.RecordTransaction(ctx, models.FinancialExpense, payroll, "Payroll"); err != nil {
		return spendError(err)
	}

	if mgr.CanAfford(3 * mgr.Catalog().HireCost) {
		if err := mgr.Hire(ctx, 1); err != nil {
			return spendError(err)
		}
	}

	switch turn % 2 {
	case 1:
		if err := eng.Dispatch(ctx, engine.SetGamePhase{Phase: models.PhaseMarketing}); err != nil {
			return err
		}
		if t, ok := cheapest(mgr.Catalog().Campaigns, func(t models.CampaignTemplate) float64 { return t.Cost }); ok && mgr.CanAfford(t.Cost) {
			if err := mgr.LaunchCampaign(ctx, t); err != nil {
				return spendError(err)
			}
			return eng.Dispatch(ctx, engine.UpdateResources{ResourceType: models.ResourceReputation, Amount: t.Effectiveness / 2})
		}
	case 0:
		if err := eng.Dispatch(ctx, engine.SetGamePhase{Phase: models.PhaseOperations}); err != nil {
			return err
		}
		if t, ok := cheapest(mgr.Catalog().Activities, func(t models.ActivityTemplate) float64 { return t.Cost }); ok && mgr.CanAfford(t.Cost) {
			if err := mgr.StartActivity(ctx, t); err != nil {
				return spendError(err)
			}
			if t.Type == models.OperationResearch {
				return eng.Dispatch(ctx, engine.UpdateResources{ResourceType: models.ResourceResearch, Amount: t.Efficiency})
			}
			return eng.Dispatch(ctx, engine.UpdateResources{ResourceType: models.ResourceInventory, Amount: t.Efficiency * 10})
		}
	}
	return nil
}

// spendError lets the script carry on when it simply ran out of money.
func spendError(err error) error {
	if errors.Is(err, actions.ErrInsufficientFunds) {
		log.Printf("Skipping: %v", err)
		return nil
	}
	return err
}

func cheapest[T any](items []T, cost func(T) float64) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if cost(it) < cost(best) {
			best = it
		}
	}
	return best, true
}

func printTurn(s models.GameState, closed int) {
	sum := actions.Summarize(actions.RecordsForTurn(s.Financials, closed))
	r := s.Company.Resources
	fmt.Printf("--- Turn %d ---\n", closed)
	fmt.Printf("Net cash flow: %.0f  Cash: %.0f  Employees: %.0f  Reputation: %.1f\n",
		sum.NetCashFlow, r.Cash, r.Employees, r.Reputation)
	fmt.Printf("Campaigns: %d  Activities: %d\n\n", len(s.Marketing), len(s.Operations))
}

func printAdvice(ctx context.Context, adv *advisor.Advisor, s models.GameState) {
	advice, err := adv.Advise(ctx, s)
	if err != nil {
		fmt.Printf("Advisor unavailable: %v\n", err)
		return
	}
	fmt.Printf("Advisor: %s\n", advice.Summary)
	for _, rec := range advice.Recommendations {
		fmt.Printf("  - %s (%s)\n", rec.Action, rec.Reason)
	}
	fmt.Println()
}

func printTransitionCounts(ctx context.Context, reader *sdkmetric.ManualReader) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		log.Printf("Failed to collect metrics: %v", err)
		return
	}
	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "empire.transitions.applied" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				name, _ := dp.Attributes.Value("transition")
				counts[name.AsString()] += dp.Value
			}
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Transitions applied:")
	for _, name := range names {
		fmt.Printf("  %-24s %d\n", name, counts[name])
	}
}

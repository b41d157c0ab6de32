// Package actions implements the player-facing business rules that sit in
// front of the engine. The engine only rejects malformed payloads; whether
// the company can afford something is decided here before anything is
// dispatched.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
)

var (
	// ErrInsufficientFunds is returned when an action costs more cash than
	// the company has.
	ErrInsufficientFunds = errors.New("actions: insufficient funds")

	// ErrNameRequired is returned when a custom campaign has no name.
	ErrNameRequired = errors.New("actions: name is required")
)

// Dispatcher is the part of [engine.Engine] the manager needs.
type Dispatcher interface {
	State() models.GameState
	Dispatch(ctx context.Context, a engine.Action) error
}

// Manager validates player actions against the current state and forwards
// the accepted ones to the engine.
type Manager struct {
	eng     Dispatcher
	catalog *models.Catalog
	logger  *slog.Logger
}

// NewManager returns a manager using catalog for prices and templates. A nil
// catalog means [models.DefaultCatalog]; a nil logger means [slog.Default].
func NewManager(eng Dispatcher, catalog *models.Catalog, logger *slog.Logger) *Manager {
	if catalog == nil {
		catalog = models.DefaultCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{eng: eng, catalog: catalog, logger: logger}
}

// Catalog returns the templates and prices in use.
func (m *Manager) Catalog() *models.Catalog { return m.catalog }

// CanAfford reports whether the company currently has at least cost in cash.
func (m *Manager) CanAfford(cost float64) bool {
	return m.eng.State().Company.Resources.Cash >= cost
}

func (m *Manager) requireCash(cost float64) error {
	cash := m.eng.State().Company.Resources.Cash
	if cash < cost {
		return fmt.Errorf("%w: need %.0f, have %.0f", ErrInsufficientFunds, cost, cash)
	}
	return nil
}

// Hire adds n employees at the catalog's hire cost each.
func (m *Manager) Hire(ctx context.Context, n int) error {
	if n <= 0 {
		return fmt.Errorf("actions: hire count %d must be positive", n)
	}
	cost := float64(n) * m.catalog.HireCost
	if err := m.requireCash(cost); err != nil {
		return err
	}
	if err := m.eng.Dispatch(ctx, engine.UpdateResources{ResourceType: models.ResourceCash, Amount: -cost}); err != nil {
		return err
	}
	if err := m.eng.Dispatch(ctx, engine.UpdateResources{ResourceType: models.ResourceEmployees, Amount: float64(n)}); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "hired employees", "count", n, "cost", cost)
	return nil
}

// RecordTransaction adds a ledger entry. Investments and expenses must be
// covered by the cash on hand; revenue and loans are always accepted.
func (m *Manager) RecordTransaction(ctx context.Context, kind models.FinancialActionType, amount float64, description string) error {
	if !kind.Inflow() {
		if err := m.requireCash(amount); err != nil {
			return err
		}
	}
	if err := m.eng.Dispatch(ctx, engine.AddFinancialRecord{Type: kind, Amount: amount, Description: description}); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "recorded transaction", "type", kind, "amount", amount)
	return nil
}

// LaunchCampaign starts a campaign from a template.
func (m *Manager) LaunchCampaign(ctx context.Context, t models.CampaignTemplate) error {
	if err := m.requireCash(t.Cost); err != nil {
		return err
	}
	err := m.eng.Dispatch(ctx, engine.StartMarketingCampaign{
		Name:          t.Name,
		Channel:       t.Channel,
		Cost:          t.Cost,
		Effectiveness: t.Effectiveness,
		Duration:      t.Duration,
	})
	if err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "launched campaign", "name", t.Name, "channel", t.Channel, "cost", t.Cost)
	return nil
}

// LaunchCustomCampaign starts a player-designed campaign. Its effectiveness
// is derived from cost and duration by [CustomEffectiveness].
func (m *Manager) LaunchCustomCampaign(ctx context.Context, name string, channel models.MarketingChannel, cost float64, duration int) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return m.LaunchCampaign(ctx, models.CampaignTemplate{
		Name:          name,
		Channel:       channel,
		Cost:          cost,
		Effectiveness: CustomEffectiveness(cost, duration),
		Duration:      duration,
	})
}

// CustomEffectiveness scores a custom campaign: one point per 10000 spent,
// rounded, plus 2 for campaigns longer than two turns, capped at 10.
func CustomEffectiveness(cost float64, duration int) float64 {
	score := math.Round(cost / 10000)
	if duration > 2 {
		score += 2
	}
	return math.Min(10, score)
}

// StartActivity starts an operation activity from a template.
func (m *Manager) StartActivity(ctx context.Context, t models.ActivityTemplate) error {
	if err := m.requireCash(t.Cost); err != nil {
		return err
	}
	err := m.eng.Dispatch(ctx, engine.StartOperationActivity{
		Name:       t.Name,
		Type:       t.Type,
		Cost:       t.Cost,
		Efficiency: t.Efficiency,
	})
	if err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "started activity", "name", t.Name, "type", t.Type, "cost", t.Cost)
	return nil
}

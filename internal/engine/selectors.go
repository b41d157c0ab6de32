package engine

import (
	"math"

	"github.com/tatianab/enterprise-empire/internal/models"
)

// Selectors are read-only projections of a state snapshot obtained from
// [Engine.State]. They never modify their input.

func SelectGameState(s models.GameState) models.GameState { return s }

func SelectPlayer(s models.GameState) models.Player { return s.Player }

func SelectCompany(s models.GameState) models.Company { return s.Company }

func SelectResources(s models.GameState) models.Resources { return s.Company.Resources }

func SelectCurrentPhase(s models.GameState) models.GamePhase { return s.CurrentPhase }

func SelectCurrentTurn(s models.GameState) int { return s.CurrentTurn }

func SelectFinancials(s models.GameState) []models.FinancialRecord { return s.Financials }

func SelectMarketing(s models.GameState) []models.MarketingCampaign { return s.Marketing }

func SelectOperations(s models.GameState) []models.OperationActivity { return s.Operations }

// MarketShare is min(25, reputation/4), in percent.
func MarketShare(r models.Resources) float64 {
	return math.Min(25, r.Reputation/4)
}

// GrowthRate is 5 + research/20, in percent.
func GrowthRate(r models.Resources) float64 {
	return 5 + r.Research/20
}

// OperationalEfficiency is 60 + 2 per employee, in percent.
func OperationalEfficiency(r models.Resources) float64 {
	return 60 + r.Employees*2
}

// BusinessMetrics groups the headline numbers shown on the dashboard.
type BusinessMetrics struct {
	CompanyValue          float64
	MarketShare           float64
	GrowthRate            float64
	OperationalEfficiency float64
}

// SelectBusinessMetrics derives the dashboard metrics from s. The values are
// computed on every call and never stored in the state.
func SelectBusinessMetrics(s models.GameState) BusinessMetrics {
	r := s.Company.Resources
	return BusinessMetrics{
		CompanyValue:          s.Company.Value,
		MarketShare:           MarketShare(r),
		GrowthRate:            GrowthRate(r),
		OperationalEfficiency: OperationalEfficiency(r),
	}
}

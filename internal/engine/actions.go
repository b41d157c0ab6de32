package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tatianab/enterprise-empire/internal/models"
)

// ErrInvalidPayload is returned when a transition's payload is structurally
// invalid: unknown enum value, unknown resource, non-finite number, or an
// out-of-range field. Economic rules such as having enough cash are not
// checked here.
var ErrInvalidPayload = errors.New("engine: invalid payload")

// Action is one of the named transitions the engine accepts. The set is
// closed: only types in this package implement it.
type Action interface {
	// Transition returns the transition name used in logs and metrics.
	Transition() string

	validate() error
	apply(s *models.GameState, newID IDFunc)
}

// Reduce computes the state that results from applying a to s. It never
// modifies s. A transition that would leave a resource non-finite is
// rejected like any other invalid payload. On error the returned state is s
// itself.
func Reduce(s models.GameState, a Action, newID IDFunc) (models.GameState, error) {
	if err := a.validate(); err != nil {
		return s, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, a.Transition(), err)
	}
	next := s.Clone()
	a.apply(&next, newID)
	for _, rt := range models.ResourceTypes {
		if v, _ := next.Company.Resources.Get(rt); !finite(v) {
			return s, fmt.Errorf("%w: %s: %s would become %v", ErrInvalidPayload, a.Transition(), rt, v)
		}
	}
	return next, nil
}

// StartNewGame configures the player and company and moves to planning.
// Calling it again simply overwrites the same fields.
type StartNewGame struct {
	PlayerName   string
	CompanyName  string
	BusinessType models.BusinessType
	Difficulty   models.Difficulty
}

func (StartNewGame) Transition() string { return "startNewGame" }

func (a StartNewGame) validate() error {
	var errs []error
	if strings.TrimSpace(a.PlayerName) == "" {
		errs = append(errs, errors.New("player name is required"))
	}
	if strings.TrimSpace(a.CompanyName) == "" {
		errs = append(errs, errors.New("company name is required"))
	}
	if !a.BusinessType.IsValid() {
		errs = append(errs, fmt.Errorf("business type %q is not recognised", a.BusinessType))
	}
	if !a.Difficulty.IsValid() {
		errs = append(errs, fmt.Errorf("difficulty %q is not recognised", a.Difficulty))
	}
	return errors.Join(errs...)
}

func (a StartNewGame) apply(s *models.GameState, _ IDFunc) {
	s.Player.Name = a.PlayerName
	s.Company.Name = a.CompanyName
	s.Company.BusinessType = a.BusinessType
	s.Difficulty = a.Difficulty
	s.CurrentPhase = models.PhasePlanning
	s.GameStarted = true
}

// SetGamePhase jumps to any phase.
type SetGamePhase struct {
	Phase models.GamePhase
}

func (SetGamePhase) Transition() string { return "setGamePhase" }

func (a SetGamePhase) validate() error {
	if !a.Phase.IsValid() {
		return fmt.Errorf("phase %q is not recognised", a.Phase)
	}
	return nil
}

func (a SetGamePhase) apply(s *models.GameState, _ IDFunc) {
	s.CurrentPhase = a.Phase
}

// AdvanceTurn moves to the next turn and back to planning. It does not
// look at GameOver.
type AdvanceTurn struct{}

func (AdvanceTurn) Transition() string { return "advanceTurn" }
func (AdvanceTurn) validate() error { return nil }

func (AdvanceTurn) apply(s *models.GameState, _ IDFunc) {
	s.CurrentTurn++
	s.CurrentPhase = models.PhasePlanning
}

// UpdateResources adds a signed amount to one resource. Results are not
// clamped and may go negative.
type UpdateResources struct {
	ResourceType models.ResourceType
	Amount       float64
}

func (UpdateResources) Transition() string { return "updateResources" }

func (a UpdateResources) validate() error {
	var errs []error
	if !a.ResourceType.IsValid() {
		errs = append(errs, fmt.Errorf("resource %q is not recognised", a.ResourceType))
	}
	if !finite(a.Amount) {
		errs = append(errs, fmt.Errorf("amount %v is not a finite number", a.Amount))
	}
	return errors.Join(errs...)
}

func (a UpdateResources) apply(s *models.GameState, _ IDFunc) {
	s.Company.Resources.Add(a.ResourceType, a.Amount)
}

// AddFinancialRecord appends a ledger entry for the current turn and moves
// cash: revenue and loans add Amount, investments and expenses subtract it.
type AddFinancialRecord struct {
	Type        models.FinancialActionType
	Amount      float64
	Description string
}

func (AddFinancialRecord) Transition() string { return "addFinancialRecord" }

func (a AddFinancialRecord) validate() error {
	var errs []error
	if !a.Type.IsValid() {
		errs = append(errs, fmt.Errorf("financial type %q is not recognised", a.Type))
	}
	if !finite(a.Amount) || a.Amount <= 0 {
		errs = append(errs, fmt.Errorf("amount %v must be a positive number", a.Amount))
	}
	return errors.Join(errs...)
}

func (a AddFinancialRecord) apply(s *models.GameState, newID IDFunc) {
	s.Financials = append(s.Financials, models.FinancialRecord{
		ID:          newID("fin"),
		Type:        a.Type,
		Amount:      a.Amount,
		Description: a.Description,
		Turn:        s.CurrentTurn,
	})
	if a.Type.Inflow() {
		s.Company.Resources.Cash += a.Amount
	} else {
		s.Company.Resources.Cash -= a.Amount
	}
}

// StartMarketingCampaign pays for a campaign and records it.
type StartMarketingCampaign struct {
	Name          string
	Channel       models.MarketingChannel
	Cost          float64
	Effectiveness float64
	Duration      int
}

func (StartMarketingCampaign) Transition() string { return "startMarketingCampaign" }

func (a StartMarketingCampaign) validate() error {
	var errs []error
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, errors.New("campaign name is required"))
	}
	if !a.Channel.IsValid() {
		errs = append(errs, fmt.Errorf("channel %q is not recognised", a.Channel))
	}
	if !finite(a.Cost) || a.Cost < 0 {
		errs = append(errs, fmt.Errorf("cost %v must be a non-negative number", a.Cost))
	}
	if !finite(a.Effectiveness) || a.Effectiveness < 0 || a.Effectiveness > 10 {
		errs = append(errs, fmt.Errorf("effectiveness %v is out of range [0, 10]", a.Effectiveness))
	}
	if a.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration %d must not be negative", a.Duration))
	}
	return errors.Join(errs...)
}

func (a StartMarketingCampaign) apply(s *models.GameState, newID IDFunc) {
	s.Company.Resources.Cash -= a.Cost
	s.Marketing = append(s.Marketing, models.MarketingCampaign{
		ID:            newID("mkt"),
		Name:          a.Name,
		Channel:       a.Channel,
		Cost:          a.Cost,
		Effectiveness: a.Effectiveness,
		TurnCreated:   s.CurrentTurn,
		Duration:      a.Duration,
	})
}

// StartOperationActivity pays for an activity and records it.
type StartOperationActivity struct {
	Name       string
	Type       models.OperationType
	Cost       float64
	Efficiency float64
}

func (StartOperationActivity) Transition() string { return "startOperationActivity" }

func (a StartOperationActivity) validate() error {
	var errs []error
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, errors.New("activity name is required"))
	}
	if !a.Type.IsValid() {
		errs = append(errs, fmt.Errorf("operation type %q is not recognised", a.Type))
	}
	if !finite(a.Cost) || a.Cost < 0 {
		errs = append(errs, fmt.Errorf("cost %v must be a non-negative number", a.Cost))
	}
	if !finite(a.Efficiency) || a.Efficiency < 0 {
		errs = append(errs, fmt.Errorf("efficiency %v must be a non-negative number", a.Efficiency))
	}
	return errors.Join(errs...)
}

func (a StartOperationActivity) apply(s *models.GameState, newID IDFunc) {
	s.Company.Resources.Cash -= a.Cost
	s.Operations = append(s.Operations, models.OperationActivity{
		ID:          newID("op"),
		Name:        a.Name,
		Type:        a.Type,
		Cost:        a.Cost,
		Efficiency:  a.Efficiency,
		TurnCreated: s.CurrentTurn,
	})
}

// EndGame marks the game as over. Only ResetGame undoes it.
type EndGame struct{}

func (EndGame) Transition() string { return "endGame" }
func (EndGame) validate() error { return nil }

func (EndGame) apply(s *models.GameState, _ IDFunc) {
	s.GameOver = true
}

// ResetGame discards all history and returns to [models.DefaultState].
type ResetGame struct{}

func (ResetGame) Transition() string { return "resetGame" }
func (ResetGame) validate() error { return nil }

func (ResetGame) apply(s *models.GameState, _ IDFunc) {
	*s = models.DefaultState()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

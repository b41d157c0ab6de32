package models

// Player represents the person running the company.
type Player struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Experience int    `yaml:"experience"` // not changed by any transition yet
}

// Resources holds the company's numeric counters.
type Resources struct {
	Cash       float64 `yaml:"cash"`
	Employees  float64 `yaml:"employees"`
	Inventory  float64 `yaml:"inventory"`
	Reputation float64 `yaml:"reputation"`
	Research   float64 `yaml:"research"`
}

// Company represents the player's business.
type Company struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	BusinessType BusinessType `yaml:"business_type"`
	Value        float64      `yaml:"value"` // static valuation, not changed by any transition yet
	Resources    Resources    `yaml:"resources"`
}

// FinancialRecord is a single entry in the company ledger.
type FinancialRecord struct {
	ID          string              `yaml:"id"`
	Type        FinancialActionType `yaml:"type"`
	Amount      float64             `yaml:"amount"`
	Description string              `yaml:"description"`
	Turn        int                 `yaml:"turn"`
}

// MarketingCampaign is a campaign launched during some turn.
type MarketingCampaign struct {
	ID            string           `yaml:"id"`
	Name          string           `yaml:"name"`
	Channel       MarketingChannel `yaml:"channel"`
	Cost          float64          `yaml:"cost"`
	Effectiveness float64          `yaml:"effectiveness"` // 0-10
	TurnCreated   int              `yaml:"turn_created"`
	Duration      int              `yaml:"duration"` // in turns, recorded only
}

// OperationActivity is an operational investment started during some turn.
type OperationActivity struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Type        OperationType `yaml:"type"`
	Cost        float64       `yaml:"cost"`
	Efficiency  float64       `yaml:"efficiency"`
	TurnCreated int           `yaml:"turn_created"`
}

// GameState is the root of everything the engine owns.
type GameState struct {
	Player       Player              `yaml:"player"`
	Company      Company             `yaml:"company"`
	Financials   []FinancialRecord   `yaml:"financials"`
	Marketing    []MarketingCampaign `yaml:"marketing"`
	Operations   []OperationActivity `yaml:"operations"`
	CurrentPhase GamePhase           `yaml:"current_phase"`
	CurrentTurn  int                 `yaml:"current_turn"`
	Difficulty   Difficulty          `yaml:"difficulty"`
	GameStarted  bool                `yaml:"game_started"`
	GameOver     bool                `yaml:"game_over"`
}

// DefaultState returns the state every new game starts from.
func DefaultState() GameState {
	return GameState{
		Player: Player{
			ID:   "1",
			Name: "Player",
		},
		Company: Company{
			ID:           "1",
			Name:         "My Enterprise",
			BusinessType: BusinessTechnology,
			Value:        100000,
			Resources: Resources{
				Cash:       50000,
				Employees:  5,
				Inventory:  100,
				Reputation: 10,
				Research:   0,
			},
		},
		Financials:   []FinancialRecord{},
		Marketing:    []MarketingCampaign{},
		Operations:   []OperationActivity{},
		CurrentPhase: PhaseSetup,
		CurrentTurn:  1,
		Difficulty:   DifficultyMedium,
	}
}

// Clone returns a deep copy of s. Slices are copied so the result can be
// mutated without affecting s.
func (s GameState) Clone() GameState {
	c := s
	c.Financials = append([]FinancialRecord{}, s.Financials...)
	c.Marketing = append([]MarketingCampaign{}, s.Marketing...)
	c.Operations = append([]OperationActivity{}, s.Operations...)
	return c
}

// Get returns the value of the named resource.
func (r Resources) Get(t ResourceType) (float64, bool) {
	switch t {
	case ResourceCash:
		return r.Cash, true
	case ResourceEmployees:
		return r.Employees, true
	case ResourceInventory:
		return r.Inventory, true
	case ResourceReputation:
		return r.Reputation, true
	case ResourceResearch:
		return r.Research, true
	}
	return 0, false
}

// Add adds delta to the named resource. It reports false for unknown
// resource types and leaves r unchanged.
func (r *Resources) Add(t ResourceType, delta float64) bool {
	switch t {
	case ResourceCash:
		r.Cash += delta
	case ResourceEmployees:
		r.Employees += delta
	case ResourceInventory:
		r.Inventory += delta
	case ResourceReputation:
		r.Reputation += delta
	case ResourceResearch:
		r.Research += delta
	default:
		return false
	}
	return true
}

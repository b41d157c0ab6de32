package models

import "slices"

// GamePhase is the sub-mode of a turn.
type GamePhase string

const (
	PhaseSetup      GamePhase = "setup"
	PhasePlanning   GamePhase = "planning"
	PhaseOperations GamePhase = "operations"
	PhaseMarketing  GamePhase = "marketing"
	PhaseFinance    GamePhase = "finance"
	PhaseResults    GamePhase = "results"
)

// GamePhases lists every phase in display order.
var GamePhases = []GamePhase{PhaseSetup, PhasePlanning, PhaseOperations, PhaseMarketing, PhaseFinance, PhaseResults}

// IsValid reports whether p is a known phase.
func (p GamePhase) IsValid() bool { return slices.Contains(GamePhases, p) }

// BusinessType is the industry a company operates in.
type BusinessType string

const (
	BusinessTechnology    BusinessType = "technology"
	BusinessRetail        BusinessType = "retail"
	BusinessManufacturing BusinessType = "manufacturing"
	BusinessService       BusinessType = "service"
	BusinessFood          BusinessType = "food"
)

var BusinessTypes = []BusinessType{BusinessTechnology, BusinessRetail, BusinessManufacturing, BusinessService, BusinessFood}

func (b BusinessType) IsValid() bool { return slices.Contains(BusinessTypes, b) }

// MarketingChannel is where a campaign runs.
type MarketingChannel string

const (
	ChannelOnline      MarketingChannel = "online"
	ChannelPrint       MarketingChannel = "print"
	ChannelRadio       MarketingChannel = "radio"
	ChannelTelevision  MarketingChannel = "television"
	ChannelSocialMedia MarketingChannel = "social_media"
)

var MarketingChannels = []MarketingChannel{ChannelOnline, ChannelPrint, ChannelRadio, ChannelTelevision, ChannelSocialMedia}

func (c MarketingChannel) IsValid() bool { return slices.Contains(MarketingChannels, c) }

// OperationType classifies an operation activity.
type OperationType string

const (
	OperationProduction      OperationType = "production"
	OperationLogistics       OperationType = "logistics"
	OperationResearch        OperationType = "research"
	OperationCustomerService OperationType = "customer_service"
)

var OperationTypes = []OperationType{OperationProduction, OperationLogistics, OperationResearch, OperationCustomerService}

func (o OperationType) IsValid() bool { return slices.Contains(OperationTypes, o) }

// FinancialActionType classifies a ledger entry.
type FinancialActionType string

const (
	FinancialInvest  FinancialActionType = "invest"
	FinancialLoan    FinancialActionType = "loan"
	FinancialExpense FinancialActionType = "expense"
	FinancialRevenue FinancialActionType = "revenue"
)

var FinancialActionTypes = []FinancialActionType{FinancialInvest, FinancialLoan, FinancialExpense, FinancialRevenue}

func (f FinancialActionType) IsValid() bool { return slices.Contains(FinancialActionTypes, f) }

// Inflow reports whether records of this type add cash.
func (f FinancialActionType) Inflow() bool {
	return f == FinancialRevenue || f == FinancialLoan
}

// Difficulty is the game difficulty chosen at setup.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) IsValid() bool { return slices.Contains(Difficulties, d) }

// ResourceType names a field of [Resources].
type ResourceType string

const (
	ResourceCash       ResourceType = "cash"
	ResourceEmployees  ResourceType = "employees"
	ResourceInventory  ResourceType = "inventory"
	ResourceReputation ResourceType = "reputation"
	ResourceResearch   ResourceType = "research"
)

var ResourceTypes = []ResourceType{ResourceCash, ResourceEmployees, ResourceInventory, ResourceReputation, ResourceResearch}

func (r ResourceType) IsValid() bool { return slices.Contains(ResourceTypes, r) }

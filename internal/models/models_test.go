package models

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGameStateYAML(t *testing.T) {
	state := DefaultState()
	state.Financials = append(state.Financials, FinancialRecord{
		ID:     "fin-1",
		Type:   FinancialRevenue,
		Amount: 1200,
		Turn:   1,
	})
	state.Marketing = append(state.Marketing, MarketingCampaign{
		ID:       "mkt-1",
		Name:     "Launch",
		Channel:  ChannelSocialMedia,
		Duration: 3,
	})

	data, err := yaml.Marshal(state)
	if err != nil {
		t.Fatalf("Failed to marshal state: %v", err)
	}
	if !strings.Contains(string(data), "channel: social_media") {
		t.Errorf("Expected channel to marshal as its identifier, got:\n%s", data)
	}

	var state2 GameState
	if err := yaml.Unmarshal(data, &state2); err != nil {
		t.Fatalf("Failed to unmarshal state: %v", err)
	}

	if state2.Company.Resources.Cash != 50000 {
		t.Errorf("Expected cash 50000, got %v", state2.Company.Resources.Cash)
	}
	if len(state2.Financials) != 1 || state2.Financials[0].Type != FinancialRevenue {
		t.Errorf("Expected one revenue record, got %+v", state2.Financials)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	state := DefaultState()
	state.Operations = append(state.Operations, OperationActivity{ID: "op-1"})

	c := state.Clone()
	c.Operations[0].Name = "changed"
	c.Operations = append(c.Operations, OperationActivity{ID: "op-2"})
	c.Company.Resources.Cash = 1

	if state.Operations[0].Name != "" {
		t.Errorf("Clone shares operation storage with its source")
	}
	if len(state.Operations) != 1 {
		t.Errorf("Expected source to keep 1 operation, got %d", len(state.Operations))
	}
	if state.Company.Resources.Cash != 50000 {
		t.Errorf("Clone shares resources with its source")
	}
}

func TestResourcesAdd(t *testing.T) {
	tests := []struct {
		resource ResourceType
		delta    float64
		want     float64
		ok       bool
	}{
		{ResourceCash, -5000, 45000, true},
		{ResourceEmployees, 1, 6, true},
		{ResourceInventory, 20, 120, true},
		{ResourceReputation, -15, -5, true},
		{ResourceResearch, 40, 40, true},
		{"morale", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			r := DefaultState().Company.Resources
			if ok := r.Add(tt.resource, tt.delta); ok != tt.ok {
				t.Fatalf("Add(%q) ok = %v, want %v", tt.resource, ok, tt.ok)
			}
			got, _ := r.Get(tt.resource)
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.resource, got, tt.want)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	if !PhaseResults.IsValid() || GamePhase("lunch").IsValid() {
		t.Errorf("GamePhase.IsValid misclassifies values")
	}
	if !ChannelSocialMedia.IsValid() || MarketingChannel("social").IsValid() {
		t.Errorf("MarketingChannel.IsValid misclassifies values")
	}
	if !FinancialLoan.Inflow() || FinancialInvest.Inflow() {
		t.Errorf("Inflow misclassifies loan/invest")
	}
}

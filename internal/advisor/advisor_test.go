package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tatianab/enterprise-empire/internal/models"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func sampleState() models.GameState {
	s := models.DefaultState()
	s.Player.Name = "Ada"
	s.Company.Name = "Engines Ltd"
	s.CurrentTurn = 4
	s.CurrentPhase = models.PhaseFinance
	for i := 0; i < 7; i++ {
		s.Financials = append(s.Financials, models.FinancialRecord{
			ID:          "fin",
			Type:        models.FinancialRevenue,
			Amount:      float64(1000 * (i + 1)),
			Description: "sale",
			Turn:        i/2 + 1,
		})
	}
	return s
}

func TestAdvise(t *testing.T) {
	gen := &fakeGenerator{reply: "```yaml\nsummary: Solid cash position.\nrecommendations:\n  - action: hire employees\n    reason: efficiency is only 70%\n```"}
	a, err := New(gen, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	advice, err := a.Advise(context.Background(), sampleState())
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if advice.Summary != "Solid cash position." {
		t.Errorf("Unexpected summary %q", advice.Summary)
	}
	if len(advice.Recommendations) != 1 || advice.Recommendations[0].Action != "hire employees" {
		t.Errorf("Unexpected recommendations %+v", advice.Recommendations)
	}

	for _, want := range []string{"Engines Ltd", "Turn: 4", "Cash: 50000", "Market share: 2.5%", "social_media", "customer_service"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, gen.prompt)
		}
	}
	// Only the most recent transactions are included.
	if strings.Contains(gen.prompt, "revenue 2000") || !strings.Contains(gen.prompt, "revenue 7000") {
		t.Errorf("Prompt should list only the last %d transactions:\n%s", recentFinancials, gen.prompt)
	}
}

func TestAdviseGeneratorError(t *testing.T) {
	boom := errors.New("quota exceeded")
	a, _ := New(&fakeGenerator{err: boom}, nil)
	if _, err := a.Advise(context.Background(), models.DefaultState()); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped generator error, got %v", err)
	}
}

func TestParseAdvice(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantErr   error
		wantCount int
	}{
		{name: "empty", text: "  ", wantErr: ErrEmptyResponse},
		{name: "empty fence", text: "```yaml\n```", wantErr: ErrEmptyResponse},
		{name: "no fields", text: "other: 1", wantErr: ErrEmptyResponse},
		{
			name:      "truncated to max",
			text:      "summary: s\nrecommendations:\n  - action: a\n  - action: b\n  - action: c\n  - action: d\n",
			wantCount: maxRecommendations,
		},
		{name: "summary only", text: "summary: keep going", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, err := parseAdvice(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAdvice: %v", err)
			}
			if len(advice.Recommendations) != tt.wantCount {
				t.Errorf("Expected %d recommendations, got %d", tt.wantCount, len(advice.Recommendations))
			}
		})
	}
}

func TestParseAdviceInvalidYAML(t *testing.T) {
	if _, err := parseAdvice("summary: [unclosed"); err == nil {
		t.Error("Expected YAML error")
	}
}

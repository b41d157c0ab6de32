package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/enterprise-empire/internal/actions"
	"github.com/tatianab/enterprise-empire/internal/advisor"
	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
)

func newTestModel(t *testing.T) (model, *engine.Engine) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.NewEngine(engine.WithLogger(logger))
	mgr := actions.NewManager(eng, nil, logger)
	return NewModel(eng, mgr, nil), eng
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startGame(t *testing.T) (model, *engine.Engine) {
	t.Helper()
	m, eng := newTestModel(t)
	m = press(t, m, enter, enter, enter, enter)
	return m, eng
}

func TestSetupStartsGame(t *testing.T) {
	m, eng := startGame(t)

	if m.view != viewHome {
		t.Errorf("Expected home view after setup, got %v", m.view)
	}
	if m.form != nil {
		t.Error("Expected setup form to be closed")
	}
	s := eng.State()
	if !s.GameStarted || s.CurrentPhase != models.PhasePlanning {
		t.Errorf("Expected started game in planning, got started=%v phase=%s", s.GameStarted, s.CurrentPhase)
	}
	if s.Company.Name != "My Enterprise" || s.Player.Name != "Player" {
		t.Errorf("Expected prefilled names, got %q / %q", s.Player.Name, s.Company.Name)
	}
}

func TestSetupChoosesOptions(t *testing.T) {
	m, eng := newTestModel(t)
	// Move to business type and pick the next option, then submit.
	m = press(t, m, down, down, right, enter, enter)

	if got := eng.State().Company.BusinessType; got != models.BusinessRetail {
		t.Errorf("Expected business type %s, got %s", models.BusinessRetail, got)
	}
	if m.view != viewHome {
		t.Errorf("Expected home view, got %v", m.view)
	}
}

func TestSetupRejectsBlankName(t *testing.T) {
	m, eng := newTestModel(t)
	m.form.fields[0].input.SetValue("   ")
	m = press(t, m, enter, enter, enter, enter)

	if m.err == nil {
		t.Fatal("Expected an error for a blank player name")
	}
	if m.view != viewSetup {
		t.Errorf("Expected to stay on setup, got %v", m.view)
	}
	if eng.State().GameStarted {
		t.Error("Expected game not to start")
	}
}

func TestAdvanceTurnKey(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("n"), runes("n"))

	if got := eng.State().CurrentTurn; got != 3 {
		t.Errorf("Expected turn 3, got %d", got)
	}
	if m.state.CurrentTurn != 3 {
		t.Errorf("Expected model to show turn 3, got %d", m.state.CurrentTurn)
	}
}

func TestViewSwitchSetsPhase(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("4"))

	if m.view != viewMarketing {
		t.Errorf("Expected marketing view, got %v", m.view)
	}
	if got := eng.State().CurrentPhase; got != models.PhaseMarketing {
		t.Errorf("Expected marketing phase, got %s", got)
	}
}

func TestOverviewViewsReturnToPlanning(t *testing.T) {
	for _, key := range []string{"1", "2"} {
		t.Run(key, func(t *testing.T) {
			m, eng := startGame(t)
			m = press(t, m, runes("4"), runes(key))

			if got := eng.State().CurrentPhase; got != models.PhasePlanning {
				t.Errorf("Expected planning phase, got %s", got)
			}
			if m.state.CurrentPhase != models.PhasePlanning {
				t.Errorf("Expected model to show planning, got %s", m.state.CurrentPhase)
			}
		})
	}
}

func TestHireKey(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("2"), runes("h"))

	r := eng.State().Company.Resources
	if r.Cash != 45000 || r.Employees != 6 {
		t.Errorf("Expected cash 45000 and 6 employees, got %v and %v", r.Cash, r.Employees)
	}
	if m.err != nil {
		t.Errorf("Unexpected error: %v", m.err)
	}
}

func TestLaunchCampaignFromList(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("4"), down, enter)

	s := eng.State()
	if len(s.Marketing) != 1 {
		t.Fatalf("Expected one campaign, got %d", len(s.Marketing))
	}
	want := models.DefaultCatalog().Campaigns[1]
	if s.Marketing[0].Name != want.Name {
		t.Errorf("Expected campaign %q, got %q", want.Name, s.Marketing[0].Name)
	}
	if s.Company.Resources.Cash != 50000-want.Cost {
		t.Errorf("Expected cash %v, got %v", 50000-want.Cost, s.Company.Resources.Cash)
	}
}

func TestUnaffordableActivityShowsError(t *testing.T) {
	m, eng := startGame(t)
	if err := eng.Dispatch(context.Background(), engine.UpdateResources{ResourceType: models.ResourceCash, Amount: -45000}); err != nil {
		t.Fatal(err)
	}
	m = press(t, m, runes("5"), enter)

	if m.err == nil {
		t.Fatal("Expected insufficient funds error")
	}
	if len(eng.State().Operations) != 0 {
		t.Error("Expected no activity to be started")
	}
}

func TestTransactionForm(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("3"), runes("t"))
	if m.form == nil {
		t.Fatal("Expected transaction form")
	}
	// Cycle invest -> loan, accept the default amount, describe it.
	m = press(t, m, right, enter, enter, runes("bank"), enter)

	s := eng.State()
	if len(s.Financials) != 1 {
		t.Fatalf("Expected one record, got %d", len(s.Financials))
	}
	rec := s.Financials[0]
	if rec.Type != models.FinancialLoan || rec.Amount != 10000 || rec.Description != "bank" {
		t.Errorf("Unexpected record %+v", rec)
	}
	if s.Company.Resources.Cash != 60000 {
		t.Errorf("Expected cash 60000, got %v", s.Company.Resources.Cash)
	}
	if m.form != nil {
		t.Error("Expected form to close after submit")
	}
}

func TestTransactionFormRejectsBadAmount(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("3"), runes("t"))
	m.form.fields[1].input.SetValue("lots")
	m = press(t, m, enter, enter, enter)

	if m.err == nil || !strings.Contains(m.err.Error(), "not a number") {
		t.Errorf("Expected parse error, got %v", m.err)
	}
	if len(eng.State().Financials) != 0 {
		t.Error("Expected no record")
	}

	m = press(t, m, esc)
	if m.form != nil {
		t.Error("Expected esc to close the form")
	}
}

func TestEndGameBlocksActions(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("e"))

	s := eng.State()
	if !s.GameOver || s.CurrentPhase != models.PhaseResults {
		t.Fatalf("Expected game over in results, got over=%v phase=%s", s.GameOver, s.CurrentPhase)
	}

	m = press(t, m, runes("n"), runes("2"), runes("h"))
	s = eng.State()
	if s.CurrentTurn != 1 || s.Company.Resources.Employees != 5 {
		t.Errorf("Expected no changes after game over, got turn %d employees %v", s.CurrentTurn, s.Company.Resources.Employees)
	}

	m = press(t, m, runes("1"))
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("Expected home view to announce game over")
	}
}

func TestResetReturnsToSetup(t *testing.T) {
	m, eng := startGame(t)
	m = press(t, m, runes("n"), runes("r"))

	if m.view != viewSetup || m.form == nil {
		t.Errorf("Expected setup form after reset, got view %v", m.view)
	}
	if s := eng.State(); s.GameStarted || s.CurrentTurn != 1 {
		t.Errorf("Expected default state, got started=%v turn=%d", s.GameStarted, s.CurrentTurn)
	}
}

type staticGenerator string

func (g staticGenerator) Generate(context.Context, string) (string, error) {
	return string(g), nil
}

func TestAdvisorKey(t *testing.T) {
	m, _ := startGame(t)
	adv, err := advisor.New(staticGenerator("summary: Keep going\nrecommendations:\n  - action: Hire\n    reason: Growth\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	m.advisor = adv

	next, cmd := m.Update(runes("a"))
	m = next.(model)
	if cmd == nil || !m.advising {
		t.Fatal("Expected an advice request")
	}
	next, _ = m.Update(cmd())
	m = next.(model)

	if m.advising || m.advice == nil {
		t.Fatalf("Expected advice, got %+v (err %v)", m.advice, m.err)
	}
	if !strings.Contains(m.View(), "Keep going") {
		t.Error("Expected advice summary in home view")
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50000, "$50,000"},
		{-1500, "-$1,500"},
		{0, "$0"},
	}
	for _, tt := range tests {
		if got := money(tt.in); got != tt.want {
			t.Errorf("money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/enterprise-empire/internal/actions"
	"github.com/tatianab/enterprise-empire/internal/advisor"
	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
)

type view int

const (
	viewSetup view = iota
	viewHome
	viewCompany
	viewFinance
	viewMarketing
	viewOperations
)

type formKind int

const (
	formSetup formKind = iota
	formTransaction
	formCampaign
)

type model struct {
	view     view
	engine   *engine.Engine
	actions  *actions.Manager
	advisor  *advisor.Advisor
	state    models.GameState
	form     *form
	formKind formKind
	cursor   int
	status   string
	err      error
	advice   *advisor.Advice
	advising bool
	viewport viewport.Model
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#888888"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF6B2B")).Bold(true)
)

// NewModel returns the dashboard model. adv may be nil to disable advice.
func NewModel(eng *engine.Engine, mgr *actions.Manager, adv *advisor.Advisor) model {
	m := model{
		engine:   eng,
		actions:  mgr,
		advisor:  adv,
		viewport: viewport.New(60, 10),
	}
	m.refresh()
	if m.state.GameStarted {
		m.view = viewHome
	} else {
		m.openSetup()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

type adviceMsg struct {
	advice *advisor.Advice
	err    error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = max(msg.Height-16, 5)
		m.viewport.SetContent(m.renderHistory())

	case adviceMsg:
		m.advising = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.advice = msg.advice
		m.status = "The advisor has new recommendations."
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if m.formKind == formSetup {
			return m, tea.Quit
		}
		m.form = nil
		m.err = nil
		return m, nil
	}

	submitted, cmd := m.form.Update(msg)
	if !submitted {
		return m, cmd
	}

	ctx := context.Background()
	var err error
	switch m.formKind {
	case formSetup:
		err = m.engine.Dispatch(ctx, engine.StartNewGame{
			PlayerName:   m.form.value(0),
			CompanyName:  m.form.value(1),
			BusinessType: models.BusinessType(m.form.value(2)),
			Difficulty:   models.Difficulty(m.form.value(3)),
		})
		if err == nil {
			m.view = viewHome
			m.status = fmt.Sprintf("Welcome to %s!", m.form.value(1))
		}

	case formTransaction:
		var amount float64
		amount, err = parseNumber("amount", m.form.value(1))
		if err == nil {
			kind := models.FinancialActionType(m.form.value(0))
			err = m.actions.RecordTransaction(ctx, kind, amount, m.form.value(2))
			m.status = fmt.Sprintf("Recorded %s of %s.", transactionLabel(kind), money(amount))
		}

	case formCampaign:
		var cost float64
		var duration int
		cost, err = parseNumber("cost", m.form.value(2))
		if err == nil {
			duration, err = strconv.Atoi(m.form.value(3))
			if err != nil {
				err = fmt.Errorf("duration %q is not a whole number", m.form.value(3))
			}
		}
		if err == nil {
			name := m.form.value(0)
			err = m.actions.LaunchCustomCampaign(ctx, name, models.MarketingChannel(m.form.value(1)), cost, duration)
			m.status = fmt.Sprintf("Launched %s.", name)
		}
	}

	if err != nil {
		m.status = ""
		m.err = err
		return m, nil
	}
	m.form = nil
	m.err = nil
	m.refresh()
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.err = nil

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "1":
		m.switchView(viewHome)
		return m, nil
	case "2":
		m.switchView(viewCompany)
		return m, nil
	case "3":
		m.switchView(viewFinance)
		return m, nil
	case "4":
		m.switchView(viewMarketing)
		return m, nil
	case "5":
		m.switchView(viewOperations)
		return m, nil
	case "r":
		m.dispatch(ctx, engine.ResetGame{})
		m.advice = nil
		m.status = ""
		m.openSetup()
		return m, nil
	case "a":
		if m.advisor != nil && !m.advising {
			m.advising = true
			m.status = "Asking the advisor..."
			return m, m.requestAdvice()
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	// Everything below changes the company and is closed once the game is over.
	if m.state.GameOver {
		if m.view == viewFinance {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "n":
		if m.dispatch(ctx, engine.AdvanceTurn{}) {
			m.status = fmt.Sprintf("Turn %d begins.", m.state.CurrentTurn)
			if m.view != viewHome && m.view != viewCompany {
				m.view = viewHome
			}
		}
	case "e":
		if m.dispatch(ctx, engine.SetGamePhase{Phase: models.PhaseResults}) && m.dispatch(ctx, engine.EndGame{}) {
			m.view = viewHome
			m.status = "Game over."
		}
	case "h":
		if m.view == viewCompany {
			m.run(m.actions.Hire(ctx, 1), "Hired a new employee.")
		}
	case "t":
		if m.view == viewFinance {
			m.openTransaction()
		}
	case "enter":
		m.selectItem(ctx)
	default:
		if m.view == viewFinance {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// switchView moves to v and enters its phase. Home and company are
// planning views.
func (m *model) switchView(v view) {
	if !m.state.GameStarted {
		return
	}
	m.view = v
	m.cursor = 0
	m.status = ""
	if m.state.GameOver {
		return
	}
	phase := map[view]models.GamePhase{
		viewHome:       models.PhasePlanning,
		viewCompany:    models.PhasePlanning,
		viewFinance:    models.PhaseFinance,
		viewMarketing:  models.PhaseMarketing,
		viewOperations: models.PhaseOperations,
	}
	if p, ok := phase[v]; ok && m.state.CurrentPhase != p {
		m.dispatch(context.Background(), engine.SetGamePhase{Phase: p})
	}
}

func (m *model) selectItem(ctx context.Context) {
	cat := m.actions.Catalog()
	switch m.view {
	case viewMarketing:
		if m.cursor == len(cat.Campaigns) {
			m.openCampaign()
			return
		}
		t := cat.Campaigns[m.cursor]
		m.run(m.actions.LaunchCampaign(ctx, t), fmt.Sprintf("Launched %s.", t.Name))
	case viewOperations:
		t := cat.Activities[m.cursor]
		m.run(m.actions.StartActivity(ctx, t), fmt.Sprintf("Started %s.", t.Name))
	}
}

func (m model) listLen() int {
	switch m.view {
	case viewMarketing:
		return len(m.actions.Catalog().Campaigns) + 1
	case viewOperations:
		return len(m.actions.Catalog().Activities)
	}
	return 0
}

// dispatch sends a directly to the engine and reports whether it was applied.
func (m *model) dispatch(ctx context.Context, a engine.Action) bool {
	if err := m.engine.Dispatch(ctx, a); err != nil {
		m.err = err
		return false
	}
	m.refresh()
	return true
}

func (m *model) run(err error, status string) {
	if err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.status = status
	m.refresh()
}

func (m *model) refresh() {
	m.state = m.engine.State()
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m *model) openSetup() {
	m.view = viewSetup
	m.formKind = formSetup
	m.form = newForm("Set Up Your Company",
		textField("Your Name", m.state.Player.Name, "Player"),
		textField("Company Name", m.state.Company.Name, "My Enterprise"),
		choiceField("Business Type", stringsOf(models.BusinessTypes), string(m.state.Company.BusinessType)),
		choiceField("Difficulty", stringsOf(models.Difficulties), string(m.state.Difficulty)),
	)
}

func (m *model) openTransaction() {
	m.formKind = formTransaction
	m.form = newForm("Financial Action",
		choiceField("Transaction Type", stringsOf(models.FinancialActionTypes), string(models.FinancialInvest)),
		textField("Amount ($)", "10000", "10000"),
		textField("Description", "", "Enter a description..."),
	)
}

func (m *model) openCampaign() {
	m.formKind = formCampaign
	m.form = newForm("Custom Campaign",
		textField("Campaign Name", "", "Spring launch"),
		choiceField("Channel", stringsOf(models.MarketingChannels), string(models.ChannelSocialMedia)),
		textField("Budget ($)", "10000", "10000"),
		textField("Duration (turns)", "3", "3"),
	)
}

func (m model) requestAdvice() tea.Cmd {
	adv := m.advisor
	state := m.state.Clone()
	return func() tea.Msg {
		advice, err := adv.Advise(context.Background(), state)
		return adviceMsg{advice: advice, err: err}
	}
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	return v, nil
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Run starts the dashboard and blocks until the player quits.
func Run(eng *engine.Engine, mgr *actions.Manager, adv *advisor.Advisor) error {
	p := tea.NewProgram(NewModel(eng, mgr, adv), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

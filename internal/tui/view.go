package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/enterprise-empire/internal/actions"
	"github.com/tatianab/enterprise-empire/internal/engine"
)

var tabs = []struct {
	view  view
	label string
}{
	{viewHome, "1 Home"},
	{viewCompany, "2 Company"},
	{viewFinance, "3 Finance"},
	{viewMarketing, "4 Marketing"},
	{viewOperations, "5 Operations"},
}

func (m model) View() string {
	if m.view == viewSetup {
		s := "Welcome to Enterprise Empire!\n\n" + m.form.View()
		if m.err != nil {
			s += errorStyle.Render("Error: "+m.err.Error()) + "\n\n"
		}
		s += helpStyle.Render("Enter: next field / start  Tab: move  ←/→: change option  Esc: quit")
		return "\n" + s + "\n"
	}

	var body string
	if m.form != nil {
		body = m.form.View()
	} else {
		switch m.view {
		case viewHome:
			body = m.renderHome()
		case viewCompany:
			body = m.renderCompany()
		case viewFinance:
			body = m.renderFinance()
		case viewMarketing:
			body = m.renderMarketing()
		case viewOperations:
			body = m.renderOperations()
		}
	}

	mainWidth := int(float64(m.width) * 0.70)
	main := lipgloss.NewStyle().Width(mainWidth).Render(body)
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderState())

	var footer []string
	if m.err != nil {
		footer = append(footer, errorStyle.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		footer = append(footer, positiveStyle.Render(m.status))
	}
	footer = append(footer, helpStyle.Render(m.help()))

	s := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		mainView,
		"\n"+strings.Join(footer, "\n"),
	)
	return "\n" + s + "\n"
}

func (m model) renderTabs() string {
	out := make([]string, len(tabs))
	for i, t := range tabs {
		if t.view == m.view {
			out[i] = activeTabStyle.Render(t.label)
		} else {
			out[i] = tabStyle.Render(t.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m model) help() string {
	if m.form != nil {
		return "Enter: next field / submit  Tab: move  ←/→: change option  Esc: cancel"
	}
	if m.state.GameOver {
		return "1-5: views  r: new game  q: quit"
	}
	keys := "1-5: views  n: next turn  e: end game  r: reset  q: quit"
	if m.advisor != nil {
		keys += "  a: advisor"
	}
	switch m.view {
	case viewCompany:
		keys = "h: hire  " + keys
	case viewFinance:
		keys = "t: transaction  ↑/↓: scroll  " + keys
	case viewMarketing, viewOperations:
		keys = "↑/↓: select  enter: start  " + keys
	}
	return keys
}

// renderState is the sidebar shown next to every view.
func (m model) renderState() string {
	s := m.state
	metrics := engine.SelectBusinessMetrics(s)

	company := titleStyle.Render("COMPANY") + "\n" +
		s.Company.Name + "\n" +
		labelStyle.Render(fmt.Sprintf("%s · %s", s.Company.BusinessType, s.Difficulty)) + "\n\n"

	turn := titleStyle.Render("TURN") + "\n" +
		fmt.Sprintf("%d (%s)\n\n", s.CurrentTurn, s.CurrentPhase)

	r := s.Company.Resources
	resources := titleStyle.Render("RESOURCES") + "\n" +
		fmt.Sprintf("Cash: %s\nEmployees: %s\nInventory: %s\nReputation: %s\nResearch: %s\n\n",
			money(r.Cash), number(r.Employees), number(r.Inventory), number(r.Reputation), number(r.Research))

	kpis := titleStyle.Render("METRICS") + "\n" +
		fmt.Sprintf("Value: %s\nMarket share: %s\nGrowth: %s\nEfficiency: %s\n",
			money(metrics.CompanyValue), percent(metrics.MarketShare), percent(metrics.GrowthRate), percent(metrics.OperationalEfficiency))

	width := int(float64(m.width) * 0.23)
	return stateStyle.Width(width).Render(company + turn + resources + kpis)
}

func (m model) renderHome() string {
	s := m.state
	var b strings.Builder

	if s.GameOver {
		b.WriteString(titleStyle.Render("GAME OVER") + "\n\n")
		b.WriteString(fmt.Sprintf("%s finished after %d turns with %s in cash.\n\n",
			s.Company.Name, s.CurrentTurn, money(s.Company.Resources.Cash)))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome back, %s", s.Player.Name)) + "\n\n")
	}

	summary := actions.Summarize(s.Financials)
	b.WriteString(fmt.Sprintf("Revenue: %s   Expenses: %s   Net cash flow: %s\n",
		money(summary.Revenue), money(summary.Expenses), money(summary.NetCashFlow)))
	b.WriteString(fmt.Sprintf("Campaigns: %d   Activities: %d\n\n", len(s.Marketing), len(s.Operations)))

	if m.advising {
		b.WriteString(labelStyle.Render("The advisor is thinking...") + "\n")
	}
	if m.advice != nil {
		b.WriteString(titleStyle.Render("ADVISOR") + "\n")
		b.WriteString(m.advice.Summary + "\n")
		for i, r := range m.advice.Recommendations {
			b.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, r.Action, labelStyle.Render(r.Reason)))
		}
	}
	return b.String()
}

func (m model) renderCompany() string {
	s := m.state
	var b strings.Builder
	b.WriteString(titleStyle.Render("COMPANY") + "\n\n")
	b.WriteString(fmt.Sprintf("Owner: %s\nName: %s\nIndustry: %s\nValue: %s\n\n",
		s.Player.Name, s.Company.Name, s.Company.BusinessType, money(s.Company.Value)))

	hire := m.actions.Catalog().HireCost
	line := fmt.Sprintf("Hire an employee for %s (h)", money(hire))
	if !m.actions.CanAfford(hire) {
		line = disabledStyle.Render(line + " - not enough cash")
	}
	b.WriteString(line + "\n")
	return b.String()
}

func (m model) renderFinance() string {
	s := m.state
	summary := actions.Summarize(actions.RecordsForTurn(s.Financials, s.CurrentTurn))
	header := titleStyle.Render("FINANCE") + "\n\n" +
		fmt.Sprintf("This turn: revenue %s, expenses %s, net %s\n\n",
			money(summary.Revenue), money(summary.Expenses), money(summary.NetCashFlow))
	return header + m.viewport.View()
}

// renderHistory is the viewport content for the finance view.
func (m model) renderHistory() string {
	if len(m.state.Financials) == 0 {
		return labelStyle.Render("No transactions yet.")
	}
	var b strings.Builder
	for _, r := range m.state.Financials {
		desc := r.Description
		if desc == "" {
			desc = transactionLabel(r.Type)
		}
		b.WriteString(fmt.Sprintf("Turn %-3d %-12s %s  %s\n", r.Turn, transactionLabel(r.Type), signedAmount(r), desc))
	}
	return b.String()
}

func (m model) renderMarketing() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MARKETING") + "\n\n")

	campaigns := m.actions.Catalog().Campaigns
	for i, t := range campaigns {
		line := fmt.Sprintf("%-22s %-12s %9s  eff %.0f  %d turns", t.Name, t.Channel, money(t.Cost), t.Effectiveness, t.Duration)
		b.WriteString(m.listItem(i, line, m.actions.CanAfford(t.Cost)) + "\n")
	}
	b.WriteString(m.listItem(len(campaigns), "Custom campaign...", true) + "\n\n")

	totals := actions.SummarizeMarketing(m.state.Marketing)
	b.WriteString(fmt.Sprintf("Active campaigns: %d   Total spend: %s   Total effectiveness: %.0f\n",
		totals.Campaigns, money(totals.TotalSpend), totals.TotalEffectiveness))
	for _, c := range m.state.Marketing {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s (%s) since turn %d", c.Name, c.Channel, c.TurnCreated)) + "\n")
	}
	return b.String()
}

func (m model) renderOperations() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("OPERATIONS") + "\n\n")

	for i, t := range m.actions.Catalog().Activities {
		line := fmt.Sprintf("%-26s %-17s %9s  eff %.0f", t.Name, t.Type, money(t.Cost), t.Efficiency)
		b.WriteString(m.listItem(i, line, m.actions.CanAfford(t.Cost)) + "\n")
	}
	b.WriteString("\n")

	if len(m.state.Operations) == 0 {
		b.WriteString(labelStyle.Render("No activities running.") + "\n")
	}
	for _, o := range m.state.Operations {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s (%s) since turn %d", o.Name, o.Type, o.TurnCreated)) + "\n")
	}
	return b.String()
}

func (m model) listItem(i int, line string, enabled bool) string {
	switch {
	case i == m.cursor:
		return selectedStyle.Render("> " + line)
	case !enabled:
		return disabledStyle.Render("  " + line)
	}
	return "  " + line
}

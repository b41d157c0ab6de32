package tui

import (
	"fmt"

	"github.com/tatianab/enterprise-empire/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func money(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", v)
}

func number(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// signedAmount shows a ledger entry the way it affects cash.
func signedAmount(r models.FinancialRecord) string {
	if r.Type.Inflow() {
		return positiveStyle.Render("+" + money(r.Amount))
	}
	return negativeStyle.Render("-" + money(r.Amount))
}

func transactionLabel(t models.FinancialActionType) string {
	switch t {
	case models.FinancialInvest:
		return "Investment"
	case models.FinancialLoan:
		return "Loan"
	case models.FinancialExpense:
		return "Expense"
	case models.FinancialRevenue:
		return "Revenue"
	}
	return string(t)
}

package render

import (
	"github.com/fatih/color"

	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/internal/trip"
	"github.com/username/trip-itinerary/pkg/currency"
	"github.com/username/trip-itinerary/pkg/grouping"
)

// ExpenseHistory renders date-grouped expenses, newest group first, with a
// per-day total and, when a daily budget is set, the share of it spent.
// A footer notes how many day groups remain beyond the current page.
func (r *Renderer) ExpenseHistory(groups []grouping.Group[trip.Expense], dailyBudget float64, remaining int) {
	header := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint, color.Italic)
	amount := color.New(color.FgRed)

	if len(groups) == 0 {
		r.println(faint.Sprint("sin gastos"))
		return
	}

	for _, g := range groups {
		total := 0.0
		for _, ex := range g.Items {
			total += ex.Amount
		}

		r.printf("%s  %s", header.Sprint(g.Date), amount.Sprint(currency.FormatYen(total)))
		if dailyBudget > 0 {
			r.printf("  %s", faint.Sprintf("(%d%% del presupuesto)", currency.BudgetPercentage(total, dailyBudget)))
		}
		r.println()

		for _, ex := range g.Items {
			r.printf("  %s %s  %s\n",
				glyph(itinerary.IconBanknote),
				ex.Concept,
				styled("bg-red-50 text-red-600", currency.Format(ex.Amount, ex.Currency)))
			if ex.Category != "" {
				r.println(faint.Sprint("    " + ex.Category))
			}
		}
		r.println()
	}

	if remaining > 0 {
		r.printf("%s\n", faint.Sprintf("… %d días más (usa --groups para ampliar)", remaining))
	}
}

package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lotto/domain/entities"
	"lotto/domain/interfaces"
	"lotto/domain/services"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// OutputView renders purchase and draw results as plain lines
type OutputView struct {
	out         io.Writer
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewOutputView creates an output view; styling is dropped when out is not a terminal
func NewOutputView(out io.Writer) *OutputView {
	renderer := lipgloss.NewRenderer(out)
	return &OutputView{
		out:         out,
		headerStyle: renderer.NewStyle().Bold(true),
		errorStyle:  renderer.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// DisplayTickets prints the ticket count followed by one ticket per line
func (v *OutputView) DisplayTickets(purchase *interfaces.PurchaseResult) {
	fmt.Fprintln(v.out)
	fmt.Fprintf(v.out, "You purchased %d tickets.\n", len(purchase.Tickets))
	for _, ticket := range purchase.Tickets {
		fmt.Fprintln(v.out, ticket.String())
	}
}

// DisplayResults prints the per-rank statistics and the profit rate
func (v *OutputView) DisplayResults(result *interfaces.DrawResult) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.headerStyle.Render("Winning statistics"))
	fmt.Fprintln(v.out, "---")
	for _, rank := range entities.PrizeRanks() {
		fmt.Fprintf(v.out, "%s (%s KRW) - %d tickets\n",
			rankLabel(rank), humanize.Comma(rank.Prize()), result.Tally.Count(rank))
	}
	fmt.Fprintf(v.out, "Total return rate is %s%%.\n", formatRate(result.ProfitRate))
}

// DisplayError prints a single [ERROR] line
func (v *OutputView) DisplayError(err error) {
	msg := err.Error()
	if !entities.IsValidationError(err) {
		msg = fmt.Sprintf("%s %s", entities.ErrorPrefix, msg)
	}
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.errorStyle.Render(msg))
}

// formatRate renders the rate with one decimal place and thousands separators
func formatRate(rate decimal.Decimal) string {
	fixed := rate.StringFixed(services.ProfitRatePlaces)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fixed
	}
	return humanize.Comma(n) + "." + frac
}

func rankLabel(rank entities.Rank) string {
	if rank.RequiresBonus() {
		return fmt.Sprintf("%d matches + bonus ball", rank.MatchCount())
	}
	return fmt.Sprintf("%d matches", rank.MatchCount())
}

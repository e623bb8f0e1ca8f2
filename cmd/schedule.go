package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	loan  int64
	clear bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "show a loan's amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `lbk schedule -loan <id> [-clear]

  Shows the stored amortization schedule of a loan, ordered by period.
  -clear removes the schedule instead, for when it must be rebuilt
  after the loan terms change.

`
}

func (p *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.loan, "loan", 0, "Loan id.")
	f.BoolVar(&p.clear, "clear", false, "Delete the loan's schedule rows.")
}

func (p *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.loan == 0 {
		return fail("Error: -loan is required")
	}
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	if _, ok := r.Loan(p.loan); !ok {
		return fail("Error: no loan with id %d", p.loan)
	}

	if p.clear {
		n := r.DeleteAmortizationByLoan(p.loan)
		fmt.Printf("Removed %d schedule row(s) from loan #%d\n", n, p.loan)
		return subcommands.ExitSuccess
	}

	rows := r.AmortizationByLoan(p.loan)
	if len(rows) == 0 {
		fmt.Println("No schedule stored for this loan.")
		return subcommands.ExitSuccess
	}

	cur := currency(r)
	var b strings.Builder
	b.WriteString("| Period | Due | Opening | Payment | Closing | Paid |\n")
	b.WriteString("|-------:|-----|--------:|--------:|--------:|------|\n")
	for _, row := range rows {
		paid := ""
		if row.Paid {
			paid = row.PaidDate.String()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			row.PeriodIndex, row.DueDate,
			lotbook.FormatAmount(cur, row.OpeningBalance),
			lotbook.FormatAmount(cur, row.ScheduledPayment),
			lotbook.FormatAmount(cur, row.ClosingBalance),
			paid)
	}
	if next, ok := r.NextUnpaidRow(p.loan); ok {
		fmt.Fprintf(&b, "\nNext due: period %d on %s (%s)\n",
			next.PeriodIndex, next.DueDate,
			lotbook.FormatAmount(cur, next.ScheduledPayment))
	} else {
		b.WriteString("\nFully paid.\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

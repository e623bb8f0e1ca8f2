package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type loansCmd struct {
	status string
}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list loans with their customer and car" }
func (*loansCmd) Usage() string {
	return `lbk loans [-status <status>]

  Lists loans joined with their customer and car. -status filters by
  status label (pending, active, completed, defaulted, cancelled).

`
}

func (p *loansCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.status, "status", "", "Keep only loans with this status.")
}

func (p *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}

	var details []lotbook.LoanDetails
	if p.status == "" {
		details = r.AllLoansWithDetails()
	} else {
		details = r.LoansByStatus(p.status)
	}
	if len(details) == 0 {
		fmt.Println("No loans found.")
		return subcommands.ExitSuccess
	}

	cur := currency(r)
	var b strings.Builder
	b.WriteString("| Id | Customer | Car | Principal | Monthly | Paid | Status |\n")
	b.WriteString("|---:|----------|-----|----------:|--------:|-----:|--------|\n")
	for _, d := range details {
		customer := "(deleted)"
		if d.Customer != nil {
			customer = d.Customer.FullName
		}
		car := "(deleted)"
		if d.Car != nil {
			car = fmt.Sprintf("%d %s %s", d.Car.Year, d.Car.Make, d.Car.Model)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			d.ID, customer, car,
			lotbook.FormatAmount(cur, d.Principal),
			lotbook.FormatAmount(cur, d.MonthlyPayment),
			lotbook.FormatAmount(cur, r.TotalPaidForLoan(d.ID)),
			d.Status)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

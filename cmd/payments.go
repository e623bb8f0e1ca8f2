package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type paymentsCmd struct {
	loan int64
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "list the payments recorded against a loan" }
func (*paymentsCmd) Usage() string {
	return `lbk payments -loan <id>

  Lists a loan's payments in date order with the running total.

`
}

func (p *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.loan, "loan", 0, "Loan id.")
}

func (p *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	pays := r.PaymentsByLoan(p.loan)
	if len(pays) == 0 {
		fmt.Println("No payments recorded.")
		return subcommands.ExitSuccess
	}

	cur := currency(r)
	var b strings.Builder
	b.WriteString("| Id | Date | Amount | Period | Type | Recorded by |\n")
	b.WriteString("|---:|------|-------:|-------:|------|-------------|\n")
	for _, pay := range pays {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %s |\n",
			pay.ID, pay.PaymentDate, lotbook.FormatAmount(cur, pay.Amount),
			pay.AppliedToPeriod, pay.Type, pay.RecordedBy)
	}
	fmt.Fprintf(&b, "\nTotal paid: %s\n", lotbook.FormatAmount(cur, r.TotalPaidForLoan(p.loan)))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

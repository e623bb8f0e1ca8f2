package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type payCmd struct {
	loan      int64
	amount    string
	date      string
	penalty   string
	principal string
	interest  string
	kind      string
	note      string
	by        string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a loan" }
func (*payCmd) Usage() string {
	return `lbk pay -loan <id> -amount <amount> [options]

  Records a payment. The payment is applied to the loan's next unpaid
  schedule period, which is marked paid when one exists.

Usage Examples:
$ lbk pay -loan 3 -amount 754.85 -date 2025-05-01 -by admin

`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.loan, "loan", 0, "Loan id.")
	f.StringVar(&p.amount, "amount", "", "Amount received, exact decimal.")
	f.StringVar(&p.date, "date", "", "Payment date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&p.penalty, "penalty", "0", "Portion applied to penalties.")
	f.StringVar(&p.principal, "principal", "0", "Portion applied to principal.")
	f.StringVar(&p.interest, "interest", "0", "Portion applied to interest.")
	f.StringVar(&p.kind, "type", "regular", "Payment type (regular, extra, penalty).")
	f.StringVar(&p.note, "note", "", "Optional note.")
	f.StringVar(&p.by, "by", "", "Who recorded the payment.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.loan == 0 || p.amount == "" {
		return fail("Error: -loan and -amount are required")
	}

	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	if _, ok := r.Loan(p.loan); !ok {
		return fail("Error: no loan with id %d", p.loan)
	}

	pay := lotbook.Payment{
		LoanID:     p.loan,
		Type:       p.kind,
		Note:       p.note,
		RecordedBy: p.by,
	}
	for _, field := range []struct {
		name string
		text string
		dst  *decimal.Decimal
	}{
		{"amount", p.amount, &pay.Amount},
		{"penalty", p.penalty, &pay.PenaltyApplied},
		{"principal", p.principal, &pay.PrincipalApplied},
		{"interest", p.interest, &pay.InterestApplied},
	} {
		v, err := decimal.NewFromString(field.text)
		if err != nil {
			return fail("Error: invalid -%s value %q: %v", field.name, field.text, err)
		}
		*field.dst = v
	}

	if p.date == "" {
		pay.PaymentDate = lotbook.Today()
	} else {
		pay.PaymentDate, err = lotbook.ParseDate(p.date)
		if err != nil {
			return fail("Error: invalid -date: %v", err)
		}
	}

	// Settle the next unpaid schedule period, when the loan has one.
	if row, ok := r.NextUnpaidRow(p.loan); ok {
		pay.AppliedToPeriod = row.PeriodIndex
		row.Paid = true
		row.PaidDate = pay.PaymentDate
		r.UpdateAmortizationRow(row)
	}

	id := r.AddPayment(pay)
	cur := currency(r)
	fmt.Printf("Recorded payment #%d of %s on loan #%d (total paid %s)\n",
		id, lotbook.FormatAmount(cur, pay.Amount), p.loan,
		lotbook.FormatAmount(cur, r.TotalPaidForLoan(p.loan)))
	return subcommands.ExitSuccess
}

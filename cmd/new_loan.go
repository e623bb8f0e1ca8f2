package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type newLoanCmd struct {
	customer  int64
	car       int64
	principal string
	apr       string
	term      int
	frequency string
	start     string
	down      string
	tradeIn   string
	taxRate   string
	fee       string
	monthly   string
	interest  string
	total     string
}

func (*newLoanCmd) Name() string     { return "new-loan" }
func (*newLoanCmd) Synopsis() string { return "open a pending loan on a car for a customer" }
func (*newLoanCmd) Usage() string {
	return `lbk new-loan -customer <id> -car <id> -principal <amount> [options]

  Opens a loan in pending status. Rate, term and penalty terms default
  to the configured settings when not given. The car must not already
  be tied to a pending or active loan.

Usage Examples:
$ lbk new-loan -customer 1 -car 3 -principal 25000.00 -apr 5.5 -term 36 -start 2025-04-01

`
}

func (p *newLoanCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.customer, "customer", 0, "Customer id.")
	f.Int64Var(&p.car, "car", 0, "Car id.")
	f.StringVar(&p.principal, "principal", "", "Financed principal, exact decimal.")
	f.StringVar(&p.apr, "apr", "", "Annual rate in percent. Defaults to the default.apr setting.")
	f.IntVar(&p.term, "term", 0, "Term in months. Defaults to the default.term.months setting.")
	f.StringVar(&p.frequency, "frequency", "monthly", "Payment frequency.")
	f.StringVar(&p.start, "start", "", "First payment date (YYYY-MM-DD), optional.")
	f.StringVar(&p.down, "down", "0", "Down payment.")
	f.StringVar(&p.tradeIn, "trade-in", "0", "Trade-in value.")
	f.StringVar(&p.taxRate, "tax", "0", "Sales tax rate in percent.")
	f.StringVar(&p.fee, "fee", "0", "Registration fee.")
	f.StringVar(&p.monthly, "monthly", "0", "Computed monthly payment.")
	f.StringVar(&p.interest, "interest", "0", "Computed total interest.")
	f.StringVar(&p.total, "total", "0", "Computed total amount.")
}

func (p *newLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.customer == 0 || p.car == 0 || p.principal == "" {
		return fail("Error: -customer, -car and -principal are required")
	}

	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	if _, ok := r.Customer(p.customer); !ok {
		return fail("Error: no customer with id %d", p.customer)
	}
	car, ok := r.Car(p.car)
	if !ok {
		return fail("Error: no car with id %d", p.car)
	}
	if r.CarInActiveLoan(p.car) {
		return fail("Error: car #%d is already tied to a pending or active loan", p.car)
	}

	l := lotbook.Loan{
		CustomerID:       p.customer,
		CarID:            p.car,
		Compounding:      "monthly",
		TermMonths:       p.term,
		PaymentFrequency: p.frequency,
		Status:           lotbook.StatusPending,
	}

	// Loan terms not given on the command line come from settings.
	aprText := p.apr
	if aprText == "" {
		aprText, _ = r.Setting(lotbook.SettingDefaultAPR)
	}
	if l.TermMonths == 0 {
		if v, ok := r.Setting(lotbook.SettingDefaultTerm); ok {
			fmt.Sscanf(v, "%d", &l.TermMonths)
		}
	}
	if v, ok := r.Setting(lotbook.SettingPenaltyRate); ok {
		if rate, err := decimal.NewFromString(v); err == nil {
			l.PenaltyRate = rate
		}
	}
	if v, ok := r.Setting(lotbook.SettingPenaltyType); ok {
		l.PenaltyType = v
	}
	if v, ok := r.Setting(lotbook.SettingGraceDays); ok {
		fmt.Sscanf(v, "%d", &l.GracePeriodDays)
	}

	for _, field := range []struct {
		name string
		text string
		dst  *decimal.Decimal
	}{
		{"principal", p.principal, &l.Principal},
		{"apr", aprText, &l.APR},
		{"down", p.down, &l.DownPayment},
		{"trade-in", p.tradeIn, &l.TradeInValue},
		{"tax", p.taxRate, &l.SalesTaxRate},
		{"fee", p.fee, &l.RegistrationFee},
		{"monthly", p.monthly, &l.MonthlyPayment},
		{"interest", p.interest, &l.TotalInterest},
		{"total", p.total, &l.TotalAmount},
	} {
		v, err := decimal.NewFromString(field.text)
		if err != nil {
			return fail("Error: invalid -%s value %q: %v", field.name, field.text, err)
		}
		*field.dst = v
	}

	if p.start != "" {
		start, err := lotbook.ParseDate(p.start)
		if err != nil {
			return fail("Error: invalid -start date: %v", err)
		}
		l.StartDate = start
	}

	id := r.AddLoan(l)
	fmt.Printf("Opened loan #%d on %d %s %s for customer #%d (pending)\n",
		id, car.Year, car.Make, car.Model, p.customer)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type carsCmd struct {
	query     string
	available bool
}

func (*carsCmd) Name() string     { return "cars" }
func (*carsCmd) Synopsis() string { return "list or search the car inventory" }
func (*carsCmd) Usage() string {
	return `lbk cars [-q <query>] [-available]

  Lists the inventory. -q filters by make, model, year or category;
  -available keeps only cars on the lot and not tied to an active loan.

Usage Examples:
$ lbk cars -q toyota -available

`
}

func (p *carsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Search query matched against make, model, year and category.")
	f.BoolVar(&p.available, "available", false, "Show only cars available for a new loan.")
}

func (p *carsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}

	var cars []lotbook.Car
	if p.available {
		cars = r.AvailableCars()
		if p.query != "" {
			matched := make(map[int64]bool)
			for _, c := range r.SearchCars(p.query) {
				matched[c.ID] = true
			}
			kept := cars[:0]
			for _, c := range cars {
				if matched[c.ID] {
					kept = append(kept, c)
				}
			}
			cars = kept
		}
	} else {
		cars = r.SearchCars(p.query)
	}

	if len(cars) == 0 {
		fmt.Println("No cars found.")
		return subcommands.ExitSuccess
	}

	cur := currency(r)
	var b strings.Builder
	b.WriteString("| Id | Year | Make | Model | Category | Color | Price | Status |\n")
	b.WriteString("|---:|-----:|------|-------|----------|-------|------:|--------|\n")
	for _, c := range cars {
		status := "available"
		if !c.Available {
			status = "sold"
		} else if r.CarInActiveLoan(c.ID) {
			status = "on loan"
		}
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s | %s | %s |\n",
			c.ID, c.Year, c.Make, c.Model, c.Category, c.Color,
			lotbook.FormatAmount(cur, c.Price), status)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

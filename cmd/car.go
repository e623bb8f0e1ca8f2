package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type carCmd struct{}

func (*carCmd) Name() string     { return "car" }
func (*carCmd) Synopsis() string { return "show one car in detail" }
func (*carCmd) Usage() string {
	return `lbk car <car-id>

  Shows a car's full record and its loan situation.

`
}

func (*carCmd) SetFlags(f *flag.FlagSet) {}

func (c *carCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("Error: expected <car-id>")
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return fail("Error: invalid car id %q", f.Arg(0))
	}
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	car, ok := r.Car(id)
	if !ok {
		return fail("Error: no car with id %d", id)
	}

	cur := currency(r)
	var b strings.Builder
	fmt.Fprintf(&b, "# %d %s %s\n\n", car.Year, car.Make, car.Model)
	fmt.Fprintf(&b, "* Price: %s\n", lotbook.FormatAmount(cur, car.Price))
	fmt.Fprintf(&b, "* Category: %s\n", car.Category)
	fmt.Fprintf(&b, "* Color: %s\n", car.Color)
	fmt.Fprintf(&b, "* Efficiency: %s\n", car.Efficiency)
	if car.Image != "" {
		fmt.Fprintf(&b, "* Image: %s\n", car.Image)
	}
	if car.Notes != "" {
		fmt.Fprintf(&b, "* Notes: %s\n", car.Notes)
	}
	switch {
	case !car.Available:
		b.WriteString("* Status: sold\n")
	case r.CarInActiveLoan(car.ID):
		b.WriteString("* Status: tied to a pending or active loan\n")
	default:
		b.WriteString("* Status: available\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

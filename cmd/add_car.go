package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCarCmd struct {
	make       string
	model      string
	year       int
	price      string
	category   string
	color      string
	efficiency string
	image      string
	notes      string
	sold       bool
}

func (*addCarCmd) Name() string     { return "add-car" }
func (*addCarCmd) Synopsis() string { return "add a car to the inventory" }
func (*addCarCmd) Usage() string {
	return `lbk add-car -make <make> -model <model> -year <year> -price <price> [options]

  Adds a car to the lot inventory and prints its new id.

Usage Examples:
$ lbk add-car -make Toyota -model "Corolla Altis" -year 2022 -price 21500.00 -category Sedan -color Silver

`
}

func (p *addCarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.make, "make", "", "Manufacturer name.")
	f.StringVar(&p.model, "model", "", "Model name.")
	f.IntVar(&p.year, "year", 0, "Model year.")
	f.StringVar(&p.price, "price", "", "Sticker price, exact decimal.")
	f.StringVar(&p.category, "category", "", "Body category (Sedan, SUV, ...).")
	f.StringVar(&p.color, "color", "", "Exterior color.")
	f.StringVar(&p.efficiency, "efficiency", "", "Fuel efficiency, free text.")
	f.StringVar(&p.image, "image", "", "Optional picture path or URL.")
	f.StringVar(&p.notes, "notes", "", "Optional free-text notes.")
	f.BoolVar(&p.sold, "sold", false, "Mark the car as not available for sale.")
}

func (p *addCarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.make == "" || p.model == "" || p.year == 0 || p.price == "" {
		return fail("Error: -make, -model, -year and -price are required")
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		return fail("Error: invalid price %q: %v", p.price, err)
	}

	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}

	id := r.AddCar(lotbook.Car{
		Make:       p.make,
		Model:      p.model,
		Year:       p.year,
		Price:      price,
		Category:   p.category,
		Color:      p.color,
		Efficiency: p.efficiency,
		Image:      p.image,
		Notes:      p.notes,
		Available:  !p.sold,
	})
	fmt.Printf("Added car #%d: %d %s %s\n", id, p.year, p.make, p.model)
	return subcommands.ExitSuccess
}

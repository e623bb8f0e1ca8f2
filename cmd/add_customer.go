package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

type addCustomerCmd struct {
	name    string
	contact string
	email   string
	address string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "register a new customer" }
func (*addCustomerCmd) Usage() string {
	return `lbk add-customer -name <full name> [-contact <number>] [-email <email>] [-address <address>]

  Registers a customer and prints the new id.

Usage Examples:
$ lbk add-customer -name "Maria Santos" -contact "+1 555 0134" -email maria@example.com

`
}

func (p *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Customer full name.")
	f.StringVar(&p.contact, "contact", "", "Contact number.")
	f.StringVar(&p.email, "email", "", "Email address.")
	f.StringVar(&p.address, "address", "", "Postal address.")
}

func (p *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		return fail("Error: -name is required")
	}
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	id := r.AddCustomer(lotbook.Customer{
		FullName: p.name,
		Contact:  p.contact,
		Email:    p.email,
		Address:  p.address,
	})
	fmt.Printf("Added customer #%d: %s\n", id, p.name)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type customersCmd struct {
	query string
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list or search customers" }
func (*customersCmd) Usage() string {
	return `lbk customers [-q <query>]

  Lists customers. -q filters by name, contact number or email.

`
}

func (p *customersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Search query matched against name, contact and email.")
}

func (p *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	customers := r.SearchCustomers(p.query)
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Id | Name | Contact | Email | Loans |\n")
	b.WriteString("|---:|------|---------|-------|-------|\n")
	for _, c := range customers {
		loans := "none"
		if r.CustomerHasActiveLoans(c.ID) {
			loans = "active"
		} else if r.CustomerHasLoans(c.ID) {
			loans = "past"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", c.ID, c.FullName, c.Contact, c.Email, loans)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

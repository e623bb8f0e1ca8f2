// Package cmd implements the CLI application to manage a car lot's
// inventory, customers, loans and payments.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/drivelane/lotbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCarCmd{}, "inventory")
	c.Register(&carsCmd{}, "inventory")
	c.Register(&carCmd{}, "inventory")

	c.Register(&addCustomerCmd{}, "customers")
	c.Register(&customersCmd{}, "customers")

	c.Register(&newLoanCmd{}, "loans")
	c.Register(&loansCmd{}, "loans")
	c.Register(&loanStatusCmd{}, "loans")
	c.Register(&scheduleCmd{}, "loans")

	c.Register(&payCmd{}, "payments")
	c.Register(&paymentsCmd{}, "payments")

	c.Register(&setCmd{}, "settings")
	c.Register(&settingsCmd{}, "settings")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data directory (defaults to ~/.lotbook)")

// openRepository is the central function to open the store. Every
// subcommand goes through it so they all honor -data-dir.
func openRepository() (*lotbook.Repository, error) {
	dir := *dataDir
	if dir == "" {
		var err error
		dir, err = lotbook.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return lotbook.Open(dir)
}

// currency returns the configured display currency, falling back to USD.
func currency(r *lotbook.Repository) string {
	if c, ok := r.Setting(lotbook.SettingCurrency); ok {
		return c
	}
	return "USD"
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails (no TTY, unknown style).
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status, saving a
// few lines in every Execute method.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

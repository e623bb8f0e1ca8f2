package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

type loanStatusCmd struct{}

func (*loanStatusCmd) Name() string     { return "loan-status" }
func (*loanStatusCmd) Synopsis() string { return "set the status of a loan" }
func (*loanStatusCmd) Usage() string {
	return `lbk loan-status <loan-id> <status>

  Sets a loan's status label (pending, active, completed, defaulted,
  cancelled). Activating a loan takes its car off the available list.

Usage Examples:
$ lbk loan-status 3 active

`
}

func (*loanStatusCmd) SetFlags(f *flag.FlagSet) {}

func (c *loanStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail("Error: expected <loan-id> <status>")
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return fail("Error: invalid loan id %q", f.Arg(0))
	}
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	if !r.UpdateLoanStatus(id, f.Arg(1)) {
		return fail("Error: no loan with id %d", id)
	}
	fmt.Printf("Loan #%d is now %s\n", id, f.Arg(1))
	return subcommands.ExitSuccess
}

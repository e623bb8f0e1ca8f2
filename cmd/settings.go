package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/google/subcommands"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set a configuration value" }
func (*setCmd) Usage() string {
	return `lbk set <key> <value>

  Sets a configuration key. Well-known keys include currency,
  default.apr, default.term.months, default.penalty.rate,
  default.penalty.type and default.grace.days.

Usage Examples:
$ lbk set currency EUR

`
}

func (*setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail("Error: expected <key> <value>")
	}
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	r.SetSetting(f.Arg(0), f.Arg(1))
	fmt.Printf("%s=%s\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "list all configuration values" }
func (*settingsCmd) Usage() string {
	return `lbk settings

  Lists every configuration key and value.

`
}

func (*settingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRepository()
	if err != nil {
		return fail("Error: could not open store: %v", err)
	}
	all := r.Settings()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString("| Key | Value |\n|-----|-------|\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "| %s | %s |\n", k, all[k])
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"qedit/internal/config"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// action runs a command after its flags parsed.
type action func(stdout, stderr io.Writer) int

// Command is one qedit subcommand. Define registers the command's flags and
// returns the action that reads them.
type Command struct {
	Name     string
	Brief    string
	Synopsis []string
	Define   func(flags *flag.FlagSet) action
}

// Run dispatches args to a subcommand and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		writeOverview(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		if len(args) > 1 {
			if cmd := lookup(args[1]); cmd != nil {
				return cmd.execute([]string{"-h"}, stdout, stderr)
			}
		}
		writeOverview(stdout)
		return ExitOK
	}

	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "qedit: unknown command %q\n\n", args[0])
		writeOverview(stderr)
		return ExitUsage
	}
	return cmd.execute(args[1:], stdout, stderr)
}

func lookup(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// execute parses args into a fresh flag set. Help and usage errors print the
// command's help instead of running it.
func (c *Command) execute(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("qedit "+c.Name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	run := c.Define(flags)

	err := flags.Parse(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		c.writeHelp(stdout, flags)
		return ExitOK
	case err != nil:
		fmt.Fprintf(stderr, "qedit %s: invalid arguments: %v\n\n", c.Name, err)
		c.writeHelp(stderr, flags)
		return ExitUsage
	case flags.NArg() > 0:
		fmt.Fprintf(stderr, "qedit %s: unexpected arguments: %s\n\n", c.Name, strings.Join(flags.Args(), " "))
		c.writeHelp(stderr, flags)
		return ExitUsage
	}
	return run(stdout, stderr)
}

func (c *Command) writeHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintf(w, "%s\n\nUsage:\n", c.Brief)
	for _, line := range c.Synopsis {
		fmt.Fprintf(w, "  %s\n", line)
	}
	count := 0
	flags.VisitAll(func(*flag.Flag) { count++ })
	if count == 0 {
		return
	}
	fmt.Fprintln(w, "\nFlags:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	flags.SetOutput(io.Discard)
}

func writeOverview(w io.Writer) {
	fmt.Fprint(w, "qedit edits a question bank file in the browser.\n\n")
	fmt.Fprint(w, "Usage:\n  qedit <command> [flags]\n  qedit help <command>\n\n")
	fmt.Fprintln(w, "Commands:")
	table := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(table, "  %s\t%s\n", cmd.Name, cmd.Brief)
	}
	table.Flush()
	if env, err := config.Usage(); err == nil && env != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(env))
	}
}

var commands = []*Command{
	{
		Name:  "serve",
		Brief: "Serve the question bank editor",
		Synopsis: []string{
			"qedit serve [-f <bank.json>] [--addr <host:port>] [--title <title>] [--watch]",
			"qedit serve --public-dir <dir> [-f <bank.json>]",
		},
		Define: defineServe,
	},
	{
		Name:     "generate",
		Brief:    "Write the editor page and assets to a directory",
		Synopsis: []string{"qedit generate [--out public] [--title <title>]"},
		Define:   defineGenerate,
	},
	{
		Name:     "validate",
		Brief:    "Check that every question has exactly one correct choice",
		Synopsis: []string{"qedit validate [-f <bank.json>]"},
		Define:   defineValidate,
	},
	{
		Name:     "list",
		Brief:    "List categories and question counts",
		Synopsis: []string{"qedit list [-f <bank.json>]"},
		Define:   defineList,
	},
	{
		Name:     "init",
		Brief:    "Scaffold qedit.yml",
		Synopsis: []string{"qedit init [--out qedit.yml]"},
		Define:   defineInit,
	},
}

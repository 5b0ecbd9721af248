package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// defineList prints one row per category with question and invalid counts.
func defineList(flags *flag.FlagSet) action {
	src := addBankSource(flags)
	return func(stdout, stderr io.Writer) int {
		b, code := src.read(stderr)
		if code != ExitOK {
			return code
		}

		summaries := b.Summary()
		if len(summaries) == 0 {
			fmt.Fprintln(stdout, "No categories")
			return ExitOK
		}
		width := len("Category")
		for _, summary := range summaries {
			if len(summary.Name) > width {
				width = len(summary.Name)
			}
		}

		styles := newOutputStyles(stdout)
		fmt.Fprintln(stdout, styles.header.Render(fmt.Sprintf("%-*s  %9s  %7s", width, "Category", "Questions", "Invalid")))
		for _, summary := range summaries {
			invalid := fmt.Sprintf("%7s", strconv.Itoa(summary.Invalid))
			if summary.Invalid > 0 {
				invalid = styles.fail.Render(invalid)
			}
			fmt.Fprintf(stdout, "%-*s  %9d  %s\n", width, summary.Name, summary.Questions, invalid)
		}
		return ExitOK
	}
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"qedit/internal/bank"
)

func defineValidate(flags *flag.FlagSet) action {
	src := addBankSource(flags)
	return func(stdout, stderr io.Writer) int {
		b, code := src.read(stderr)
		if code != ExitOK {
			return code
		}

		err := bank.Validate(b)
		var validationErr *bank.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintln(stderr, newOutputStyles(stderr).fail.Render("Validation failed:"))
			for _, issue := range validationErr.Issues {
				fmt.Fprintf(stderr, "  %s: %s\n", issue.Field(), issue.Message)
			}
			return ExitError
		}
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintln(stdout, newOutputStyles(stdout).ok.Render(fmt.Sprintf("Bank OK: %d categories, %d questions", len(b.Categories), b.QuestionCount())))
		return ExitOK
	}
}

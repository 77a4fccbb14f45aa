package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/pi"
)

// digitsCommand creates the digits command for printing pi digits.
func (c *CLI) digitsCommand() *cobra.Command {
	var (
		raw     bool
		group   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "digits [count]",
		Short: "Print decimal digits of pi",
		Long: `Print decimal digits of pi (after the decimal point).

Digits are grouped for readability and the Feynman point, the run of six
nines starting at position 762, is highlighted when it falls within the
requested range. Use --raw for a plain unformatted stream.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 100
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New(errors.ErrCodeInvalidInput, "invalid count %q", args[0])
				}
				count = n
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			p := newProgress(loggerFromContext(cmd.Context()))
			digits, err := runner.Digits(cmd.Context(), count)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Computed %d digits", count))

			if raw {
				fmt.Println(formatRawDigits(digits))
				return nil
			}
			fmt.Println(formatDigits(digits, group))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print digits without grouping or highlighting")
	cmd.Flags().IntVar(&group, "group", 10, "digits per group")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the digit cache")

	return cmd
}

// formatRawDigits renders the digit run as a bare string.
func formatRawDigits(digits []byte) string {
	var b strings.Builder
	b.Grow(len(digits))
	for _, d := range digits {
		b.WriteByte('0' + d)
	}
	return b.String()
}

// formatDigits renders the digit run in groups with the Feynman point
// highlighted.
func formatDigits(digits []byte, group int) string {
	if group <= 0 {
		group = 10
	}

	var b strings.Builder
	b.WriteString("3.")
	for i, d := range digits {
		if i > 0 && i%group == 0 {
			if (i/group)%5 == 0 {
				b.WriteString("\n  ")
			} else {
				b.WriteByte(' ')
			}
		}
		ch := string('0' + rune(d))
		if pi.IsFeynmanIndex(i) {
			ch = styleFeynman.Render(ch)
		}
		b.WriteString(ch)
	}
	return b.String()
}

package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
)

type validateResult struct {
	Current     string           `json:"current"`
	Replacement string           `json:"replacement"`
	Range       domain.EditRange `json:"range"`
	Accepted    bool             `json:"accepted"`
	Text        string           `json:"text"`
	Display     string           `json:"display"`
}

// validate <current> <replacement>: check one edit the way the text field would.
func validateCmd() *cobra.Command {
	var location, length int

	cmd := &cobra.Command{
		Use:   "validate <current> <replacement>",
		Short: "Check and apply a text edit to the Fahrenheit field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := currentLocale()
			if err != nil {
				return err
			}
			format := domain.NewNumberFormat(tag)
			current, replacement := args[0], args[1]

			r := domain.EditRange{Location: location, Length: length}
			if location < 0 {
				r.Location = utf8.RuneCountInString(current)
			}

			res := validateResult{Current: current, Replacement: replacement, Range: r, Text: current}
			if domain.ValidateEdit(current, r, replacement, format.DecimalSeparator()) {
				text, err := domain.ApplyEdit(current, r, replacement)
				if err != nil {
					return err
				}
				res.Accepted = true
				res.Text = text
			}

			conv := domain.NewConversion(format)
			conv.SetInput(format.Parse(res.Text))
			res.Display = conv.Display()

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, res)
			}
			verdict := "rejected"
			if res.Accepted {
				verdict = "accepted"
			}
			fmt.Fprintf(out, "%s: %q -> %q (%s °C)\n", verdict, res.Current, res.Text, res.Display)
			return nil
		},
	}
	cmd.Flags().IntVar(&location, "location", -1, "rune offset of the edit (default end of text)")
	cmd.Flags().IntVar(&length, "length", 0, "number of runes replaced")
	return cmd
}

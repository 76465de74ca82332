package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
)

type conversionLine struct {
	Input      string   `json:"input"`
	Fahrenheit *float64 `json:"fahrenheit"`
	Celsius    *float64 `json:"celsius"`
	Display    string   `json:"display"`
}

// convert <value>...: run each value through the conversion form.
func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <fahrenheit>...",
		Short: "Convert Fahrenheit values to Celsius",
		Long: "Convert Fahrenheit values to Celsius using the locale's number format.\n" +
			"Unparsable values show the placeholder. Pass negative values after --.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := currentLocale()
			if err != nil {
				return err
			}
			conv := domain.NewConversion(domain.NewNumberFormat(tag))

			lines := make([]conversionLine, 0, len(args))
			for _, arg := range args {
				conv.SetInput(conv.NumberFormat().Parse(arg))
				res := conv.Result()
				lines = append(lines, conversionLine{
					Input:      arg,
					Fahrenheit: res.Fahrenheit,
					Celsius:    res.Celsius,
					Display:    res.Display,
				})
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, lines)
			}
			for _, l := range lines {
				fmt.Fprintf(out, "%s °F = %s °C\n", l.Input, l.Display)
			}
			return nil
		},
	}
}

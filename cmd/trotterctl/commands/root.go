package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/couchcryptid/worldtrotter-service/internal/config"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
)

var (
	localeFlag   string
	outputFormat string

	cfg    *config.Config
	logger *slog.Logger
)

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "trotterctl",
		Short:        "WorldTrotter conversion, map and book tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg)

			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unknown output format %q (want text or json)", outputFormat)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "BCP 47 locale (default DEFAULT_LOCALE)")
	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text or json")

	root.AddCommand(convertCmd(), validateCmd(), annotationsCmd(), snapshotCmd(), bookCmd())
	return root
}

func currentLocale() (language.Tag, error) {
	if localeFlag == "" {
		return cfg.DefaultLocale, nil
	}
	tag, err := language.Parse(localeFlag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", localeFlag, err)
	}
	return tag, nil
}

func jsonOutput() bool { return outputFormat == "json" }

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

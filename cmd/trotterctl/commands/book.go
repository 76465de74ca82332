package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/worldtrotter-service/internal/adapter/web"
)

// book: load the book web page.
func bookCmd() *cobra.Command {
	var pageURL string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Load the book web page and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageURL == "" {
				pageURL = cfg.BookURL
			}
			page, err := web.NewLoader(cfg.BookTimeout, logger).Load(cmd.Context(), pageURL)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, page)
			}
			fmt.Fprintf(out, "%s\n%d %s, %d bytes\n", page.Title, page.StatusCode, page.URL, page.Bytes)
			return nil
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "page to load (default BOOK_URL)")
	return cmd
}

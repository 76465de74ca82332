package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/worldtrotter-service/internal/adapter/mapbox"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
)

// annotations: list the fixed map pins.
func annotationsCmd() *cobra.Command {
	var geocode bool

	cmd := &cobra.Command{
		Use:   "annotations",
		Short: "List the map annotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var geocoder domain.Geocoder
			if geocode {
				if cfg.MapboxToken == "" {
					return errors.New("--geocode needs MAPBOX_TOKEN")
				}
				geocoder = mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, observability.NewDetachedMetrics(), logger)
			}
			locs := domain.EnrichLocations(cmd.Context(), domain.FixedLocations(), geocoder, logger)

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, locs)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TITLE\tSUBTITLE\tLAT\tLON\tPLACE")
			for _, l := range locs {
				fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.6f\t%s\n", l.Title, l.Subtitle, l.Geo.Lat, l.Geo.Lon, l.FormattedAddress)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&geocode, "geocode", false, "reverse geocode each annotation with Mapbox")
	return cmd
}

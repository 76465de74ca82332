package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/worldtrotter-service/internal/adapter/mapbox"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
)

type snapshotResult struct {
	Type       domain.MapType   `json:"type"`
	Style      string           `json:"style"`
	Zoom       float64          `json:"zoom"`
	Camera     domain.Camera    `json:"camera"`
	Annotation *domain.Location `json:"annotation,omitempty"`
	ImageURL   string           `json:"image_url,omitempty"`
}

// snapshot: replay map screen taps and print the resulting view.
func snapshotCmd() *cobra.Command {
	var segment, taps int

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a static map URL for a map view",
		Long: "Select a map type segment, tap the annotation button --taps times, then\n" +
			"print the camera and, when MAPBOX_TOKEN is set, a Static Images URL.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := domain.MapTypeForSegment(segment); !ok {
				return fmt.Errorf("unknown segment %d (want 0, 1 or 2)", segment)
			}
			tag, err := currentLocale()
			if err != nil {
				return err
			}

			mc := domain.NewMapController(domain.StringsFor(tag), domain.FixedLocations())
			mapType := mc.SelectMapType(segment)

			res := snapshotResult{Type: mapType, Camera: domain.WorldCamera()}
			for range taps {
				loc, cam, ok := mc.NextAnnotation()
				if !ok {
					break
				}
				res.Annotation = &loc
				res.Camera = cam
			}
			res.Style = mapbox.Style(mapType)
			res.Zoom = mapbox.ZoomForDistance(res.Camera.Distance)
			if cfg.MapboxToken != "" {
				res.ImageURL = mapbox.NewStaticMaps(cfg.MapboxToken).StaticImageURL(res.Camera, mapType)
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, res)
			}
			fmt.Fprintf(out, "type:   %s (%s)\n", res.Type, res.Style)
			if res.Annotation != nil {
				fmt.Fprintf(out, "pin:    %s\n", res.Annotation.Title)
			}
			fmt.Fprintf(out, "center: %.6f,%.6f zoom %.2f\n", res.Camera.Center.Lat, res.Camera.Center.Lon, res.Zoom)
			if res.ImageURL != "" {
				fmt.Fprintf(out, "image:  %s\n", res.ImageURL)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&segment, "segment", 0, "map type segment: 0 standard, 1 hybrid, 2 satellite")
	cmd.Flags().IntVar(&taps, "taps", 0, "number of annotation button taps")
	return cmd
}

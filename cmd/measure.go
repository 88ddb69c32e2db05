package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/spf13/cobra"

	"github.com/philipparndt/mapwalk/internal/measurement"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

var (
	measurePoints []string
	measureScreen string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure a route without opening the viewer",
	Long: `Feed clicks to the measurement engine and print the running total.
Points are "x,y" pairs in normalized device coordinates, or in pixels when
--screen WIDTHxHEIGHT is given. A click close to an existing waypoint removes it.`,
	Example: `  mapwalk measure -p 0,0 -p 0.1,0
  mapwalk measure --screen 800x600 -p 400,300 -p 440,300`,
	Args: cobra.NoArgs,
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringArrayVarP(&measurePoints, "point", "p", nil, "click position as x,y (repeatable)")
	measureCmd.Flags().StringVar(&measureScreen, "screen", "", "screen size as WIDTHxHEIGHT; points are then pixels")
	measureCmd.MarkFlagRequired("point")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var screen *geometry.Size
	if measureScreen != "" {
		s, err := parseSize(measureScreen)
		if err != nil {
			return err
		}
		screen = &s
	}

	engine := measurement.NewEngine(cfg.Walking.MapScale, cfg.Measuring.ReferenceScale,
		measurement.WithHitRadius(cfg.Measuring.HitRadius))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Route Measurement")
	fmt.Fprintln(out, "=================")

	for _, raw := range measurePoints {
		p, err := parsePoint(raw)
		if err != nil {
			return err
		}
		if screen != nil {
			p, err = geometry.ToNDC(geometry.FromPoint(p), *screen)
			if err != nil {
				return err
			}
		} else if err := checkNDC(p); err != nil {
			return err
		}
		result := engine.AddOrToggle(p)
		fmt.Fprintf(out, "%-8s (%.4f, %.4f)  total: %.6f\n", result, p.X(), p.Y(), engine.Total())
	}

	fmt.Fprintf(out, "\nWaypoints: %d\n", engine.Len())
	for i, s := range engine.Segments() {
		fmt.Fprintf(out, "  Leg %d: %.6f\n", i+1, s.Distance)
	}
	if path := engine.Path(); len(path) > 1 {
		b := path.Bound()
		fmt.Fprintf(out, "Extent: (%.4f, %.4f) - (%.4f, %.4f)\n", b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
		fmt.Fprintf(out, "Path length (NDC): %.6f\n", planar.Length(path))
	}
	fmt.Fprintf(out, "Total distance: %.6f\n", engine.Total())
	return nil
}

// ndcBounds is the visible range of normalized device coordinates
var ndcBounds = orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}}

// checkNDC rejects points outside the visible NDC range
func checkNDC(p orb.Point) error {
	if !ndcBounds.Contains(p) {
		return fmt.Errorf("point (%g, %g) is outside [-1, 1]; use --screen for pixel positions", p.X(), p.Y())
	}
	return nil
}

// parsePoint parses "x,y"
func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return orb.Point{x, y}, nil
}

// parseSize parses "WIDTHxHEIGHT"
func parseSize(s string) (geometry.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return geometry.Size{}, fmt.Errorf("invalid screen size %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("invalid screen width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("invalid screen height %q: %w", h, err)
	}
	size := geometry.NewSize(width, height)
	if !size.Valid() {
		return geometry.Size{}, fmt.Errorf("%w: %s", geometry.ErrInvalidDimension, s)
	}
	return size, nil
}

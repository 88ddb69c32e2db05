package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/mapwalk/internal/assets"
	"github.com/philipparndt/mapwalk/internal/hud"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the effective configuration and texture sizes",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration")
	fmt.Fprintln(out, "=============")
	fmt.Fprintf(out, "Walking speed:     %.3f\n", cfg.Walking.Speed)
	fmt.Fprintf(out, "Walking scale:     %.3f\n", cfg.Walking.MapScale)
	fmt.Fprintf(out, "Reference scale:   %.3f\n", cfg.Measuring.ReferenceScale)
	fmt.Fprintf(out, "Hit radius:        %.3f\n", cfg.Measuring.HitRadius)
	fmt.Fprintf(out, "Switch debounce:   %.3fs\n", cfg.Debounce)
	fmt.Fprintf(out, "Toggle key:        %s\n", cfg.ToggleKey)
	fmt.Fprintf(out, "Frame rate:        %d\n", cfg.Window.FPS)

	fmt.Fprintln(out, "\nTextures")
	fmt.Fprintln(out, "========")
	a := cfg.Assets
	textures := []struct{ name, file string }{
		{"map", a.Map},
		{"pin", a.Pin},
		{"walking indicator", a.WalkingIndicator},
		{"measuring indicator", a.MeasuringIndicator},
		{"corner", a.Corner},
		{"cursor", a.Cursor},
	}
	for _, ch := range "0123456789." {
		textures = append(textures, struct{ name, file string }{"glyph " + string(ch), a.Digits + "/" + hud.GlyphName(ch)})
	}

	for _, t := range textures {
		path := cfg.AssetPath(t.file)
		size, err := assets.ProbeSize(path)
		status := "ok"
		if err != nil {
			status = "fallback"
		}
		fmt.Fprintf(out, "%-20s %5.0fx%-5.0f %-8s %s\n", t.name, size.Width, size.Height, status, path)
	}
	return nil
}

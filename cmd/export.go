package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/render"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trip as Markdown, JSON or iCalendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			format = cfg.DefaultFormat
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		r, ext, err := render.ForFormat(format, &render.ICSRenderer{Location: loc})
		if err != nil {
			return err
		}
		data, err := r.Render(o.Trip)
		if err != nil {
			return fmt.Errorf("rendering trip: %w", err)
		}

		if exportOutput == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		path := exportOutput
		if path == "" {
			path = filepath.Join(cfg.OutputDir, slug(o.Destination)+ext)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

// slug turns a destination into a file name.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "trip"
	}
	return out
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "markdown, json or ics (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

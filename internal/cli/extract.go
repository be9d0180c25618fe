package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pigment/internal/colour"
	"pigment/internal/image"
)

var (
	// Extract command flags
	extractColours   int
	extractAlgorithm string
	extractFormat    string
	extractOutput    string
	extractPreview   bool
	extractSeed      int64
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract the dominant colour palette from an image",
	Long: `Extract the dominant colours from an image.

The image is downscaled, sampled at an adaptive stride, stripped of any
uniform background detected along its border, and clustered in CIE Lab
space. The result is an ordered palette, most dominant colour first.

Supported image formats: JPEG, PNG, GIF, WebP
The image argument may be a file, a directory (a random image is picked),
or an HTTP(S) URL.

Examples:
  # Extract the dominant colours from an image
  pigment extract wallpaper.jpg

  # Show terminal colour previews
  pigment extract --preview wallpaper.png

  # Output as JSON with populations and shares
  pigment extract --format json wallpaper.jpg

  # Render the palette as a table
  pigment extract --format table wallpaper.jpg

  # Reproducible output with a fixed seed
  pigment extract --seed 42 wallpaper.jpg

  # Frequency-bucket algorithm with a fixed colour count
  pigment extract --algorithm dominant --colours 6 wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	defaults := colour.DefaultExtractorConfig()

	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", defaults.ColorCount, "number of colours for the dominant algorithm (1-64)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", string(defaults.Algorithm), "extraction algorithm (kmeans, dominant)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json, table)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", 0, "random seed for reproducible palettes (0 = time-seeded)")
}

// applyConfigDefaults lets the config file supply values for flags the user
// did not set on the command line.
func applyConfigDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("algorithm") && viper.IsSet("algorithm") {
		extractAlgorithm = viper.GetString("algorithm")
	}
	if !cmd.Flags().Changed("colours") && viper.IsSet("colours") {
		extractColours = viper.GetInt("colours")
	}
	if !cmd.Flags().Changed("format") && viper.IsSet("format") {
		extractFormat = viper.GetString("format")
	}
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)
	logger := newLogger(cmd)

	imagePath, err := image.ResolveImagePath(args[0])
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	buf, err := image.LoadBuffer(image.NewSmartLoader(), imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	logger.Debug("image ready", "width", buf.Width, "height", buf.Height)

	opts := []colour.Option{colour.WithLogger(logger.Named("pipeline"))}
	if extractSeed != 0 {
		opts = append(opts, colour.WithRand(rand.New(rand.NewSource(extractSeed))))
	}

	extractor, err := colour.NewExtractor(config, opts...)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(buf)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "colours", palette.Len())

	output, err := formatPalette(palette, extractFormat, extractPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("wrote palette", "path", extractOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "table":
		return formatTable(palette), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, table)", format)
	}
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, e := range palette.Entries {
		if showPreview {
			output += colour.FormatEntryWithPreview(e, 8) + "\n"
		} else {
			output += e.Hex + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as rgb(r, g, b) values, one per line.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, e := range palette.Entries {
		if showPreview {
			output += colour.ColourPreview(e.RGB, 8) + " " + e.RGB.String() + "\n"
		} else {
			output += e.RGB.String() + "\n"
		}
	}
	return output
}

// formatTable renders the palette as an aligned table with populations.
func formatTable(palette *colour.Palette) string {
	table := NewTable([]string{"#", "HEX", "RGB", "POPULATION", "SHARE"})
	for i, e := range palette.Entries {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			e.Hex,
			e.RGB.String(),
			strconv.Itoa(e.Population),
			fmt.Sprintf("%.1f%%", e.Share*100),
		})
	}
	return table.Render()
}

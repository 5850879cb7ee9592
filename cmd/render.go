package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/problemgen"
	"github.com/abhisek/trigbot/internal/quiz"
	"github.com/abhisek/trigbot/internal/render/raster"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw one round to a PNG file",
	Long: `Draw a round with the pixel layout and write it as a PNG.

The session is driven the same way as in the terminal: --hover moves the
pointer and --click clicks, both in pixel coordinates.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "Output PNG file (required)")
	renderCmd.Flags().Int("width", 1000, "Image width in pixels")
	renderCmd.Flags().Int("height", 600, "Image height in pixels")
	renderCmd.Flags().String("hover", "", "Move the pointer to x,y before drawing")
	renderCmd.Flags().String("click", "", "Click at x,y before drawing")
	renderCmd.Flags().Bool("start", false, "Draw the start screen instead of a round")
	_ = renderCmd.MarkFlagRequired("out")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	hover, _ := cmd.Flags().GetString("hover")
	click, _ := cmd.Flags().GetString("click")
	start, _ := cmd.Flags().GetBool("start")

	m := layout.PixelMetrics()
	if float64(width) < m.MinWidth {
		return fmt.Errorf("--width must be at least %v, got %d", m.MinWidth, width)
	}
	if float64(height) < m.MinHeight {
		return fmt.Errorf("--height must be at least %v, got %d", m.MinHeight, height)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, closer, err := quiz.OpenLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closer.Close()) }()

	surf, err := raster.New(width, height)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, surf.Close()) }()

	s := quiz.NewSession(quiz.Options{
		Source:  problemgen.New(cfg.RNG(), problemgen.DefaultConfig()),
		Surface: surf,
		Metrics: m,
		Logger:  logger,
	})
	s.Resize(float64(width), float64(height))

	if !start {
		if _, err := s.Click(0, 0); err != nil {
			return err
		}
	}
	if hover != "" {
		x, y, err := parsePoint(hover)
		if err != nil {
			return fmt.Errorf("--hover: %w", err)
		}
		s.PointerMove(x, y)
	}
	if click != "" {
		x, y, err := parsePoint(click)
		if err != nil {
			return fmt.Errorf("--click: %w", err)
		}
		if _, err := s.Click(x, y); err != nil {
			return err
		}
	}

	if err := surf.Err(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := surf.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if p := s.Problem(); p != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tanswer: %s\n", out, p.Question(), p.CorrectAnswer())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// parsePoint parses "x,y" into coordinates.
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}

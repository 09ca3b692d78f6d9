package contact

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/cli"
	"github.com/thenoetrevino/alphaslider/internal/config"
	"github.com/thenoetrevino/alphaslider/internal/slider"
)

// LayoutCmd returns the layout subcommand, which prints the slider's
// layout cache for a label set without opening the database.
func LayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout LABEL...",
		Short: "Print the slider layout for a set of labels",
		Long:  "Print label widths, start offsets and centering as the slider computes them, in terminal cells.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLayout,
	}

	cmd.Flags().Int("width", 80, "Full slider width, insets included")
	cmd.Flags().Int("spacing", config.DefaultSpacing, "Gap between labels")
	cmd.Flags().Int("inset", config.DefaultInset, "Margin on each side")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

// layoutResult is the JSON shape of the layout subcommand.
type layoutResult struct {
	Width        int           `json:"width"`
	Inset        int           `json:"inset"`
	Spacing      int           `json:"spacing"`
	ContentWidth float64       `json:"content_width"`
	CenterOffset float64       `json:"center_offset"`
	Labels       []layoutLabel `json:"labels"`
}

type layoutLabel struct {
	Label string  `json:"label"`
	Width float64 `json:"width"`
	Start float64 `json:"start"`
	X     float64 `json:"x"`
}

func runLayout(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)
	width, _ := cmd.Flags().GetInt("width")
	spacing, _ := cmd.Flags().GetInt("spacing")
	inset, _ := cmd.Flags().GetInt("inset")

	if width < 0 || spacing < 0 || inset < 0 {
		err := fmt.Errorf("%w: width, spacing and inset must not be negative", cli.ErrUsage)
		reportError(f, "INVALID_FLAG", err)
		return err
	}

	engine := slider.New(
		slider.WithMeasurer(slider.MeasureFunc(func(label string, _ bool) float64 {
			return float64(lipgloss.Width(label))
		})),
		slider.WithSpacing(float64(spacing)),
		slider.WithInset(float64(inset)),
	)
	engine.SetBounds(float64(width))
	engine.SetLabels(args)

	layout := engine.Layout()
	result := layoutResult{
		Width:        width,
		Inset:        inset,
		Spacing:      spacing,
		ContentWidth: layout.ContentWidth,
		CenterOffset: layout.CenterOffset,
	}
	for i, label := range args {
		result.Labels = append(result.Labels, layoutLabel{
			Label: label,
			Width: layout.Widths[i],
			Start: layout.Starts[i],
			X:     engine.LabelX(i),
		})
	}

	if printed, err := f.Success(result); printed || err != nil {
		return err
	}

	fmt.Printf("width %d, inset %d, spacing %d\n", width, inset, spacing)
	fmt.Printf("content width %s, center offset %s\n\n", num(result.ContentWidth), num(result.CenterOffset))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LABEL", "WIDTH", "START", "X")
	for _, l := range result.Labels {
		t.Row(l.Label, num(l.Width), num(l.Start), num(l.X))
	}
	fmt.Println(t.String())
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vitalchart/pkg/artifact"
	"github.com/matzehuels/vitalchart/pkg/pipeline"
	"github.com/matzehuels/vitalchart/pkg/render/static"
	"github.com/matzehuels/vitalchart/pkg/render/text"
)

// textCommand prints only the text chart.
func (c *CLI) textCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text",
		Short: "Print the text chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := append([]text.Option{text.WithTitle(cfg.Chart.Title)}, c.textOptions(cfg)...)
			return text.Render(c.Stdout, c.Dataset, opts...)
		},
	}
}

// staticCommand writes only the static HTML document.
func (c *CLI) staticCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "static",
		Short: "Write the static HTML/CSS chart document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			n, err := static.Write(cfg.Output, c.Dataset, static.Options{Title: cfg.Chart.Title, Color: cfg.Chart.Color})
			if err != nil {
				return err
			}
			prog.done("Wrote static document", "path", cfg.Output, "size", artifact.Describe(n))

			if c.flags.noColor {
				fmt.Fprintln(c.Stdout, pipeline.SavedMessage(pipeline.StrategyStatic, cfg.Output))
				return nil
			}
			printSuccess(c.Stdout, "Static chart written (%s)", artifact.Describe(n))
			printFile(c.Stdout, cfg.Output)
			return nil
		},
	}
}

// listCommand shows the dataset with its derived bar sizes.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the threshold dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.datasetRows()
			if err != nil {
				return err
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Metric", "Name", "Threshold", "Unit", "Bar", "Width").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					base := lipgloss.NewStyle().Padding(0, 1)
					switch {
					case row == -1:
						return headerStyle.Padding(0, 1)
					case col == 0:
						return base.Foreground(colorCyan).Bold(true)
					case col == 2:
						return StyleNumber.Padding(0, 1)
					case col >= 4:
						return base.Foreground(colorGray)
					}
					return base
				})

			fmt.Fprintln(c.Stdout, t.Render())
			return nil
		},
	}
}

// datasetRows returns one table row per record.
func (c *CLI) datasetRows() ([][]string, error) {
	rows := make([][]string, 0, c.Dataset.Len())
	for _, rec := range c.Dataset.All() {
		bar, err := text.BarLength(rec)
		if err != nil {
			return nil, err
		}
		width, err := static.Width(rec)
		if err != nil {
			return nil, err
		}
		unit := rec.Unit()
		if unit == "" {
			unit = "-"
		}
		rows = append(rows, []string{
			rec.Abbrev(),
			rec.Metric,
			rec.Threshold,
			unit,
			strconv.Itoa(bar),
			strconv.FormatFloat(width, 'f', -1, 64) + "%",
		})
	}
	return rows, nil
}

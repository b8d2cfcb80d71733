package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vitalchart/pkg/buildinfo"
	"github.com/matzehuels/vitalchart/pkg/config"
	"github.com/matzehuels/vitalchart/pkg/pipeline"
	"github.com/matzehuels/vitalchart/pkg/render/text"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "vitalchart"

	// staticReason is reported when --static forces the fallback.
	staticReason = "static output requested with --static"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Stdout receives chart output and status lines.
	Stdout io.Writer

	// Dataset is what every command renders.
	Dataset vitals.Dataset

	flags rootFlags
}

// rootFlags are the values bound to command-line flags.
type rootFlags struct {
	config      string
	output      string
	static      bool
	assetsHost  string
	image       string
	imageOutput string
	noColor     bool
	verbose     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Stdout:  os.Stdout,
		Dataset: vitals.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	c.flags = rootFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "vitalchart charts the Core Web Vitals thresholds",
		Long: `vitalchart renders Google's Core Web Vitals "good" thresholds (LCP, INP, CLS).

With no arguments it writes an interactive HTML chart, falling back to a
static HTML/CSS document when the charting runtime is unavailable, and then
prints a text version of the chart.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.SetLogLevel(logLevel(c.flags.verbose))
			if c.flags.noColor {
				disableColor()
			}
			registerHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: c.runRoot,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.config, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVarP(&c.flags.output, "output", "o", "", "HTML document path (default "+pipeline.DefaultOutput+")")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "plain output without colors or icons")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	f := root.Flags()
	f.BoolVar(&c.flags.static, "static", false, "skip the interactive chart and write the static document")
	f.StringVar(&c.flags.assetsHost, "assets-host", "", "URL or directory serving echarts.min.js")
	f.StringVar(&c.flags.image, "image", "", "also export an image: png, svg or pdf")
	f.StringVar(&c.flags.imageOutput, "image-output", "", "image path (default: output path with the image extension)")

	// Register all subcommands
	root.AddCommand(c.textCommand())
	root.AddCommand(c.staticCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runRoot runs the full pipeline.
func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := c.pipelineOptions(cfg)

	prog := newProgress(logger)
	runner := pipeline.NewRunner(c.Stdout, c.notifier(), logger)
	result, err := runner.Run(ctx, c.Dataset, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered "+string(result.Strategy)+" chart", "fallback", result.Fallback)
	return nil
}

// loadConfig reads the config file and applies flags that were set.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.flags.config)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = c.flags.output
	}
	if changed("assets-host") {
		cfg.Interactive.AssetsHost = c.flags.assetsHost
	}
	if changed("image") {
		cfg.Image.Format = c.flags.image
	}
	if changed("image-output") {
		cfg.Image.Output = c.flags.imageOutput
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// pipelineOptions maps cfg onto a run, adding CLI presentation.
func (c *CLI) pipelineOptions(cfg config.Config) pipeline.Options {
	opts := cfg.PipelineOptions()
	if c.flags.static {
		opts.Interactive.Disabled = staticReason
	}
	opts.Text = append(opts.Text, c.textOptions(cfg)...)
	return opts
}

// textOptions colors the text bars unless --no-color is set.
func (c *CLI) textOptions(cfg config.Config) []text.Option {
	if c.flags.noColor {
		return nil
	}
	return []text.Option{text.WithBarStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Chart.Color)))}
}

// notifier returns the plain notifier for --no-color and the styled one otherwise.
func (c *CLI) notifier() pipeline.Notifier {
	if c.flags.noColor {
		return pipeline.NewPlainNotifier(c.Stdout)
	}
	return styledNotifier{w: c.Stdout}
}

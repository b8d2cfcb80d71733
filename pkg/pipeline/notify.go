package pipeline

import (
	"fmt"
	"io"
)

// Notifier receives the fixed informational lines of a run. It decouples
// what is announced from how it is presented.
type Notifier interface {
	// Started is announced before any renderer runs.
	Started()

	// Saved is announced after a strategy wrote path.
	Saved(s Strategy, path string)

	// FallingBack is announced before the static document replaces the
	// interactive chart.
	FallingBack(reason error)

	// Skipped is announced when an optional output could not be produced.
	Skipped(s Strategy, reason error)

	// TextHeader is announced right before the text chart.
	TextHeader()
}

// PlainNotifier prints unstyled lines to a writer.
type PlainNotifier struct {
	w io.Writer
}

// NewPlainNotifier returns a notifier writing to w.
func NewPlainNotifier(w io.Writer) *PlainNotifier {
	return &PlainNotifier{w: w}
}

func (n *PlainNotifier) Started() {
	fmt.Fprintln(n.w, "Generating Core Web Vitals charts...")
}

func (n *PlainNotifier) Saved(s Strategy, path string) {
	fmt.Fprintln(n.w, SavedMessage(s, path))
}

func (n *PlainNotifier) FallingBack(error) {
	fmt.Fprintln(n.w, FallbackMessage)
}

func (n *PlainNotifier) Skipped(s Strategy, reason error) {
	fmt.Fprintf(n.w, "Skipped %s output: %v\n", s, reason)
}

func (n *PlainNotifier) TextHeader() {
	fmt.Fprintln(n.w, "\nText version:")
}

// FallbackMessage is the notice printed when the static document is used.
const FallbackMessage = "Plotting library not available, creating CSS chart instead..."

// SavedMessage returns the line announcing a written artifact.
func SavedMessage(s Strategy, path string) string {
	switch s {
	case StrategyInteractive:
		return "Chart saved as HTML file: " + path
	case StrategyStatic:
		return "CSS-based chart saved as: " + path
	default:
		return fmt.Sprintf("Chart saved as %s file: %s", s, path)
	}
}

// Discard is a notifier that prints nothing.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Started()                {}
func (discard) Saved(Strategy, string)  {}
func (discard) FallingBack(error)       {}
func (discard) Skipped(Strategy, error) {}
func (discard) TextHeader()             {}

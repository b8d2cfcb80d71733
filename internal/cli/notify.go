package cli

import (
	"fmt"
	"io"

	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/pipeline"
)

// styledNotifier presents the pipeline's informational lines with the
// CLI's icons and colors.
type styledNotifier struct {
	w io.Writer
}

func (n styledNotifier) Started() {
	printInfo(n.w, "Generating Core Web Vitals charts...")
}

func (n styledNotifier) Saved(s pipeline.Strategy, path string) {
	printSuccess(n.w, "%s", pipeline.SavedMessage(s, path))
}

func (n styledNotifier) FallingBack(reason error) {
	printWarning(n.w, "%s", pipeline.FallbackMessage)
	printDetail(n.w, "%s", errors.UserMessage(reason))
}

func (n styledNotifier) Skipped(s pipeline.Strategy, reason error) {
	printWarning(n.w, "Skipped %s output", s)
	printDetail(n.w, "%s", errors.UserMessage(reason))
}

func (n styledNotifier) TextHeader() {
	fmt.Fprintln(n.w, "\n"+StyleTitle.Render("Text version:"))
}

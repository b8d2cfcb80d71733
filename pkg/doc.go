// Package pkg provides the core libraries for vitalchart.
//
// # Overview
//
// vitalchart draws Google's Core Web Vitals "good" thresholds (LCP 2500 ms,
// INP 200 ms, CLS 0.1) with interchangeable renderers. The pkg directory is
// organized into four main areas:
//
//  1. [vitals] - The threshold dataset and its metric lookup table
//  2. [render] - Renderers and capability probes
//  3. [pipeline] - Orchestration (interactive → static fallback → text)
//  4. Support: [config], [errors], [artifact], [observability], [buildinfo]
//
// # Architecture
//
// The data flow of a default run:
//
//	vitals.Default()
//	         ↓
//	[render/interactive] Check ──unavailable──→ [render/static]
//	         ↓                                        ↓
//	   chart document (one of the two, same path, via [artifact])
//	         ↓
//	[render/image] (optional PNG/SVG/PDF)
//	         ↓
//	[render/text] → console
//
// # Quick Start
//
// Run the whole sequence:
//
//	runner := pipeline.NewRunner(os.Stdout, pipeline.NewPlainNotifier(os.Stdout), nil)
//	result, err := runner.Run(ctx, vitals.Default(), pipeline.Options{})
//
// Or call a renderer directly:
//
//	text.Render(os.Stdout, vitals.Default())
//	static.Write("chart.html", vitals.Default(), static.Options{})
//
// # Main Packages
//
// [render/interactive] - go-echarts horizontal bar chart page. Requires the
// ECharts runtime; [interactive.Renderer.Check] is its preflight.
//
// [render/static] - Self-contained HTML/CSS document from an embedded template.
//
// [render/text] - Unicode block-character bars for terminals.
//
// [render/image] - go-chart PNG and SVG export; PDF through rsvg-convert.
//
// [render] - Capability interface and SVG to PDF conversion.
//
// # Testing
//
//	go test ./...              # All tests
//	go test ./pkg/pipeline     # Orchestration only
//	go test -run Example ./... # Examples only
//
// [vitals]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/vitals
// [render]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/errors
// [artifact]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/artifact
// [observability]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/buildinfo
// [render/interactive]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render/interactive
// [render/static]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render/static
// [render/text]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render/text
// [render/image]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render/image
// [interactive.Renderer.Check]: https://pkg.go.dev/github.com/matzehuels/vitalchart/pkg/render/interactive#Renderer.Check
package pkg

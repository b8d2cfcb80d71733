// Package render provides the pieces shared by vitalchart's renderers.
//
// # Overview
//
// Each renderer lives in its own subpackage and draws the same
// [vitals.Dataset]:
//
//   - [text]: proportional bar rows for a terminal
//   - [static]: a self-contained styled HTML document
//   - [interactive]: an interactive chart page built with go-echarts
//   - [image]: PNG, SVG or PDF bar chart images built with go-chart
//
// # Capabilities
//
// Some renderers depend on things outside the binary: the ECharts runtime
// assets, or the rsvg-convert tool for PDF export. These are modeled as a
// [Capability] that is checked explicitly before rendering, so a missing
// backend is reported as CAPABILITY_UNAVAILABLE up front instead of failing
// halfway through a write:
//
//	if err := render.LookPath("rsvg-convert").Check(ctx); err != nil {
//	    // fall back or skip
//	}
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg).
//
// [text]: github.com/matzehuels/vitalchart/pkg/render/text
// [static]: github.com/matzehuels/vitalchart/pkg/render/static
// [interactive]: github.com/matzehuels/vitalchart/pkg/render/interactive
// [image]: github.com/matzehuels/vitalchart/pkg/render/image
// [vitals.Dataset]: github.com/matzehuels/vitalchart/pkg/vitals.Dataset
package render

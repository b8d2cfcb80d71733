// Package interactive renders the threshold dataset as an interactive
// horizontal bar chart page using go-echarts.
//
// # Overview
//
// The chart has one bar per record, in dataset order, labeled outside the bar
// with the threshold and unit ("2500.0ms", "200.0ms", "0.1"). Title, axis
// captions, size and the single bar color come from [Options].
//
//	r := interactive.New(interactive.Options{})
//	if err := r.Check(ctx); err != nil {
//	    // CAPABILITY_UNAVAILABLE: use another renderer
//	}
//	n, err := r.Write(ctx, "core_web_vitals_chart.html", vitals.Default())
//
// # Capability
//
// The page is driven by the ECharts runtime, loaded from [Options.AssetsHost].
// [Renderer.Check] is the explicit preflight for it. A disabled renderer, a
// malformed host, a local assets directory without echarts.min.js, or a
// remote host that does not answer a HEAD request for echarts.min.js with
// 200 OK is reported as CAPABILITY_UNAVAILABLE. [Renderer.Write] runs the
// same check and renders into memory before touching the output file.
//
// # Determinism
//
// The chart element ID is a name-based UUID derived from the dataset and
// options, so rendering the same input twice yields identical bytes.
package interactive

// Package plot draws rose (polar area) charts.
//
// Each magnitude becomes an equal-angle wedge whose radius is proportional
// to the magnitude, starting at twelve o'clock and running clockwise.
// A chart is configured through string keys, then drawn once:
//
//	r := plot.New(dc, []float64{3, 5, 2, 8})
//	_ = r.Set("chart.colors", []string{"Gradient(#408040:red:#7070A0)"})
//	_ = r.Set("chart.background.grid.spokes", 16)
//	err := r.Draw()
//
// The "chart." prefix on keys is optional.
package plot

package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//annotationStyle is the centered small-print style used for in-rectangle
//job labels.
func annotationStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plotter.DefaultFont, vg.Points(8)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

//thinBlackOutline is the rectangle edge style shared by the gantt charts.
func thinBlackOutline() draw.LineStyle {
	return draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(0.5),
	}
}

//withAlpha makes a translucent copy of a color.
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}

//rectPoints returns the corners of an axis-aligned data-space rectangle in
//canvas coordinates.  trX/trY come from plt.Transforms.
func rectPoints(trX, trY func(float64) vg.Length, x0, x1, y0, y1 float64) []vg.Point {
	return []vg.Point{
		{X: trX(x0), Y: trY(y0)},
		{X: trX(x1), Y: trY(y0)},
		{X: trX(x1), Y: trY(y1)},
		{X: trX(x0), Y: trY(y1)},
	}
}

//fillRect fills (and optionally outlines) one data-space rectangle, clipped
//to the canvas.
func fillRect(c draw.Canvas, trX, trY func(float64) vg.Length, x0, x1, y0, y1 float64, fill color.Color, outline *draw.LineStyle) {
	pts := rectPoints(trX, trY, x0, x1, y0, y1)
	c.FillPolygon(fill, c.ClipPolygonXY(pts))
	if outline != nil {
		closed := append(append([]vg.Point{}, pts...), pts[0])
		c.StrokeLines(*outline, c.ClipLinesXY(closed)...)
	}
}

//annotateRect draws a centered label in the middle of a data-space
//rectangle, if the center is visible.
func annotateRect(c draw.Canvas, trX, trY func(float64) vg.Length, x0, x1, y0, y1 float64, label string) {
	if label == "" {
		return
	}
	center := vg.Point{
		X: (trX(x0) + trX(x1)) / 2,
		Y: (trY(y0) + trY(y1)) / 2,
	}
	if !c.Contains(center) {
		return
	}
	c.FillText(annotationStyle(), center, label)
}

//timeAxis switches an axis to calendar-time tick formatting.  The data
//itself stays in (Unix) seconds.
func timeAxis(axis *plot.Axis) {
	axis.Tick.Marker = plot.TimeTicks{Format: "2006-01-02\n15:04:05"}
}

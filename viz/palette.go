package viz

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

//OrderedColors is a fixed categorical palette for small sets (legend
//swatches, per-jobset silhouettes, comparison lines).
var OrderedColors = []color.RGBA{
	{0, 0, 0, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{125, 0, 0, 255},
	{0, 125, 0, 255},
	{0, 0, 125, 255},
	{125, 125, 0, 255},
	{125, 0, 125, 255},
	{0, 125, 125, 255},
	{125, 125, 125, 255},
	{200, 200, 200, 255},
	{255, 125, 0, 255},
	{0, 125, 255, 255},
}

//GeneratePalette returns n visually distinct, fully saturated colors spread
//over the hue circle.
func GeneratePalette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	return palette.Rainbow(n, palette.Red, palette.Magenta, 1, 1, 1).Colors()
}

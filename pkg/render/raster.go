package render

import (
	"io"
	"os"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
)

// canvasMargin is the blank border fraction on each side of the drawing.
const canvasMargin = 0.06

func hexChannel(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v) / 255
}

func setColor(dc *gg.Context, hex string, alpha float64) {
	dc.SetRGBA(hexChannel(hex[1:3]), hexChannel(hex[3:5]), hexChannel(hex[5:7]), alpha)
}

// PNG rasterizes the composition through proj and writes a PNG image.
func PNG(w io.Writer, c *compose.Composition, style Style, proj Projection, width, height int) error {
	if err := style.Validate(); err != nil {
		return err
	}
	if err := geom.CheckMin("width", float64(width), 1); err != nil {
		return err
	}
	if err := geom.CheckMin("height", float64(height), 1); err != nil {
		return err
	}

	scene := flatten(c, proj)
	m := newCanvasMap(scene, width, height, canvasMargin)

	dc := gg.NewContext(width, height)
	setColor(dc, style.Background, 1)
	dc.Clear()
	dc.SetLineWidth(style.StrokeWidth)

	for _, circ := range scene.circles {
		x, y := m.point(circ.center)
		dc.DrawCircle(x, y, m.length(circ.radius))
		if style.ShowFill {
			setColor(dc, style.Fill, style.FillAlpha)
			dc.FillPreserve()
		}
		setColor(dc, style.Stroke, 1)
		dc.Stroke()
	}
	for _, p := range scene.paths {
		if len(p.points) == 0 {
			continue
		}
		x, y := m.point(p.points[0])
		dc.MoveTo(x, y)
		for _, pt := range p.points[1:] {
			x, y = m.point(pt)
			dc.LineTo(x, y)
		}
		if p.closed {
			dc.ClosePath()
			if style.ShowFill {
				setColor(dc, style.Fill, style.FillAlpha)
				dc.FillPreserve()
			}
		}
		setColor(dc, style.Stroke, 1)
		dc.Stroke()
	}
	return dc.EncodePNG(w)
}

// SavePNG renders to a file.
func SavePNG(path string, c *compose.Composition, style Style, proj Projection, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PNG(f, c, style, proj, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

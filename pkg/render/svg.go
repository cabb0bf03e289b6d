package render

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
)

func strokeStyle(s Style) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", s.Stroke, s.StrokeWidth)
}

func fillStyle(s Style) string {
	if !s.ShowFill {
		return strokeStyle(s)
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:%s;stroke-width:%g",
		s.Fill, s.FillAlpha, s.Stroke, s.StrokeWidth)
}

// SVG writes the composition as an SVG document.
func SVG(w io.Writer, c *compose.Composition, style Style, proj Projection, width, height int) error {
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

	canvas := svg.New(w)
	canvas.Start(float64(width), float64(height))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:"+style.Background)

	for _, circ := range scene.circles {
		x, y := m.point(circ.center)
		canvas.Circle(x, y, m.length(circ.radius), fillStyle(style))
	}
	for _, p := range scene.paths {
		if len(p.points) == 0 {
			continue
		}
		xs := make([]float64, len(p.points))
		ys := make([]float64, len(p.points))
		for i, pt := range p.points {
			xs[i], ys[i] = m.point(pt)
		}
		if p.closed {
			canvas.Polygon(xs, ys, fillStyle(style))
		} else if len(p.points) == 2 {
			canvas.Line(xs[0], ys[0], xs[1], ys[1], strokeStyle(style))
		} else {
			canvas.Polyline(xs, ys, strokeStyle(style))
		}
	}
	canvas.End()
	return nil
}

// SaveSVG renders to a file.
func SaveSVG(path string, c *compose.Composition, style Style, proj Projection, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SVG(f, c, style, proj, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

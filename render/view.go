package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
)

// Padding around the plot area, in pixels, for the title and axis labels
const padding = 40

const (
	// Largest image side, in pixels, that will be drawn
	MaxImageSize = 4096
	// Longest side FitView aims for
	FitImageSize = 2048
)

var ErrViewTooLarge = errors.New("view too large")

// The part of the plane that is drawn, and how many pixels one unit takes.
type View struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Scale      float64
}

var DefaultView = View{MinX: -10, MaxX: 120, MinY: -10, MaxY: 50, Scale: 5}

// View that fits all of the given polygons, with a margin of one tenth of the
// larger side. The scale is lowered when needed so that the longer image side
// stays within FitImageSize.
func FitView(scale float64, polygons ...internal.Polygon) View {
	bounds := internal.EmptyBounds()
	for _, poly := range polygons {
		for _, p := range poly.Points {
			bounds = bounds.Extend(p)
		}
	}
	if math.IsInf(bounds.MinX, 1) {
		return DefaultView
	}
	margin := math.Max(bounds.MaxX-bounds.MinX, bounds.MaxY-bounds.MinY) * 0.1
	if margin == 0 {
		margin = 1
	}
	v := View{
		MinX:  bounds.MinX - margin,
		MaxX:  bounds.MaxX + margin,
		MinY:  bounds.MinY - margin,
		MaxY:  bounds.MaxY + margin,
		Scale: scale,
	}
	longest := math.Max(v.MaxX-v.MinX, v.MaxY-v.MinY)
	if limit := float64(FitImageSize - 2*padding); v.Scale*longest > limit {
		v.Scale = limit / longest
	}
	return v
}

// Check that the view can be drawn: a positive scale, a non-empty plot area,
// and an image no larger than MaxImageSize on either side. This runs before
// any pixels are allocated.
func (v View) Validate() error {
	width := v.Scale * (v.MaxX - v.MinX)
	height := v.Scale * (v.MaxY - v.MinY)
	if !(v.Scale > 0) || !(width > 0) || !(height > 0) {
		return errors.Errorf("view %+v has an empty plot area", v)
	}
	limit := float64(MaxImageSize - 2*padding)
	if width > limit || height > limit {
		return errors.Wrapf(ErrViewTooLarge, "plot area %.0fx%.0f px exceeds %d px", width, height, MaxImageSize)
	}
	return nil
}

func (v View) Size() (width, height int) {
	width = int(math.Ceil(v.Scale*(v.MaxX-v.MinX))) + padding*2
	height = int(math.Ceil(v.Scale*(v.MaxY-v.MinY))) + padding*2
	return width, height
}

// World to pixel transform. The y axis is flipped so the origin is at the
// bottom left, like a plot.
func (v View) Matrix() gg.Matrix {
	_, height := v.Size()
	return gg.Identity().
		Translate(0, float64(height)).
		Scale(1, -1).
		Translate(padding, padding).
		Scale(v.Scale, v.Scale).
		Translate(-v.MinX, -v.MinY)
}

func (v View) ToPixel(p internal.Point) (x, y float64) {
	return v.Matrix().TransformPoint(p.X, p.Y)
}

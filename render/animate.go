// Package render draws the moving polygon sliding towards the fixed one, and
// highlights the collision once the animation reaches it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/osuushi/polycollide/internal"
	"golang.org/x/image/font/basicfont"
)

const (
	DefaultFrames     = 100
	DefaultFrameDelay = 50 * time.Millisecond
)

var (
	fixedColor     = color.RGBA{0, 0, 255, 255}
	movingColor    = color.RGBA{0, 153, 0, 255}
	collisionColor = color.RGBA{255, 0, 0, 255}
	edgeQColor     = color.RGBA{255, 153, 0, 255}
	axisColor      = color.RGBA{153, 153, 153, 255}
	textColor      = color.RGBA{0, 0, 0, 255}
)

type Animator struct {
	Moving    internal.Polygon
	Fixed     internal.Polygon
	Collision *internal.Collision
	// Offsets of the moving polygon, one per frame
	Frames internal.Sampler
	View   View
	Delay  time.Duration
	Title  string
}

// Animator over [0, frameRange] with the default frame count, view and delay.
// A nil collision draws the motion only.
func NewAnimator(moving, fixed internal.Polygon, collision *internal.Collision, frameRange float64) *Animator {
	return &Animator{
		Moving:    moving,
		Fixed:     fixed,
		Collision: collision,
		Frames:    internal.Sampler{Range: frameRange, Count: DefaultFrames},
		View:      DefaultView,
		Delay:     DefaultFrameDelay,
		Title:     "Polygon Collision Animation",
	}
}

// One offset per frame. A single frame shows the starting position.
func (a *Animator) Offsets() []float64 {
	if a.Frames.Count == 1 {
		return []float64{0}
	}
	return a.Frames.Offsets()
}

// Has the animation reached the collision at this offset?
func (a *Animator) Collided(offset float64) bool {
	return a.Collision != nil && offset >= a.Collision.Offset
}

// Draw the fixed polygon, the moving polygon shifted by offset, and the
// collision markers once offset has reached the collision. Views that fail
// View.Validate are rejected before the image is allocated.
func (a *Animator) DrawFrame(offset float64) (image.Image, error) {
	if err := a.View.Validate(); err != nil {
		return nil, err
	}
	width, height := a.View.Size()
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetFontFace(basicfont.Face7x13)

	a.drawAxes(c)

	c.SetLineWidth(2)
	a.drawPolygon(c, a.Fixed, fixedColor)
	a.drawPolygon(c, a.Moving.Translate(offset, 0), movingColor)

	legend := []legendEntry{
		{"Polygon Q", fixedColor, false},
		{"Polygon P", movingColor, false},
	}
	if a.Collided(offset) {
		c.SetDash(6, 4)
		a.drawEdge(c, a.Collision.EdgeP, collisionColor)
		a.drawEdge(c, a.Collision.EdgeQ, edgeQColor)
		c.SetDash()

		x, y := a.View.ToPixel(a.Collision.Point())
		c.SetColor(collisionColor)
		c.DrawCircle(x, y, 4)
		c.Fill()

		legend = append(legend,
			legendEntry{"Collision Point", collisionColor, false},
			legendEntry{"Colliding Edge (P)", collisionColor, true},
			legendEntry{"Colliding Edge (Q)", edgeQColor, true},
		)
	}

	a.drawLabels(c, offset)
	drawLegend(c, legend)
	return c.Image(), nil
}

func (a *Animator) drawPolygon(c *gg.Context, poly internal.Polygon, col color.Color) {
	if len(poly.Points) == 0 {
		return
	}
	c.NewSubPath()
	for i, p := range poly.Points {
		x, y := a.View.ToPixel(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetColor(col)
	c.Stroke()
}

func (a *Animator) drawEdge(c *gg.Context, edge internal.Edge, col color.Color) {
	x1, y1 := a.View.ToPixel(edge.Start)
	x2, y2 := a.View.ToPixel(edge.End)
	c.SetColor(col)
	c.DrawLine(x1, y1, x2, y2)
	c.Stroke()
}

// Plot frame plus the x and y axes where they fall inside the view
func (a *Animator) drawAxes(c *gg.Context) {
	v := a.View
	c.SetColor(axisColor)
	c.SetLineWidth(1)

	x0, y0 := v.ToPixel(internal.Point{X: v.MinX, Y: v.MinY})
	x1, y1 := v.ToPixel(internal.Point{X: v.MaxX, Y: v.MaxY})
	c.DrawRectangle(x0, y1, x1-x0, y0-y1)
	c.Stroke()

	if v.MinY <= 0 && v.MaxY >= 0 {
		ax, ay := v.ToPixel(internal.Point{X: v.MinX, Y: 0})
		bx, by := v.ToPixel(internal.Point{X: v.MaxX, Y: 0})
		c.DrawLine(ax, ay, bx, by)
		c.Stroke()
	}
	if v.MinX <= 0 && v.MaxX >= 0 {
		ax, ay := v.ToPixel(internal.Point{X: 0, Y: v.MinY})
		bx, by := v.ToPixel(internal.Point{X: 0, Y: v.MaxY})
		c.DrawLine(ax, ay, bx, by)
		c.Stroke()
	}

	// Range labels at the corners
	c.SetColor(textColor)
	c.DrawStringAnchored(fmt.Sprintf("%g", v.MinX), x0, y0+4, 0, 1)
	c.DrawStringAnchored(fmt.Sprintf("%g", v.MaxX), x1, y0+4, 1, 1)
	c.DrawStringAnchored(fmt.Sprintf("%g", v.MinY), x0-4, y0, 1, 0)
	c.DrawStringAnchored(fmt.Sprintf("%g", v.MaxY), x0-4, y1, 1, 1)
}

func (a *Animator) drawLabels(c *gg.Context, offset float64) {
	width, height := a.View.Size()
	c.SetColor(textColor)
	c.DrawStringAnchored(fmt.Sprintf("%s (dx=%.2f)", a.Title, offset), float64(width)/2, padding/2, 0.5, 0.5)
	c.DrawStringAnchored("X", float64(width)/2, float64(height)-padding/4, 0.5, 0)
	c.DrawStringAnchored("Y", padding/4, float64(height)/2, 0, 0.5)
}

type legendEntry struct {
	label  string
	color  color.Color
	dashed bool
}

// Legend in the top right corner of the plot
func drawLegend(c *gg.Context, entries []legendEntry) {
	const lineHeight = 15
	const swatch = 16
	right := float64(c.Width()) - padding - 8
	top := float64(padding) + 8

	c.SetLineWidth(2)
	for i, entry := range entries {
		y := top + float64(i)*lineHeight
		c.SetColor(entry.color)
		if entry.dashed {
			c.SetDash(4, 2)
		}
		c.DrawLine(right-swatch, y, right, y)
		c.Stroke()
		c.SetDash()
		c.SetColor(textColor)
		c.DrawStringAnchored(entry.label, right-swatch-6, y, 1, 0.35)
	}
}

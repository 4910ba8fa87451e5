package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Where an export run writes to. Empty paths and a nil Preview writer are
// skipped.
type Outputs struct {
	GIF     string
	PNG     string
	Preview io.Writer
}

// Write every requested output. Failures are logged as warnings and do not
// stop the remaining outputs; the number of failures is returned.
func (a *Animator) Export(logger *zap.Logger, out Outputs) (failed int) {
	try := func(what, target string, fn func() error) {
		if err := fn(); err != nil {
			failed++
			logger.Warn("could not "+what, zap.String("target", target), zap.Error(err))
			return
		}
		logger.Info(what+" done", zap.String("target", target))
	}

	if out.GIF != "" {
		try("save animation", out.GIF, func() error { return a.SaveGIF(out.GIF) })
	}
	if out.PNG != "" {
		try("save final frame", out.PNG, func() error { return a.SavePNG(out.PNG, a.lastOffset()) })
	}
	if out.Preview != nil {
		try("show preview", "terminal", func() error { return a.Preview(out.Preview) })
	}
	return failed
}

func (a *Animator) EncodeGIF(w io.Writer) error {
	offsets := a.Offsets()
	if len(offsets) == 0 {
		return errors.New("animation has no frames")
	}
	if err := a.View.Validate(); err != nil {
		return err
	}

	// GIF delays are in hundredths of a second
	delay := int(a.Delay.Milliseconds() / 10)
	anim := &gif.GIF{LoopCount: -1}
	for _, offset := range offsets {
		frame, err := a.DrawFrame(offset)
		if err != nil {
			return err
		}
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.WebSafe)
		draw.Draw(paletted, bounds, frame, bounds.Min, draw.Src)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	return errors.Wrap(gif.EncodeAll(w, anim), "encode gif")
}

func (a *Animator) SaveGIF(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create gif")
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return a.EncodeGIF(f)
}

func (a *Animator) SavePNG(path string, offset float64) error {
	frame, err := a.DrawFrame(offset)
	if err != nil {
		return err
	}
	return errors.Wrap(gg.SavePNG(path, frame), "save png")
}

// Show the last frame inline in the terminal (iTerm image protocol).
func (a *Animator) Preview(w io.Writer) error {
	frame, err := a.DrawFrame(a.lastOffset())
	if err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatImage(frame, w), "print preview")
}

// Offset of the final frame
func (a *Animator) lastOffset() float64 {
	offsets := a.Offsets()
	if len(offsets) == 0 {
		return a.Frames.Range
	}
	return offsets[len(offsets)-1]
}

package render

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testAnimator(t *testing.T) *Animator {
	moving := internal.Polygon{Points: []internal.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	fixed := internal.Polygon{Points: []internal.Point{{X: 30, Y: 5}, {X: 40, Y: 0}, {X: 40, Y: 10}, {X: 50, Y: 60}, {X: 40, Y: 65}}}
	collision, err := internal.NewDetector(moving, fixed).Detect()
	require.NoError(t, err)
	require.NotNil(t, collision)

	a := NewAnimator(moving, fixed, collision, internal.DefaultRange)
	a.Frames.Count = 4
	a.View = View{MinX: -10, MaxX: 120, MinY: -10, MaxY: 70, Scale: 3}
	return a
}

func countRed(img image.Image) int {
	count := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 < 80 && b>>8 < 80 {
				count++
			}
		}
	}
	return count
}

func TestViewToPixel(t *testing.T) {
	v := View{MinX: 0, MaxX: 10, MinY: 0, MaxY: 20, Scale: 2}
	width, height := v.Size()
	assert.Equal(t, 20+2*padding, width)
	assert.Equal(t, 40+2*padding, height)

	// Origin at the bottom left of the plot area
	x, y := v.ToPixel(internal.Point{X: 0, Y: 0})
	assert.InDelta(t, padding, x, 1e-9)
	assert.InDelta(t, float64(height-padding), y, 1e-9)

	x, y = v.ToPixel(internal.Point{X: 10, Y: 20})
	assert.InDelta(t, float64(width-padding), x, 1e-9)
	assert.InDelta(t, padding, y, 1e-9)
}

func TestFitView(t *testing.T) {
	v := FitView(4, internal.Polygon{Points: []internal.Point{{X: 0, Y: 0}, {X: 10, Y: 5}}})
	assert.Equal(t, View{MinX: -1, MaxX: 11, MinY: -1, MaxY: 6, Scale: 4}, v)
	assert.Equal(t, DefaultView, FitView(4))

	t.Run("wide scene is scaled down", func(t *testing.T) {
		v := FitView(4, internal.Polygon{Points: []internal.Point{{X: 0, Y: 0}, {X: 1e5, Y: 10}}})
		assert.Less(t, v.Scale, 4.0)
		assert.NoError(t, v.Validate())
		width, height := v.Size()
		assert.InDelta(t, FitImageSize, width, 1)
		assert.Less(t, height, width)
	})
}

func TestViewValidate(t *testing.T) {
	assert.NoError(t, DefaultView.Validate())

	for name, v := range map[string]View{
		"zero scale":     {MinX: 0, MaxX: 10, MinY: 0, MaxY: 10, Scale: 0},
		"negative scale": {MinX: 0, MaxX: 10, MinY: 0, MaxY: 10, Scale: -1},
		"flat":           {MinX: 0, MaxX: 10, MinY: 5, MaxY: 5, Scale: 1},
		"inverted":       {MinX: 10, MaxX: 0, MinY: 0, MaxY: 10, Scale: 1},
	} {
		t.Run(name, func(t *testing.T) {
			err := v.Validate()
			assert.Error(t, err)
			assert.False(t, errors.Is(err, ErrViewTooLarge))
		})
	}

	t.Run("too large", func(t *testing.T) {
		v := View{MinX: 0, MaxX: 1e5, MinY: 0, MaxY: 10, Scale: 5}
		assert.True(t, errors.Is(v.Validate(), ErrViewTooLarge))
	})
}

func TestDrawFrame(t *testing.T) {
	a := testAnimator(t)
	width, height := a.View.Size()

	t.Run("before collision", func(t *testing.T) {
		frame, err := a.DrawFrame(0)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, width, height), frame.Bounds())
		assert.Zero(t, countRed(frame))
	})

	t.Run("after collision", func(t *testing.T) {
		frame, err := a.DrawFrame(a.Collision.Offset)
		require.NoError(t, err)
		assert.Greater(t, countRed(frame), 0)

		// The collision point is filled in
		x, y := a.View.ToPixel(a.Collision.Point())
		r, g, b, _ := frame.At(int(x), int(y)).RGBA()
		assert.Greater(t, r>>8, uint32(200))
		assert.Less(t, g>>8, uint32(80))
		assert.Less(t, b>>8, uint32(80))
	})

	t.Run("no collision", func(t *testing.T) {
		a := testAnimator(t)
		a.Collision = nil
		frame, err := a.DrawFrame(100)
		require.NoError(t, err)
		assert.Zero(t, countRed(frame))
	})

	t.Run("oversized view", func(t *testing.T) {
		a := testAnimator(t)
		a.View.Scale = 1e4
		frame, err := a.DrawFrame(0)
		assert.True(t, errors.Is(err, ErrViewTooLarge))
		assert.Nil(t, frame)
	})
}

func TestEncodeGIF(t *testing.T) {
	a := testAnimator(t)
	var buf bytes.Buffer
	require.NoError(t, a.EncodeGIF(&buf))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 4)
	assert.Equal(t, []int{5, 5, 5, 5}, decoded.Delay)

	t.Run("single frame", func(t *testing.T) {
		a := testAnimator(t)
		a.Frames.Count = 1
		assert.Equal(t, []float64{0}, a.Offsets())

		var buf bytes.Buffer
		require.NoError(t, a.EncodeGIF(&buf))
		decoded, err := gif.DecodeAll(&buf)
		require.NoError(t, err)
		assert.Len(t, decoded.Image, 1)
	})

	t.Run("no frames", func(t *testing.T) {
		a := testAnimator(t)
		a.Frames.Count = 0
		assert.Error(t, a.EncodeGIF(&bytes.Buffer{}))
	})

	t.Run("oversized view", func(t *testing.T) {
		a := testAnimator(t)
		a.View.Scale = 1e4
		var buf bytes.Buffer
		assert.True(t, errors.Is(a.EncodeGIF(&buf), ErrViewTooLarge))
		assert.Zero(t, buf.Len())
	})
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	t.Run("writes files", func(t *testing.T) {
		a := testAnimator(t)
		gifPath := filepath.Join(dir, "anim.gif")
		pngPath := filepath.Join(dir, "final.png")

		failed := a.Export(zap.NewNop(), Outputs{GIF: gifPath, PNG: pngPath})
		assert.Zero(t, failed)
		for _, path := range []string{gifPath, pngPath} {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		}
	})

	t.Run("failures are warnings", func(t *testing.T) {
		a := testAnimator(t)
		core, logs := observer.New(zapcore.InfoLevel)
		missing := filepath.Join(dir, "missing", "anim.gif")
		var preview bytes.Buffer

		failed := a.Export(zap.New(core), Outputs{GIF: missing, Preview: &preview})
		assert.Equal(t, 1, failed)

		warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "could not save animation", warnings[0].Message)
		assert.Equal(t, missing, warnings[0].ContextMap()["target"])

		// The preview still ran after the failed export
		assert.Equal(t, 1, logs.FilterMessage("show preview done").Len())
		assert.Greater(t, preview.Len(), 0)
	})

	t.Run("wide scene fits the image cap", func(t *testing.T) {
		moving := internal.Polygon{Points: []internal.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
		fixed := internal.Polygon{Points: []internal.Point{{X: 1e5, Y: 0}, {X: 1e5 + 10, Y: 0}, {X: 1e5 + 5, Y: 10}}}
		a := NewAnimator(moving, fixed, nil, 1e5)
		a.Frames.Count = 2
		a.View = FitView(DefaultView.Scale, moving, moving.Translate(1e5, 0), fixed)
		pngPath := filepath.Join(dir, "wide.png")
		var preview bytes.Buffer

		failed := a.Export(zap.NewNop(), Outputs{PNG: pngPath, Preview: &preview})
		assert.Zero(t, failed)

		f, err := os.Open(pngPath)
		require.NoError(t, err)
		defer f.Close()
		config, err := png.DecodeConfig(f)
		require.NoError(t, err)
		assert.LessOrEqual(t, config.Width, FitImageSize+1)
		assert.LessOrEqual(t, config.Height, FitImageSize+1)
		assert.Greater(t, preview.Len(), 0)
	})

	t.Run("oversized view is a warning", func(t *testing.T) {
		a := testAnimator(t)
		a.View = View{MinX: -10, MaxX: 1e5, MinY: -10, MaxY: 10, Scale: 5}
		core, logs := observer.New(zapcore.InfoLevel)
		pngPath := filepath.Join(dir, "huge.png")

		failed := a.Export(zap.New(core), Outputs{PNG: pngPath})
		assert.Equal(t, 1, failed)

		warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "could not save final frame", warnings[0].Message)
		assert.NoFileExists(t, pngPath)
	})
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polycollide/dbg"
	"github.com/osuushi/polycollide/internal"
	"github.com/osuushi/polycollide/internal/logging"
	"github.com/osuushi/polycollide/render"
	"github.com/osuushi/polycollide/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	scenePath   string
	sampleRange float64
	rangeSet    bool
	samples     int
	samplesSet  bool
	prune       bool
	saveScene   string
	gif         string
	png         string
	frames      int
	fit         bool
	preview     bool
	debug       bool
	noColor     bool
}

// Finds where a polygon sliding right first hits a fixed polygon, prints the
// result, and optionally renders the motion to a GIF, a PNG of the final frame
// and an inline terminal preview.
//
// The scene is a YAML, SVG or plain text file (see the scene package). With no
// scene, the built in example is used. "-" reads plain text from stdin.
func main() {
	var opts options
	kingpin.MustParse(newApp(&opts).Parse(os.Args[1:]))

	logger := logging.New(opts.debug)
	code := run(opts, logger, os.Stdout)
	_ = logger.Sync()
	os.Exit(code)
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("polycollide", "Sampled collision detection between a sliding polygon and a fixed one.")
	app.Arg("scene", "Scene file (.yaml, .svg, or text). \"-\" reads text from stdin.").StringVar(&opts.scenePath)
	// Range and samples only override the scene when given
	app.Flag("range", "Translation range R; the moving polygon is shifted over [0, R]. Overrides the scene.").
		PlaceHolder("100").
		PreAction(func(*kingpin.ParseContext) error { opts.rangeSet = true; return nil }).
		Float64Var(&opts.sampleRange)
	app.Flag("samples", "Number of offsets sampled over the range (at least 2). Overrides the scene.").
		PlaceHolder("500").
		PreAction(func(*kingpin.ParseContext) error { opts.samplesSet = true; return nil }).
		IntVar(&opts.samples)
	app.Flag("prune", "Skip edge pairs with disjoint bounding boxes.").BoolVar(&opts.prune)
	app.Flag("save-scene", "Write the scene, with flag overrides applied, to this YAML file.").StringVar(&opts.saveScene)
	app.Flag("gif", "Write the animation to this GIF file.").StringVar(&opts.gif)
	app.Flag("png", "Write the final frame to this PNG file.").StringVar(&opts.png)
	app.Flag("frames", "Number of animation frames. A single frame shows the starting position.").Default(strconv.Itoa(render.DefaultFrames)).IntVar(&opts.frames)
	app.Flag("fit", "Fit the view to the scene instead of the default plot window.").BoolVar(&opts.fit)
	app.Flag("preview", "Print the final frame inline (iTerm image protocol).").BoolVar(&opts.preview)
	app.Flag("debug", "Verbose logging and a full dump of the result.").BoolVar(&opts.debug)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	app.Validate(func(*kingpin.Application) error {
		if opts.frames < 1 {
			return errors.Errorf("--frames must be at least 1, got %d", opts.frames)
		}
		return nil
	})
	return app
}

func run(opts options, logger *zap.Logger, out io.Writer) int {
	au := aurora.NewAurora(!opts.noColor)

	s, err := loadScene(opts)
	if err != nil {
		logger.Error("could not load scene", zap.Error(err))
		return 1
	}

	logger.Debug("detecting",
		zap.String("moving", dbg.Name(&s.Moving)),
		zap.Int("movingVertices", len(s.Moving.Points)),
		zap.String("fixed", dbg.Name(&s.Fixed)),
		zap.Int("fixedVertices", len(s.Fixed.Points)),
		zap.Float64("range", s.Sampler.Range),
		zap.Int("samples", s.Sampler.Count),
		zap.Bool("prune", s.Prune),
	)

	collision, err := s.Detector().Detect()
	if err != nil {
		logger.Error("detection failed", zap.Error(err))
		return 1
	}

	if collision == nil {
		fmt.Fprintln(out, au.Green("No collision"), "within", s.Sampler.Range, "units")
	} else {
		logger.Debug("collision",
			zap.String("edgeP", dbg.Name(collision.EdgeP)),
			zap.String("edgeQ", dbg.Name(collision.EdgeQ)),
			zap.Int("sample", collision.Sample),
		)
		fmt.Fprintf(out, "%s at dx=%s (sample %d of %d)\n",
			au.Bold(au.Red("Collision")), au.Bold(fmt.Sprintf("%.4f", collision.Offset)), collision.Sample, s.Sampler.Count)
		fmt.Fprintf(out, "  P edge %d: %v -> %v\n", collision.IndexP, collision.EdgeP.Start, collision.EdgeP.End)
		fmt.Fprintf(out, "  Q edge %d: %v -> %v\n", collision.IndexQ, collision.EdgeQ.Start, collision.EdgeQ.End)
	}
	if opts.debug {
		fmt.Fprintf(out, "%# v\n", pretty.Formatter(collision))
	}

	// Output problems never change the exit status
	failed := 0
	if opts.saveScene != "" {
		if err := s.Save(opts.saveScene); err != nil {
			failed++
			logger.Warn("could not save scene", zap.String("target", opts.saveScene), zap.Error(err))
		} else {
			logger.Info("save scene done", zap.String("target", opts.saveScene))
		}
	}
	if opts.gif != "" || opts.png != "" || opts.preview {
		failed += export(opts, s, collision, logger, out)
	}
	if failed > 0 {
		fmt.Fprintln(out, au.Yellow(fmt.Sprintf("%d output(s) could not be written", failed)))
	}
	return 0
}

func export(opts options, s *scene.Scene, collision *internal.Collision, logger *zap.Logger, out io.Writer) int {
	animator := render.NewAnimator(s.Moving, s.Fixed, collision, s.Sampler.Range)
	animator.Frames.Count = opts.frames
	if opts.fit {
		animator.View = render.FitView(render.DefaultView.Scale,
			s.Moving, s.Moving.Translate(s.Sampler.Range, 0), s.Fixed)
	}
	outputs := render.Outputs{GIF: opts.gif, PNG: opts.png}
	if opts.preview {
		outputs.Preview = out
	}
	return animator.Export(logger, outputs)
}

// Scene from the file (or the built in example), with flags taking precedence
func loadScene(opts options) (*scene.Scene, error) {
	s := scene.Default()
	if opts.scenePath != "" {
		var err error
		if s, err = scene.Load(opts.scenePath); err != nil {
			return nil, err
		}
	}
	if opts.rangeSet {
		s.Sampler.Range = opts.sampleRange
	}
	if opts.samplesSet {
		s.Sampler.Count = opts.samples
	}
	if opts.prune {
		s.Prune = true
	}
	return s, nil
}

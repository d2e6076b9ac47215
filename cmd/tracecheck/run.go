package main

import (
	"fmt"
	"io"

	geometry "github.com/getodk/collect-sub007"
	"github.com/getodk/collect-sub007/internal/dbg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const (
	exitOK = iota
	exitIntersecting
	exitInvalid
)

type options struct {
	epsilon float64
	format  string
	reopen  bool
	pngPath string
	imgcat  bool
	scale   float64
	color   bool
	verbose bool
}

// Swapped out in tests, since the real one needs an iTerm terminal.
var catImage = imgcat.CatFile

// segmentKey identifies a segment across the whole run, for naming purposes.
type segmentKey struct {
	trace, segment int
}

// Check every trace in the input and print a verdict for each. The returned
// status is the worst outcome seen.
func run(opts options, in io.Reader, out io.Writer) (int, error) {
	traces, err := readTraces(in, opts.format)
	if err != nil {
		return exitInvalid, err
	}

	au := aurora.NewAurora(opts.color)
	status := exitOK
	for i := range traces {
		trace := traces[i]
		if opts.reopen {
			trace = trace.Open()
			traces[i] = trace
		}

		if opts.verbose {
			for j, segment := range trace.Segments() {
				fmt.Fprintf(out, "  %s #%d %s\n", dbg.Name(segmentKey{i, j}), j, segment)
			}
		}

		err := geometry.Validate(trace.Points(), opts.epsilon)
		if err == nil {
			fmt.Fprintf(out, "trace %d: %s\n", i+1, au.Green("ok"))
			continue
		}

		if intersection, ok := err.(*geometry.SelfIntersectionError); ok {
			fmt.Fprintf(out, "trace %d: %s (segments %d and %d)\n",
				i+1, au.Red("self-intersecting"), intersection.First, intersection.Second)
			if opts.verbose {
				fmt.Fprintf(out, "  %s crosses %s\n",
					dbg.Name(segmentKey{i, intersection.First}),
					dbg.Name(segmentKey{i, intersection.Second}))
			}
			if status < exitIntersecting {
				status = exitIntersecting
			}
			continue
		}

		if errors.Cause(err) == geometry.ErrNonFiniteCoordinate {
			fmt.Fprintf(out, "trace %d: %s (%v)\n", i+1, au.Red("invalid"), err)
			status = exitInvalid
			continue
		}
		return exitInvalid, err
	}

	if opts.pngPath != "" && len(traces) > 0 {
		if err := traces[0].SavePNG(opts.pngPath, opts.scale, opts.epsilon); err != nil {
			return exitInvalid, errors.Wrapf(err, "writing %s", opts.pngPath)
		}
		if opts.imgcat {
			if err := catImage(opts.pngPath, out); err != nil {
				return exitInvalid, errors.Wrapf(err, "showing %s", opts.pngPath)
			}
		}
	}
	return status, nil
}

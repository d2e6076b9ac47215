package main

import (
	"io"
	"log"
	"os"
	"strconv"

	geometry "github.com/getodk/collect-sub007"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Checks traces for self-intersection. Input on stdin (or FILE) is read in one
// of the supported formats, and a verdict is printed per trace. The exit status
// is 1 if any trace intersects itself and 2 if the input could not be used.
var (
	app = kingpin.New("tracecheck", "Check drawn lines and polygons for self-intersection.")

	epsilon = app.Flag("epsilon", "Tolerance for treating points as collinear.").
		Default(strconv.FormatFloat(geometry.DefaultEpsilon, 'g', -1, 64)).
		Envar("TRACECHECK_EPSILON").
		Float64()
	format = app.Flag("format", "Input format.").
		Default(formatPlain).
		Enum(formatPlain, formatODK, formatGeoJSON)
	keepClosing = app.Flag("keep-closing-point", "Check closed rings as given instead of dropping the repeated first point.").Bool()
	pngPath     = app.Flag("png", "Render the first trace to this PNG file.").String()
	showImage   = app.Flag("imgcat", "Also print the rendered PNG to the terminal (iTerm only).").Bool()
	scale       = app.Flag("scale", "Pixels per coordinate unit when rendering.").Default("50").Float64()
	noColor     = app.Flag("no-color", "Disable colored output.").Bool()
	verbose     = app.Flag("verbose", "List segments before each verdict.").Short('v').Bool()
	inputFile   = app.Arg("file", "Input file. Defaults to stdin.").File()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tracecheck: ")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	os.Exit(check(options{
		epsilon: *epsilon,
		format:  *format,
		reopen:  !*keepClosing,
		pngPath: *pngPath,
		imgcat:  *showImage,
		scale:   *scale,
		color:   !*noColor,
		verbose: *verbose,
	}, *inputFile, os.Stdout))
}

// Run against the file, or stdin when it is nil, and log any error. Split out
// of main so the deferred close runs before the process exits.
func check(opts options, file *os.File, out io.Writer) int {
	var in io.Reader = os.Stdin
	if file != nil {
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("closing input: %v", err)
			}
		}()
		in = file
	}

	status, err := run(opts, in, out)
	if err != nil {
		log.Printf("%v", err)
	}
	return status
}

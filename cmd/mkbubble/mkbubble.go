package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abworrall/mkbubble/pkg/bubble"
	"github.com/abworrall/mkbubble/pkg/emath"
	"github.com/abworrall/mkbubble/pkg/frame"
)

var (
	fVerbosity  int
	fDebug      bool
	fConfigFile string
	fSeeder     string
	fKernel     string
	fMaxRadius  int
	fMinRadius  int
	fPasses     int
	fOverlap    int
	fRandomSeed int64
	fBlurSigma  float64
	fChartFile  string
	fDebugDir   string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.BoolVar(&fDebug, "d", false, "activate debug mode: write the mask and pass images")
	flag.BoolVar(&fDebug, "debug", false, "same as -d")
	flag.StringVar(&fConfigFile, "config", "", "YAML config file; flags override it")

	flag.StringVar(&fSeeder, "seeder", "edt", "how to pick circle centres: "+bubble.ListSeeders())
	flag.StringVar(&fKernel, "kernel", "exact", "distance transform for the edt seeder: "+emath.ListKernels())
	flag.IntVar(&fMaxRadius, "maxradius", 25, "biggest circle to try")
	flag.IntVar(&fMinRadius, "minradius", 3, "smallest circle to accept")
	flag.IntVar(&fPasses, "passes", 1, "1, or 2 to place maximal circles before filling gaps")
	flag.IntVar(&fOverlap, "overlap", 0, "remove a disc this many pixels smaller than each circle, so neighbours can overlap")
	flag.Int64Var(&fRandomSeed, "seed", 1, "seed for the random seeder")
	flag.Float64Var(&fBlurSigma, "blur", 0, "gaussian blur sigma applied before thresholding (0 = none)")
	flag.StringVar(&fChartFile, "chart", "", "write an HTML scatter chart of the circles to this file")
	flag.StringVar(&fDebugDir, "debugdir", ".", "where debug images go")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] IMG\n\nCovers the bright parts of IMG with circles, printing [[x,y,r],...],\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// buildConfig starts from the config file (if any), then applies any
// flags that were set explicitly on the command line.
func buildConfig(fs *flag.FlagSet) (frame.Config, error) {
	cfg := frame.NewConfig()
	if fConfigFile != "" {
		c, err := frame.LoadConfig(fConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbosity = fVerbosity
		case "d", "debug":
			cfg.Debug = fDebug
		case "seeder":
			cfg.Seeder = fSeeder
		case "kernel":
			cfg.Kernel = fKernel
		case "maxradius":
			cfg.MaxRadius = fMaxRadius
		case "minradius":
			cfg.MinRadius = fMinRadius
		case "passes":
			cfg.Passes = fPasses
		case "overlap":
			cfg.Overlap = bubble.Overlap{Mode: "subtract", Pixels: fOverlap}
		case "seed":
			cfg.RandomSeed = fRandomSeed
		case "blur":
			cfg.BlurSigma = fBlurSigma
		case "chart":
			cfg.ChartFilename = fChartFile
		case "debugdir":
			cfg.DebugDir = fDebugDir
		}
	})

	return cfg, cfg.Finalize()
}

// run does the work for one image, writing the result line to out.
func run(filename string, cfg frame.Config, out io.Writer) error {
	f, err := frame.Load(filename, cfg)
	if err != nil {
		return err
	}
	if err := f.Run(); err != nil {
		return err
	}
	if f.Verbosity > 0 {
		log.Printf("%s\n", f)
	}

	if f.Debug {
		if err := f.WriteDebugImages(); err != nil {
			log.Printf("warning, debug images: %v\n", err)
		}
	}
	if f.ChartFilename != "" {
		if err := f.WriteChart(f.ChartFilename); err != nil {
			log.Printf("warning, chart: %v\n", err)
		}
	}

	_, err = fmt.Fprintln(out, f.Output())
	return err
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := buildConfig(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Verbosity > 1 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	if err := run(flag.Arg(0), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

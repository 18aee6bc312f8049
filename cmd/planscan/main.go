package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/homequest/planscan/internal/detection"
	"github.com/homequest/planscan/internal/overlay"
	"github.com/homequest/planscan/internal/raster"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing so they work
	// without an image argument.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("planscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	overlayPath := flag.String("overlay", "", "write an annotated PNG of the detected geometry to this path")
	maxDim := flag.Int("max-dim", 0, "downscale the input so neither dimension exceeds this (0 = no downscale)")
	maxPixels := flag.Int("max-pixels", 0, "largest raster (width*height) to analyze; larger inputs yield an empty result")
	blurRadius := flag.Float64("blur", 0, "Gaussian blur radius applied before edge detection (0 = off)")
	compact := flag.Bool("compact", false, "emit compact JSON instead of indented")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "planscan - extract walls, doors and windows from a floor-plan image")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: planscan [options] <image>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  PLANSCAN_LOG_LEVEL=debug    Enable debug logging")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// All diagnostics go to stderr; stdout carries only the result JSON.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("PLANSCAN_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("planscan v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	img, err := raster.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("load error: %v", err)
	}
	img = raster.Downscale(img, *maxDim)

	cfg := detection.DefaultConfig()
	if *maxPixels > 0 {
		cfg.MaxPixels = *maxPixels
	}
	cfg.BlurRadius = *blurRadius

	result := detection.Analyze(img, cfg)
	log.Printf("detected %d walls, %d doors, %d windows",
		len(result.Walls), len(result.Doors), len(result.Windows))

	if *overlayPath != "" {
		annotated := overlay.Render(img, result)
		f, err := os.Create(*overlayPath)
		if err != nil {
			log.Fatalf("overlay error: %v", err)
		}
		if err := png.Encode(f, annotated); err != nil {
			f.Close()
			log.Fatalf("overlay encode error: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("overlay write error: %v", err)
		}
		if debug {
			log.Printf("wrote overlay to %s", *overlayPath)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode error: %v", err)
	}
}

// Command chamfer computes the chamfer distance map of a binary image and
// writes it as a 16-bit grayscale PNG.
//
// Usage:
//
//	chamfer [flags] input.png
//
// Any nonzero input pixel is foreground.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gogpu/chamfer"
	"github.com/gogpu/chamfer/internal/imageio"
)

func main() {
	var (
		maskName  = flag.String("mask", "borgefors", "catalog mask name (see -list)")
		weights   = flag.String("weights", "", "comma separated weights, overrides -mask")
		useFloat  = flag.Bool("float", false, "compute with float32 instead of 16-bit integers")
		normalize = flag.Bool("normalize", true, "divide distances by the orthogonal weight")
		output    = flag.String("out", "distance.png", "output file")
		scale     = flag.Int("scale", 1, "integer upscale factor of the output")
		list      = flag.Bool("list", false, "list catalog masks and exit")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *list {
		for i, m := range chamfer.Catalog() {
			fmt.Printf("%-16s %s\n", chamfer.CatalogNames()[i], m.Label())
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		chamfer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mask, err := selectMask(*maskName, *weights)
	if err != nil {
		log.Fatalf("Invalid mask: %v", err)
	}

	src, err := imageio.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	img := chamfer.NewBinaryFromImage(src)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []chamfer.Option{chamfer.WithNormalize(*normalize)}
	if p := newProgress(os.Stderr); p != nil {
		opts = append(opts, chamfer.WithProgress(p.update))
	}

	var rendered *image.Gray16
	var stats chamfer.Stats
	if *useFloat {
		rendered, stats, err = run(ctx, chamfer.NewFloatTransform(mask, opts...), img)
	} else {
		rendered, stats, err = run(ctx, chamfer.NewShortTransform(mask, opts...), img)
	}
	if err != nil {
		log.Fatalf("Transform aborted: %v", err)
	}

	out, err := imageio.Scale(rendered, *scale)
	if err != nil {
		log.Fatalf("Failed to scale: %v", err)
	}
	if err := imageio.SavePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s: %dx%d, mask %s", *output, img.Width(), img.Height(), mask.Label())
	log.Printf("foreground %d (unreached %d), distance min %.3g max %.3g mean %.3g sd %.3g",
		stats.Count, stats.Unreached, stats.Min, stats.Max, stats.Mean, stats.StdDev)
}

// run computes the distance map of img and renders it scaled to its maximum.
func run[T chamfer.Distance](ctx context.Context, t *chamfer.Transform[T], img *chamfer.Binary) (*image.Gray16, chamfer.Stats, error) {
	m, err := t.DistanceMapContext(ctx, img)
	if err != nil {
		return nil, chamfer.Stats{}, err
	}
	return m.Gray16(0), m.Summary(img), nil
}

// selectMask returns the mask built from the weights list when given,
// otherwise the named catalog entry.
func selectMask(name, weights string) (*chamfer.Mask, error) {
	if weights == "" {
		return chamfer.Lookup(name)
	}
	ws, err := parseWeights(weights)
	if err != nil {
		return nil, err
	}
	return chamfer.New(ws...)
}

func parseWeights(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	ws := make([]float64, 0, len(fields))
	for _, f := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", f, err)
		}
		ws = append(ws, w)
	}
	return ws, nil
}

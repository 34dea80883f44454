package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandel_bmp"
	"github.com/marben/mandel_bmp/internal/scene"
	"github.com/marben/mandel_bmp/palette"
)

// sceneFlags are the render inputs shared by every subcommand. Flags that
// were set on the command line override the scene file.
type sceneFlags struct {
	file       string
	region     string
	width      int
	iterations int
	gradient   string
	stops      []string
	inside     string
	workers    int
	out        string
}

func (f *sceneFlags) register(c *cobra.Command, withOutput bool) {
	fs := c.Flags()
	fs.StringVarP(&f.file, "scene", "s", "", "YAML scene file")
	fs.StringVarP(&f.region, "region", "r", "", "Named region: "+strings.Join(mandel.RegionNames(), "|"))
	fs.IntVarP(&f.width, "width", "w", scene.DefaultWidth, "Image width in pixels (columns)")
	fs.IntVarP(&f.iterations, "iterations", "i", scene.DefaultIterations, "Iteration budget per point")
	fs.StringVarP(&f.gradient, "gradient", "g", "", "Outside gradient preset: "+strings.Join(palette.Names(), "|"))
	fs.StringSliceVar(&f.stops, "stops", nil, "Outside gradient stops as #rrggbb, comma separated")
	fs.StringVar(&f.inside, "inside", "", "Color of points in the set as #rrggbb")
	fs.IntVar(&f.workers, "workers", 0, "Render row bands on this many goroutines (0 = sequential)")
	if withOutput {
		fs.StringVarP(&f.out, "out", "o", scene.DefaultOutput, "Output file name; .bmp is appended")
	}
}

func (f *sceneFlags) scene(c *cobra.Command) (scene.Scene, error) {
	var doc scene.Document
	if f.file != "" {
		d, err := scene.LoadDocument(f.file)
		if err != nil {
			return scene.Scene{}, err
		}
		doc = d
	}

	fs := c.Flags()
	// zero means "default" in a scene document, so reject it here
	if f.width <= 0 {
		return scene.Scene{}, fmt.Errorf("--width: %w", mandel.ErrInvalidWidth)
	}
	if f.iterations <= 0 {
		return scene.Scene{}, fmt.Errorf("--iterations: %w", mandel.ErrInvalidIterations)
	}

	if fs.Changed("region") {
		doc.Region = f.region
		doc.TopLeft, doc.BottomRight = nil, nil
	}
	if fs.Changed("width") || doc.Width == 0 {
		doc.Width = f.width
	}
	if fs.Changed("iterations") || doc.Iterations == 0 {
		doc.Iterations = f.iterations
	}
	if fs.Changed("gradient") {
		doc.Gradient, doc.Stops = f.gradient, nil
	}
	if fs.Changed("stops") {
		doc.Gradient, doc.Stops = "", f.stops
	}
	if fs.Changed("inside") {
		doc.Inside = f.inside
	}
	if fs.Changed("workers") {
		doc.Workers = f.workers
	}
	if fs.Lookup("out") != nil && (fs.Changed("out") || doc.Output == "") {
		doc.Output = f.out
	}

	return scene.Map(f.file, doc)
}

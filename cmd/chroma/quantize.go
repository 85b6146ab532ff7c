package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/chroma"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/dither"
	"github.com/gogpu/chroma/internal/hostimg"
	"github.com/gogpu/chroma/metric"
	"github.com/gogpu/chroma/quantize"
)

var (
	quantColors    int
	quantAlgorithm string
	quantDither    string
	quantMetric    string
	quantSpread    float32
	quantAlpha     string
)

var quantizeCmd = &cobra.Command{
	Use:   "quantize <in> <out>",
	Short: "Reduce an image to a palette and dither it",
	Long: `Builds the color histogram of the input, generates a palette of at
most --colors entries and maps every pixel onto it with the chosen ditherer
and distance metric. PNG and GIF outputs are written as paletted images.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuantize,
}

func init() {
	quantizeCmd.Flags().IntVarP(&quantColors, "colors", "c", 16, "palette size 1-256")
	quantizeCmd.Flags().StringVarP(&quantAlgorithm, "quantizer", "q", "octree", "octree, mediancut or mediancut-oklab")
	quantizeCmd.Flags().StringVarP(&quantDither, "dither", "d", "floyd-steinberg", "ditherer (see chroma list)")
	quantizeCmd.Flags().StringVarP(&quantMetric, "metric", "m", "euclidean", "distance metric (see chroma list)")
	quantizeCmd.Flags().Float32Var(&quantSpread, "spread", 64, "threshold map strength for ordered ditherers, in 0-255 channel units")
	quantizeCmd.Flags().StringVar(&quantAlpha, "alpha", "exclude", "transparent pixels: exclude, include or reserve")
	rootCmd.AddCommand(quantizeCmd)
}

func quantizerByName(name string) (quantize.Quantizer, error) {
	switch name {
	case "octree":
		return quantize.Octree{}, nil
	case "mediancut":
		return quantize.MedianCut{Space: quantize.RGB}, nil
	case "mediancut-oklab":
		return quantize.MedianCut{Space: quantize.Oklab}, nil
	}
	return nil, fmt.Errorf("unknown quantizer %q", name)
}

func alphaPolicy(name string) (quantize.AlphaPolicy, error) {
	for _, p := range []quantize.AlphaPolicy{quantize.ExcludeTransparent, quantize.IncludeTransparent, quantize.ReserveTransparent} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown alpha policy %q", name)
}

func runQuantize(cmd *cobra.Command, args []string) error {
	q, err := quantizerByName(quantAlgorithm)
	if err != nil {
		return err
	}
	policy, err := alphaPolicy(quantAlpha)
	if err != nil {
		return err
	}
	m, ok := metric.ByName(quantMetric)
	if !ok {
		return fmt.Errorf("unknown metric %q", quantMetric)
	}
	d, err := dither.New[colorspace.RGBA8](quantDither, quantSpread)
	if err != nil {
		return err
	}

	src, err := load(args[0])
	if err != nil {
		return err
	}

	e := newEngine()
	defer e.Close()

	pal, err := chroma.Quantize(e, src, quantColors, q, policy)
	if err != nil {
		return err
	}
	work, err := chroma.Decode[colorspace.ARGB32, colorspace.RGBA8](e, src, colorspace.ByteCodec{})
	if err != nil {
		return err
	}
	defer work.Release()

	idx, err := chroma.Dither(e, work, quantize.Decode[colorspace.RGBA8](pal, colorspace.ByteCodec{}), m, d)
	if err != nil {
		return err
	}
	defer idx.Release()

	logVerbose(cmd, "palette: %d colors, quantizer %s, dither %s, metric %s", len(pal), quantAlgorithm, quantDither, quantMetric)

	if err := hostimg.Save(args[1], hostimg.ToPaletted(idx, pal)); err != nil {
		return err
	}
	if digest {
		out, err := chroma.ApplyPalette(e, idx, pal)
		if err != nil {
			return err
		}
		defer out.Release()
		fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", hostimg.Digest(out), args[1])
	}
	return nil
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[chroma] "+format+"\n", args...)
	}
}

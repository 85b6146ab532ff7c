package main

import (
	"fmt"
	"image"
	"math"
	"text/tabwriter"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"github.com/spf13/cobra"

	"github.com/gogpu/chroma"
	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/internal/hostimg"
	"github.com/gogpu/chroma/scale"
)

var (
	cmpWidth  int
	cmpHeight int
)

var compareCmd = &cobra.Command{
	Use:   "compare <in>",
	Short: "Compare Lanczos3 resampling against gift and nfnt/resize",
	Long: `Resizes the input with chroma's Lanczos3 resampler in sRGB, and with
the Lanczos filters of github.com/disintegration/gift and
github.com/nfnt/resize, then prints the PSNR between each pair.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&cmpWidth, "width", 0, "target width")
	compareCmd.Flags().IntVar(&cmpHeight, "height", 0, "target height")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	src, err := load(args[0])
	if err != nil {
		return err
	}
	w, h := targetSize(src.Width, src.Height, cmpWidth, cmpHeight)
	img := hostimg.ToNRGBA(src)

	e := newEngine()
	defer e.Close()

	work, err := chroma.Decode[colorspace.ARGB32, colorspace.SRGB](e, src, colorspace.SRGBCodec{})
	if err != nil {
		return err
	}
	defer work.Release()
	res, err := chroma.Resample[colorspace.SRGB, accum.Float[colorspace.SRGB]](e, work, scale.Lanczos3, w, h)
	if err != nil {
		return err
	}
	defer res.Release()
	ours, err := frame.New[colorspace.ARGB32](w, h)
	if err != nil {
		return err
	}
	if err := chroma.Encode(e, res, colorspace.SRGBCodec{}, ours); err != nil {
		return err
	}

	g := gift.New(gift.Resize(w, h, gift.LanczosResampling))
	giftImg := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(giftImg, img)
	giftFrame, err := hostimg.FromImage(giftImg)
	if err != nil {
		return err
	}

	nfntFrame, err := hostimg.FromImage(resize.Resize(uint(w), uint(h), img, resize.Lanczos3))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%dx%d -> %dx%d\tPSNR (dB)\n", src.Width, src.Height, w, h)
	fmt.Fprintf(tw, "chroma vs gift\t%s\n", formatPSNR(psnr(ours, giftFrame)))
	fmt.Fprintf(tw, "chroma vs nfnt\t%s\n", formatPSNR(psnr(ours, nfntFrame)))
	fmt.Fprintf(tw, "gift vs nfnt\t%s\n", formatPSNR(psnr(giftFrame, nfntFrame)))
	if digest {
		fmt.Fprintf(tw, "digest\t%016x\n", hostimg.Digest(ours))
	}
	return tw.Flush()
}

// psnr returns the peak signal-to-noise ratio over the RGB channels of two
// equally sized frames, +Inf for identical frames.
func psnr(a, b *frame.Frame[colorspace.ARGB32]) float64 {
	var sum float64
	for y := range a.Height {
		ra, rb := a.Row(y), b.Row(y)
		for x := range ra {
			for _, d := range [3]int{
				int(ra[x].R()) - int(rb[x].R()),
				int(ra[x].G()) - int(rb[x].G()),
				int(ra[x].B()) - int(rb[x].B()),
			} {
				sum += float64(d * d)
			}
		}
	}
	if sum == 0 {
		return math.Inf(1)
	}
	mse := sum / float64(3*a.Width*a.Height)
	return 10 * math.Log10(255*255/mse)
}

func formatPSNR(v float64) string {
	if math.IsInf(v, 1) {
		return "identical"
	}
	return fmt.Sprintf("%.2f", v)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/chroma"
	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/scale"
)

var (
	upscaler   string
	upKeyBits  uint8
	upBlend    bool
	downRatio  int
	downRatioY int
	downLinear bool
	resKernel  string
	resWidth   int
	resHeight  int
	resLinear  bool
)

var upscaleCmd = &cobra.Command{
	Use:   "upscale <in> <out>",
	Short: "Enlarge pixel art with a pattern upscaler",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpscale,
}

var downscaleCmd = &cobra.Command{
	Use:   "downscale <in> <out>",
	Short: "Shrink by an integer ratio, averaging each block",
	Args:  cobra.ExactArgs(2),
	RunE:  runDownscale,
}

var resampleCmd = &cobra.Command{
	Use:   "resample <in> <out>",
	Short: "Resize to an arbitrary size with a continuous kernel",
	Args:  cobra.ExactArgs(2),
	RunE:  runResample,
}

func init() {
	upscaleCmd.Flags().StringVarP(&upscaler, "upscaler", "u", "scale2x", "scale2x, scale3x, scale4x, eagle2x or epx")
	upscaleCmd.Flags().Uint8Var(&upKeyBits, "key-bits", 0, "compare neighbors on the top N bits per channel (0 = exact)")
	upscaleCmd.Flags().BoolVar(&upBlend, "blend", false, "blend matched sub-pixels with the center instead of copying")

	downscaleCmd.Flags().IntVarP(&downRatio, "ratio", "r", 2, "ratio 1-5")
	downscaleCmd.Flags().IntVar(&downRatioY, "ratio-y", 0, "vertical ratio (0 = same as --ratio)")
	downscaleCmd.Flags().BoolVar(&downLinear, "linear", false, "average in linear light")

	resampleCmd.Flags().StringVarP(&resKernel, "kernel", "k", "lanczos3", "resampling kernel (see chroma list)")
	resampleCmd.Flags().IntVar(&resWidth, "width", 0, "target width")
	resampleCmd.Flags().IntVar(&resHeight, "height", 0, "target height")
	resampleCmd.Flags().BoolVar(&resLinear, "linear", true, "filter in linear light")

	rootCmd.AddCommand(upscaleCmd, downscaleCmd, resampleCmd)
}

func runUpscale(cmd *cobra.Command, args []string) error {
	u, ok := scale.UpscalerByName(upscaler)
	if !ok {
		return fmt.Errorf("unknown upscaler %q", upscaler)
	}
	src, err := load(args[0])
	if err != nil {
		return err
	}
	e := newEngine()
	defer e.Close()

	work, err := chroma.Decode[colorspace.ARGB32, colorspace.RGBA8](e, src, colorspace.ByteCodec{})
	if err != nil {
		return err
	}
	defer work.Release()

	key := colorspace.QuantizeKey{Bits: upKeyBits}
	var big *frame.Frame[colorspace.RGBA8]
	if upBlend {
		big, err = chroma.Upscale[colorspace.RGBA8, colorspace.RGBA8](e, work, u, key, accum.IntLerp{})
	} else {
		big, err = chroma.Upscale[colorspace.RGBA8, colorspace.RGBA8](e, work, u, key, accum.NoLerp[colorspace.RGBA8]{})
	}
	if err != nil {
		return err
	}
	defer big.Release()
	return encodeAndSave(cmd, e, big, colorspace.ByteCodec{}, args[1])
}

func runDownscale(cmd *cobra.Command, args []string) error {
	ry := downRatioY
	if ry == 0 {
		ry = downRatio
	}
	src, err := load(args[0])
	if err != nil {
		return err
	}
	e := newEngine()
	defer e.Close()

	if downLinear {
		return downscaleIn[colorspace.LinearRGB, accum.Float[colorspace.LinearRGB]](cmd, e, src, colorspace.LinearCodec{}, downRatio, ry, args[1])
	}
	return downscaleIn[colorspace.RGBA8, accum.Int8](cmd, e, src, colorspace.ByteCodec{}, downRatio, ry, args[1])
}

func downscaleIn[C any, A any, PA accum.Ptr[C, A], CD colorspace.Codec[colorspace.ARGB32, C]](
	cmd *cobra.Command, e *chroma.Engine, src *frame.Frame[colorspace.ARGB32], codec CD, rx, ry int, out string,
) error {
	work, err := chroma.Decode[colorspace.ARGB32, C](e, src, codec)
	if err != nil {
		return err
	}
	defer work.Release()
	small, err := chroma.Downscale[C, A, PA](e, work, rx, ry)
	if err != nil {
		return err
	}
	defer small.Release()
	return encodeAndSave(cmd, e, small, codec, out)
}

func runResample(cmd *cobra.Command, args []string) error {
	k, ok := scale.KernelByName(resKernel)
	if !ok {
		return fmt.Errorf("unknown kernel %q", resKernel)
	}
	src, err := load(args[0])
	if err != nil {
		return err
	}
	w, h := targetSize(src.Width, src.Height, resWidth, resHeight)
	e := newEngine()
	defer e.Close()

	if resLinear {
		return resampleIn[colorspace.LinearRGB, accum.Float[colorspace.LinearRGB]](cmd, e, src, colorspace.LinearCodec{}, k, w, h, args[1])
	}
	return resampleIn[colorspace.SRGB, accum.Float[colorspace.SRGB]](cmd, e, src, colorspace.SRGBCodec{}, k, w, h, args[1])
}

func resampleIn[C any, A any, PA accum.Ptr[C, A], CD colorspace.Codec[colorspace.ARGB32, C]](
	cmd *cobra.Command, e *chroma.Engine, src *frame.Frame[colorspace.ARGB32], codec CD, k *draw.Kernel, w, h int, out string,
) error {
	work, err := chroma.Decode[colorspace.ARGB32, C](e, src, codec)
	if err != nil {
		return err
	}
	defer work.Release()
	dst, err := chroma.Resample[C, A, PA](e, work, k, w, h)
	if err != nil {
		return err
	}
	defer dst.Release()
	return encodeAndSave(cmd, e, dst, codec, out)
}

// targetSize fills in a missing dimension from the aspect ratio.
func targetSize(srcW, srcH, w, h int) (int, int) {
	switch {
	case w > 0 && h > 0:
		return w, h
	case w > 0:
		return w, max(1, (srcH*w+srcW/2)/srcW)
	case h > 0:
		return max(1, (srcW*h+srcH/2)/srcH), h
	default:
		return srcW, srcH
	}
}

func encodeAndSave[C any, E colorspace.Encoder[C, colorspace.ARGB32]](
	cmd *cobra.Command, e *chroma.Engine, f *frame.Frame[C], enc E, path string,
) error {
	out, err := frame.New[colorspace.ARGB32](f.Width, f.Height)
	if err != nil {
		return err
	}
	if err := chroma.Encode(e, f, enc, out); err != nil {
		return err
	}
	return save(cmd, path, out)
}

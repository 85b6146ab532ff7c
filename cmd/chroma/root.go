package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gogpu/chroma"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/internal/hostimg"
)

var (
	version = "0.1.0"
	verbose bool
	workers int
	digest  bool
)

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Color quantization, dithering and scaling",
	Long: `chroma reduces images to small palettes, dithers them with error
diffusion or threshold maps, and resizes them with pixel-art upscalers,
block averaging or continuous kernels.

Every command reads one image and writes one image; the output format
follows the file extension.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			chroma.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&digest, "digest", false, "print the xxhash64 of the output pixels")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"chroma %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func newEngine() *chroma.Engine {
	return chroma.NewEngine(chroma.WithWorkers(workers))
}

// load reads path into an ARGB32 frame.
func load(path string) (*frame.Frame[colorspace.ARGB32], error) {
	f, err := hostimg.Load(path)
	if err != nil {
		return nil, err
	}
	chroma.Logger().Debug("chroma: loaded", "path", path, "width", f.Width, "height", f.Height)
	return f, nil
}

// save writes f to path and reports its digest when asked to.
func save(cmd *cobra.Command, path string, f *frame.Frame[colorspace.ARGB32]) error {
	if err := hostimg.Save(path, hostimg.ToNRGBA(f)); err != nil {
		return err
	}
	if digest {
		fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", hostimg.Digest(f), path)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/chroma/dither"
	"github.com/gogpu/chroma/metric"
	"github.com/gogpu/chroma/scale"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered metrics, ditherers, kernels and upscalers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, g := range []struct {
			title string
			names []string
		}{
			{"metrics", metric.Names()},
			{"ditherers", dither.Names()},
			{"kernels", scale.KernelNames()},
			{"upscalers", scale.UpscalerNames()},
		} {
			fmt.Fprintf(out, "%s:\n  %s\n", g.title, strings.Join(g.names, "\n  "))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package dither

import (
	"fmt"
	"strconv"

	mwdither "github.com/makeworld-the-better-one/dither/v2"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/internal/names"
)

var (
	diffusion  = names.NewRegistry[mwdither.ErrorDiffusionMatrix]()
	thresholds = names.NewRegistry[Threshold]()
)

func init() {
	diffusion.Register("Floyd-Steinberg", mwdither.FloydSteinberg)
	diffusion.Register("False-Floyd-Steinberg", mwdither.FalseFloydSteinberg)
	diffusion.Register("Atkinson", mwdither.Atkinson)
	diffusion.Register("Jarvis-Judice-Ninke", mwdither.JarvisJudiceNinke)
	diffusion.Register("Stucki", mwdither.Stucki)
	diffusion.Register("Burkes", mwdither.Burkes)
	diffusion.Register("Sierra", mwdither.Sierra)
	diffusion.Register("Two-Row-Sierra", mwdither.TwoRowSierra)
	diffusion.Register("Sierra-Lite", mwdither.SierraLite)
	diffusion.Register("Simple2D", mwdither.Simple2D)

	for _, n := range []int{2, 4, 8, 16} {
		t, _ := Bayer(n)
		thresholds.Register("Bayer"+strconv.Itoa(n), t)
	}
	thresholds.Register("Clustered-Dot-4x4", FromMatrix(mwdither.ClusteredDot4x4))
	thresholds.Register("Clustered-Dot-Diagonal-8x8", FromMatrix(mwdither.ClusteredDotDiagonal8x8))
	thresholds.Register("Vertical-5x3", FromMatrix(mwdither.Vertical5x3))
	thresholds.Register("Horizontal-3x5", FromMatrix(mwdither.Horizontal3x5))
}

// MatrixByName returns a registered error diffusion matrix.
func MatrixByName(name string) (mwdither.ErrorDiffusionMatrix, bool) {
	return diffusion.Lookup(name)
}

// ThresholdByName returns a registered ordered threshold map.
func ThresholdByName(name string) (Threshold, bool) {
	return thresholds.Lookup(name)
}

// Names lists every name New accepts.
func Names() []string {
	out := []string{"None"}
	out = append(out, diffusion.Names()...)
	return append(out, thresholds.Names()...)
}

// New builds a ditherer by name: "none", an error diffusion matrix, or a
// threshold map. spread is passed to ordered ditherers.
func New[C colorspace.Space[C]](name string, spread float32) (Ditherer[C], error) {
	if names.Key(name) == "none" {
		return None[C]{}, nil
	}
	if m, ok := diffusion.Lookup(name); ok {
		return ErrorDiffusion[C]{Matrix: m}, nil
	}
	if t, ok := thresholds.Lookup(name); ok {
		return Ordered[C]{Map: t, Spread: spread}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Package chroma is a color-processing engine for pixel data.
//
// # Overview
//
// chroma converts host pixels into working color spaces, measures color
// differences, reduces images to palettes, dithers them onto those palettes
// and resizes them. Every stage is generic over the color type, so the same
// quantizer, ditherer or scaler runs in 8-bit RGBA, linear RGB, CIELAB or
// Oklab without reflection.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	e := chroma.NewEngine()
//	defer e.Close()
//
//	// Host pixels in, palette out.
//	pal, err := chroma.Quantize(e, src, 16, quantize.Octree{}, quantize.ExcludeTransparent)
//
//	// Dither in Oklab with Floyd-Steinberg.
//	lab, _ := chroma.Decode[colorspace.ARGB32, colorspace.Oklab](e, src, colorspace.OklabCodec{})
//	d, _ := dither.New[colorspace.Oklab]("floyd-steinberg", 0)
//	idx, err := chroma.Dither(e, lab, quantize.Decode[colorspace.Oklab](pal, colorspace.OklabCodec{}),
//		metric.Euclidean[colorspace.Oklab]{}, d)
//
// # Architecture
//
// The library is organized into:
//   - colorspace: color types, codecs between storage and working spaces
//   - metric: distance functions and the nearest-palette search
//   - accum: weighted accumulators and interpolators
//   - frame: the strided pixel grid, its pool and the row runner contract
//   - quantize: histograms, octree and median-cut palette generation
//   - dither: error diffusion, ordered and nearest mapping
//   - scale: pattern upscalers, block downscaling, kernel resampling
//
// The functions of this package tie those stages to an Engine, which owns
// the worker pool and per-type frame pools. A nil *Engine is valid and runs
// every operation sequentially on freshly allocated frames.
//
// # Concurrency
//
// Destination rows are the unit of parallelism. Error diffusion is the
// exception: it runs on one goroutine per image, and DitherAll processes
// independent images concurrently instead.
//
// # Errors
//
// Every error wraps ErrInvalidArgument or ErrUnsupported, together with the
// sub-package error that caused it. Use errors.Is to test either.
//
// # Logging
//
// chroma is silent by default. SetLogger installs a slog.Logger for the
// package; WithLogger overrides it for one engine.
package chroma

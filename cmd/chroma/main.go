// Command chroma quantizes, dithers and resizes images from the command line.
//
// Usage:
//
//	chroma quantize in.png out.png --colors 16 --dither floyd-steinberg
//	chroma upscale sprite.png big.png --upscaler scale3x
//	chroma resample in.jpg out.png --width 640 --height 480 --kernel lanczos3
//	chroma compare in.jpg --width 320 --height 240
//	chroma list
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

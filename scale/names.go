package scale

import (
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/chroma/internal/names"
)

// Continuous kernels not provided by x/image/draw. At receives |t|.
var (
	// Box averages the pixels the destination footprint covers.
	Box = &draw.Kernel{Support: 0.5, At: func(float64) float64 { return 1 }}

	// Mitchell is the Mitchell-Netravali cubic with B = C = 1/3.
	Mitchell = &draw.Kernel{Support: 2, At: mitchell}

	// Lanczos2 is the two-lobe windowed sinc.
	Lanczos2 = &draw.Kernel{Support: 2, At: lanczos(2)}

	// Lanczos3 is the three-lobe windowed sinc.
	Lanczos3 = &draw.Kernel{Support: 3, At: lanczos(3)}
)

func mitchell(t float64) float64 {
	const b, c = 1.0 / 3, 1.0 / 3
	switch {
	case t < 1:
		return ((12-9*b-6*c)*t*t*t + (-18+12*b+6*c)*t*t + (6 - 2*b)) / 6
	case t < 2:
		return ((-b-6*c)*t*t*t + (6*b+30*c)*t*t + (-12*b-48*c)*t + (8*b + 24*c)) / 6
	default:
		return 0
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

func lanczos(a float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= a {
			return 0
		}
		return sinc(t) * sinc(t/a)
	}
}

var (
	kernels   = names.NewRegistry[*draw.Kernel]()
	upscalers = names.NewRegistry[Upscaler]()
)

func init() {
	kernels.Register("Box", Box)
	kernels.Register("BiLinear", draw.BiLinear)
	kernels.Register("CatmullRom", draw.CatmullRom)
	kernels.Register("Mitchell", Mitchell)
	kernels.Register("Lanczos2", Lanczos2)
	kernels.Register("Lanczos3", Lanczos3)

	for _, u := range []Upscaler{Scale2x, Scale3x, Scale4x, Eagle2x, EPX} {
		upscalers.Register(u.String(), u)
	}
}

// KernelByName returns a registered resampling kernel.
func KernelByName(name string) (*draw.Kernel, bool) {
	return kernels.Lookup(name)
}

// KernelNames lists the registered kernels.
func KernelNames() []string {
	return kernels.Names()
}

// UpscalerByName returns a registered upscaler.
func UpscalerByName(name string) (Upscaler, bool) {
	return upscalers.Lookup(name)
}

// UpscalerNames lists the registered upscalers.
func UpscalerNames() []string {
	return upscalers.Names()
}

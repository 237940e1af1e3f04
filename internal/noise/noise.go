// Package noise synthesises the ambient sound textures played during focus
// sessions. Every block of audio is generated procedurally - no sample files
// are shipped or read. A block starts life as uniform white noise and is then
// spectrally shaped to the requested category before being handed to the
// playback layer.
package noise

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Audio format constants shared with the playback driver.
const (
	// SampleRate is the fixed synthesis and playback rate in Hz.
	SampleRate = 44100

	// Channels is the output channel count. Generation is mono; the encoder
	// duplicates each sample across both channels.
	Channels = 2

	// DefaultBlockDuration is how much audio one loop iteration generates.
	// Short enough to keep stop latency and memory low, long enough that the
	// per-block FFT cost is negligible next to playback time.
	DefaultBlockDuration = 3 * time.Second

	// normPeak is the peak absolute amplitude after spectral shaping.
	// Leaves headroom for volume scaling so shaped blocks never clip.
	normPeak = 0.8
)

// Category identifies the target power spectrum of a generated block.
type Category int

const (
	// Silent produces no audio at all.
	Silent Category = iota

	// White is unshaped uniform noise - equal power at all frequencies.
	White

	// Brown concentrates power at low frequencies by cumulative integration
	// of white noise. Perceptually a deep rumble.
	Brown

	// Pink rolls power off at 1/sqrt(f), a balanced texture between the two.
	Pink
)

// String returns the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case Silent:
		return "silent"
	case White:
		return "white"
	case Brown:
		return "brown"
	case Pink:
		return "pink"
	}
	return "unknown"
}

// Generate produces one fully shaped block of samples for the category.
// The result is a fresh slice in [-1, 1]; blocks are never cached or reused,
// so consecutive blocks of the same category differ and the texture never
// audibly repeats.
func Generate(c Category, d time.Duration, sampleRate int) []float64 {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 || c == Silent {
		return make([]float64, max(n, 0))
	}
	return Shape(c, Uniform(n))
}

// Uniform returns n independent samples uniformly distributed in [-1, 1].
// This is the only source of randomness in the synthesis pipeline.
func Uniform(n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rand.Float64()*2 - 1
	}
	return samples
}

// Shape transforms uncorrelated raw samples into the category's target
// spectrum. The raw slice may be modified in place and must not be reused by
// the caller. Degenerate all-zero input yields silence rather than an error:
// normalisation is skipped when there is no peak to normalise against.
func Shape(c Category, raw []float64) []float64 {
	switch c {
	case White:
		// True white noise - the generator output is already the target.
		return raw
	case Brown:
		return shapeBrown(raw)
	case Pink:
		return shapePink(raw)
	default:
		return make([]float64, len(raw))
	}
}

// shapeBrown integrates the raw sequence (a running cumulative sum), which
// weights the spectrum toward low frequencies, then normalises the peak.
func shapeBrown(raw []float64) []float64 {
	sum := 0.0
	for i, s := range raw {
		sum += s
		raw[i] = sum
	}
	normalise(raw, normPeak)
	return raw
}

// shapePink applies a 1/sqrt(f) magnitude roll-off in the frequency domain:
// forward real FFT, scale each bin, inverse transform, normalise the peak.
// The DC bin is treated as f=1 so it passes through unscaled.
func shapePink(raw []float64) []float64 {
	n := len(raw)
	if n == 0 {
		return raw
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, raw)
	for i := range coeff {
		f := fft.Freq(i)
		if f <= 0 {
			continue
		}
		coeff[i] *= complex(1/math.Sqrt(f), 0)
	}

	// Sequence is unnormalised: a round trip multiplies by n.
	out := fft.Sequence(nil, coeff)
	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}
	normalise(out, normPeak)
	return out
}

// normalise scales samples so the peak absolute amplitude equals peak.
// An all-zero input is left untouched - emitting silence is the defined
// behaviour for degenerate blocks, not a divide-by-zero.
func normalise(samples []float64, peak float64) {
	maxAbs := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return
	}
	scale := peak / maxAbs
	for i := range samples {
		samples[i] *= scale
	}
}

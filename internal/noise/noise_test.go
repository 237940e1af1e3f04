package noise

import (
	"math"
	"testing"
	"time"
)

const peakTolerance = 1e-9

// peakAbs returns the largest absolute sample value in a block.
func peakAbs(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// lag1Autocorrelation returns the normalised lag-1 serial correlation.
// White noise should show none; brown noise should be strongly correlated.
func lag1Autocorrelation(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(n)

	var num, den float64
	for i := 0; i < n-1; i++ {
		num += (samples[i] - mean) * (samples[i+1] - mean)
	}
	for _, s := range samples {
		den += (s - mean) * (s - mean)
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func TestUniformDistribution(t *testing.T) {
	samples := Uniform(SampleRate) // one second

	for i, s := range samples {
		if s < -1.0 || s > 1.0 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	// Uniform [-1,1] has mean 0 with stddev 1/sqrt(3n) ~ 0.0028 for n=44100.
	// 0.02 allows ~7 sigma, far beyond flakiness but catching bias.
	if math.Abs(mean) > 0.02 {
		t.Errorf("mean %v too far from zero for uniform noise", mean)
	}

	if r := lag1Autocorrelation(samples); math.Abs(r) > 0.03 {
		t.Errorf("lag-1 autocorrelation %v above noise floor - samples not independent", r)
	}
}

func TestShapeWhiteIsIdentity(t *testing.T) {
	raw := Uniform(4096)
	want := make([]float64, len(raw))
	copy(want, raw)

	got := Shape(White, raw)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("white shaping modified sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShapedPeakNormalised(t *testing.T) {
	tests := []struct {
		name string
		cat  Category
	}{
		{"brown", Brown},
		{"pink", Pink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shaped := Shape(tt.cat, Uniform(SampleRate))

			peak := peakAbs(shaped)
			if peak > normPeak+peakTolerance {
				t.Errorf("peak %v exceeds normalisation target %v", peak, normPeak)
			}
			// Non-degenerate input must actually hit the target, not just
			// stay under it - otherwise volume scaling loses headroom.
			if peak < normPeak-1e-6 {
				t.Errorf("peak %v below normalisation target %v", peak, normPeak)
			}
		})
	}
}

func TestBrownIsLowFrequencyWeighted(t *testing.T) {
	shaped := Shape(Brown, Uniform(SampleRate))

	// Integration makes adjacent samples almost identical: the lag-1
	// correlation of a random walk approaches 1.
	if r := lag1Autocorrelation(shaped); r < 0.9 {
		t.Errorf("lag-1 autocorrelation %v too low for integrated noise", r)
	}
}

func TestShapeDegenerateZeroInput(t *testing.T) {
	for _, cat := range []Category{White, Brown, Pink} {
		t.Run(cat.String(), func(t *testing.T) {
			shaped := Shape(cat, make([]float64, 2048))
			for i, s := range shaped {
				if s != 0 {
					t.Fatalf("sample %d is %v, want 0 for all-zero input", i, s)
				}
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("block length matches duration", func(t *testing.T) {
		block := Generate(White, DefaultBlockDuration, SampleRate)
		if want := 3 * SampleRate; len(block) != want {
			t.Errorf("block length = %d, want %d", len(block), want)
		}
	})

	t.Run("silent category yields zero block", func(t *testing.T) {
		block := Generate(Silent, time.Second, SampleRate)
		if len(block) != SampleRate {
			t.Fatalf("block length = %d, want %d", len(block), SampleRate)
		}
		if peakAbs(block) != 0 {
			t.Error("silent block contains non-zero samples")
		}
	})

	t.Run("consecutive blocks differ", func(t *testing.T) {
		a := Generate(White, 100*time.Millisecond, SampleRate)
		b := Generate(White, 100*time.Millisecond, SampleRate)
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("two generated blocks are identical - texture would repeat")
		}
	})
}

func TestTextureCategoryMapping(t *testing.T) {
	tests := []struct {
		texture Texture
		want    Category
	}{
		{TextureWhiteNoise, White},
		{TextureRain, Brown},
		{TextureCoffeeShop, Brown},
		{TextureNature, Pink},
		{TextureNone, Silent},
	}

	for _, tt := range tests {
		if got := tt.texture.Category(); got != tt.want {
			t.Errorf("%s maps to %v, want %v", tt.texture, got, tt.want)
		}
	}

	// Rain and coffee-shop are the same signal with different labels.
	if TextureRain.Category() != TextureCoffeeShop.Category() {
		t.Error("rain and coffee-shop must share one shaping algorithm")
	}
}

func TestParseTexture(t *testing.T) {
	tests := []struct {
		input   string
		want    Texture
		wantErr bool
	}{
		{"white-noise", TextureWhiteNoise, false},
		{"RAIN", TextureRain, false},
		{"  nature ", TextureNature, false},
		{"none", TextureNone, false},
		{"waves", TextureNone, true},
		{"", TextureNone, true},
	}

	for _, tt := range tests {
		got, err := ParseTexture(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTexture(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseTexture(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

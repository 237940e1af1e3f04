package noise

import (
	"bytes"
	"testing"
)

func TestEncodeS16LE(t *testing.T) {
	t.Run("empty input yields empty buffer", func(t *testing.T) {
		if buf := EncodeS16LE(nil); len(buf) != 0 {
			t.Errorf("empty input produced %d bytes", len(buf))
		}
	})

	t.Run("four bytes per mono sample", func(t *testing.T) {
		buf := EncodeS16LE(make([]float64, 1024))
		if want := 1024 * 4; len(buf) != want {
			t.Errorf("buffer length = %d, want %d", len(buf), want)
		}
	})

	t.Run("stereo channels are duplicated", func(t *testing.T) {
		buf := EncodeS16LE([]float64{0.25, -0.5, 0.9})
		for i := 0; i < len(buf); i += 4 {
			if !bytes.Equal(buf[i:i+2], buf[i+2:i+4]) {
				t.Fatalf("frame at %d has differing left/right samples", i)
			}
		}
	})

	t.Run("sample values", func(t *testing.T) {
		tests := []struct {
			in   float64
			want int16
		}{
			{0, 0},
			{1.0, 32767},
			{-1.0, -32767},
			{1.5, 32767},   // clamped
			{-2.0, -32767}, // clamped
			{0.5, 16383},   // truncated, not rounded
		}

		for _, tt := range tests {
			buf := EncodeS16LE([]float64{tt.in})
			got := int16(uint16(buf[0]) | uint16(buf[1])<<8)
			if got != tt.want {
				t.Errorf("EncodeS16LE(%v) = %d, want %d", tt.in, got, tt.want)
			}
		}
	})
}

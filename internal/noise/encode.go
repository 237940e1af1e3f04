package noise

import "math"

// EncodeS16LE converts a mono float block in [-1, 1] to the playback
// driver's native format: signed 16-bit little-endian PCM with each sample
// duplicated across both stereo channels (no spatialisation). Samples
// outside [-1, 1] are clamped. An empty input yields an empty buffer, which
// callers treat as "nothing to play".
func EncodeS16LE(samples []float64) []byte {
	if len(samples) == 0 {
		return nil
	}

	const bytesPerFrame = 2 * Channels
	buf := make([]byte, len(samples)*bytesPerFrame)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := uint16(int16(s * math.MaxInt16))

		off := i * bytesPerFrame
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v)
		buf[off+3] = byte(v >> 8)
	}
	return buf
}

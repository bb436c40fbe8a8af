// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to the normalized sample range [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}

// Float32ToInt16 converts a normalized sample to signed 16-bit PCM.
//
// Positive values scale by 32767 and negative values by 32768 so that both
// ends of [-1, 1] map onto the full int16 range without overflow.
func Float32ToInt16(x float32) int16 {
	x = Clamp(x)
	if x < 0 {
		return int16(math.Round(float64(x) * -math.MinInt16))
	}

	return int16(math.Round(float64(x) * math.MaxInt16))
}

// Int16ToFloat32 is the inverse of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / -math.MinInt16
	}

	return float32(v) / math.MaxInt16
}

// IntToFloat32 converts an integer PCM sample of the given bit depth to a
// normalized sample. Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var maxVal float32

	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	return float32(v) / maxVal
}

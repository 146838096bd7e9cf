// motion-estimator - block-based motion estimation between video frames
//  Copyright (C) 2024, The Videofield Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package motion

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MagnitudeFunc maps a squared vector magnitude to its length.
type MagnitudeFunc func(sq float32) float32

// Summary describes the distribution of vector magnitudes over a field.
type Summary struct {
	Mean float64
	Min  float64
	Max  float64
}

// QuickMagnitude estimates sqrt(sq) via the fast inverse square root: a
// bit-level initial guess refined by three Newton-Raphson iterations,
// then inverted. Relative error stays under 0.2%, which is the point of
// the routine on hardware without a fast sqrt. Use ExactMagnitude when
// accuracy matters more than speed.
func QuickMagnitude(sq float32) float32 {
	xhalf := 0.5 * sq
	i := math.Float32bits(sq)
	i = 0x5f375a86 - (i >> 1)
	x := math.Float32frombits(i)
	x *= 1.5 - xhalf*x*x
	x *= 1.5 - xhalf*x*x
	x *= 1.5 - xhalf*x*x
	return 1 / x
}

// ExactMagnitude computes sqrt(sq) exactly.
func ExactMagnitude(sq float32) float32 {
	return float32(math.Sqrt(float64(sq)))
}

// Summarize computes the mean, minimum and maximum vector magnitude
// over a field, with magnitudes computed by mag.
//
// With legacy set, the min and max accumulators start at zero as in the
// original tool. Magnitudes are never negative, so legacy min is always
// reported as zero whatever the field contains; kept behind the flag
// for output compatibility rather than silently corrected. Without it
// the true minimum and maximum are reported.
func Summarize(field *Field, mag MagnitudeFunc, legacy bool) Summary {
	if len(field.Vectors) == 0 {
		return Summary{}
	}
	if legacy {
		return summarizeLegacy(field, mag)
	}

	mags := make([]float64, len(field.Vectors))
	for i, v := range field.Vectors {
		mags[i] = float64(mag(squaredMagnitude(v)))
	}
	return Summary{
		Mean: stat.Mean(mags, nil),
		Min:  floats.Min(mags),
		Max:  floats.Max(mags),
	}
}

func summarizeLegacy(field *Field, mag MagnitudeFunc) Summary {
	var total, min, max float32
	for _, v := range field.Vectors {
		length := mag(squaredMagnitude(v))
		if length < min {
			min = length
		}
		if length > max {
			max = length
		}
		total += length
	}
	return Summary{
		Mean: float64(total) / float64(len(field.Vectors)),
		Min:  float64(min),
		Max:  float64(max),
	}
}

func squaredMagnitude(v Vector) float32 {
	return float32(int(v.X)*int(v.X) + int(v.Y)*int(v.Y))
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickMagnitudeErrorBound(t *testing.T) {
	// Three Newton iterations keep the relative error well under 0.2%.
	for _, sq := range []float32{1, 2, 5, 13, 25, 100, 450, 1024, 65025} {
		got := float64(QuickMagnitude(sq))
		want := math.Sqrt(float64(sq))
		relErr := math.Abs(got-want) / want
		assert.Less(t, relErr, 0.002, "sq=%v: got %v want %v", sq, got, want)
	}
}

func uniformField(nx, ny int, v Vector) *Field {
	f := NewField(nx, ny)
	for i := range f.Vectors {
		f.Vectors[i] = v
	}
	return f
}

// Legacy statistics replicate the original tool: the min accumulator
// starts at zero and magnitudes are never negative, so min is always
// reported as zero.
func TestSummarizeLegacyUniformField(t *testing.T) {
	field := uniformField(4, 4, Vector{X: 3, Y: 4})

	s := Summarize(field, QuickMagnitude, true)
	assert.InEpsilon(t, 5.0, s.Mean, 0.005)
	assert.InEpsilon(t, 5.0, s.Max, 0.005)
	assert.Equal(t, 0.0, s.Min)
}

func TestSummarizeCorrectedUniformField(t *testing.T) {
	field := uniformField(4, 4, Vector{X: 3, Y: 4})

	s := Summarize(field, QuickMagnitude, false)
	assert.InEpsilon(t, 5.0, s.Mean, 0.005)
	assert.InEpsilon(t, 5.0, s.Min, 0.005)
	assert.InEpsilon(t, 5.0, s.Max, 0.005)
}

func TestSummarizeCorrectedMixedField(t *testing.T) {
	field := NewField(2, 1)
	field.Vectors[1] = Vector{X: 3, Y: 4}

	s := Summarize(field, ExactMagnitude, false)
	assert.InDelta(t, 2.5, s.Mean, 1e-6)
	assert.InDelta(t, 0.0, s.Min, 1e-6)
	assert.InDelta(t, 5.0, s.Max, 1e-6)
}

func TestSummarizeZeroField(t *testing.T) {
	field := NewField(3, 3)

	s := Summarize(field, QuickMagnitude, true)
	assert.InDelta(t, 0.0, s.Mean, 1e-6)
	assert.InDelta(t, 0.0, s.Min, 1e-6)
	assert.InDelta(t, 0.0, s.Max, 1e-6)
}

func TestSummarizeEmptyField(t *testing.T) {
	s := Summarize(NewField(0, 0), QuickMagnitude, false)
	assert.Equal(t, Summary{}, s)
}

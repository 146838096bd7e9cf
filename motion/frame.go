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

import "fmt"

// Frame holds a single grayscale video frame as 8-bit luma samples in
// row-major order. The buffer is owned by the caller; Median3x3 mutates
// it in place and everything else reads it.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame returns a zeroed frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Validate checks that the frame's dimensions are positive and that the
// sample buffer matches them. Callers run this at the loading boundary;
// the pixel loops assume it has passed and do no checking of their own.
func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame dimensions must be positive, got %dx%d", f.Width, f.Height)
	}
	if len(f.Pix) != f.Width*f.Height {
		return fmt.Errorf("frame has %d samples, want %d for %dx%d",
			len(f.Pix), f.Width*f.Height, f.Width, f.Height)
	}
	return nil
}

// SameSize reports whether two frames have identical dimensions.
// Estimation over frames of differing sizes is a caller error and must
// be rejected before the frames reach Estimate.
func SameSize(a, b *Frame) bool {
	return a.Width == b.Width && a.Height == b.Height
}

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

// Frame construction helpers for tests. patternAt gives a fixed
// pseudo-random texture over all of Z^2 so frames with a planted
// displacement can be built by sampling the same pattern at an offset.

func patternAt(x, y int) uint8 {
	h := uint32(x)*0x85ebca6b ^ uint32(y)*0xc2b2ae35
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return uint8(h)
}

func newUniformFrame(width, height int, value uint8) *Frame {
	f := NewFrame(width, height)
	for i := range f.Pix {
		f.Pix[i] = value
	}
	return f
}

// newTexturedFrame samples the test pattern with the given offset, so
// newTexturedFrame(w, h, dx, dy) holds the same content as
// newTexturedFrame(w, h, 0, 0) displaced by (dx, dy).
func newTexturedFrame(width, height, offx, offy int) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Pix[y*width+x] = patternAt(x-offx, y-offy)
		}
	}
	return f
}

func cloneFrame(f *Frame) *Frame {
	c := NewFrame(f.Width, f.Height)
	copy(c.Pix, f.Pix)
	return c
}

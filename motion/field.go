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
	"fmt"
	"strings"
)

// Vector is the displacement of one block in the current frame relative
// to its position in the previous frame. Components stay within
// [-SearchRange, SearchRange-1], so int8 holds them.
type Vector struct {
	X int8
	Y int8
}

// Field is a row-major grid of motion vectors covering a frame pair,
// NX cells wide and NY cells high. Cells outside the estimated region
// hold the zero vector.
type Field struct {
	NX      int
	NY      int
	Vectors []Vector
}

// NewField returns a zero-filled field of the given grid dimensions.
func NewField(nx, ny int) *Field {
	return &Field{
		NX:      nx,
		NY:      ny,
		Vectors: make([]Vector, nx*ny),
	}
}

// At returns the vector at grid position (idx, idy).
func (f *Field) At(idx, idy int) Vector {
	return f.Vectors[idy*f.NX+idx]
}

// Render formats the field as text, one line per grid row, each cell a
// "dx,dy" pair right-justified in a 7 character column.
func (f *Field) Render() string {
	var b strings.Builder
	for idy := 0; idy < f.NY; idy++ {
		for idx := 0; idx < f.NX; idx++ {
			v := f.Vectors[idy*f.NX+idx]
			fmt.Fprintf(&b, "%7s", fmt.Sprintf("%d,%d", v.X, v.Y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

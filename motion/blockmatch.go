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

import "math"

// Search geometry. Blocks of BlockSize x BlockSize pixels are matched
// every Step pixels, with candidate displacements covering
// [-SearchRange, SearchRange-1] on each axis.
const (
	BlockSize   = 16
	Step        = 8
	SearchRange = 16
)

// matchBlock finds the displacement of the block anchored at
// (posx, posy) in curr relative to prev by exhaustive search.
// Candidates are scanned with mvy outer and mvx inner, both ascending,
// and a candidate replaces the running best when its cost is less than
// or equal to the current minimum: among equal-cost candidates the one
// scanned last wins. That tie-break is deliberate and observable, so
// the scan order must not change.
//
// The caller guarantees every sampled pixel is in bounds (see the
// margin applied by Estimate); no checks are performed here.
func matchBlock(prev, curr *Frame, posx, posy int) (mvx, mvy, cost int) {
	minSAD := math.MaxInt32
	for y := -SearchRange; y < SearchRange; y++ {
		for x := -SearchRange; x < SearchRange; x++ {
			sad := blockSAD(prev, curr, posx+x, posy+y, posx, posy)
			if sad <= minSAD {
				minSAD = sad
				mvx, mvy = x, y
			}
		}
	}
	return mvx, mvy, minSAD
}

// blockSAD sums the absolute pixel differences over one block, with the
// previous frame's block anchored at (px, py) and the current frame's
// at (cx, cy).
func blockSAD(prev, curr *Frame, px, py, cx, cy int) int {
	sad := 0
	for y := 0; y < BlockSize; y++ {
		prow := (py+y)*prev.Width + px
		crow := (cy+y)*curr.Width + cx
		for x := 0; x < BlockSize; x++ {
			d := int(prev.Pix[prow+x]) - int(curr.Pix[crow+x])
			if d < 0 {
				d = -d
			}
			sad += d
		}
	}
	return sad
}

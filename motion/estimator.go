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

import "sync"

// Margin of grid cells excluded from estimation at the frame edges.
// A candidate block's leftmost sample sits at anchor-SearchRange, so
// the anchor must be at least SearchRange = marginLo*Step pixels in
// from the near edges. Its rightmost sample sits at
// anchor+SearchRange+BlockSize-2, so the anchor must stop
// (SearchRange+BlockSize)/Step grid cells short of the far edges.
// Cells in the margin keep the zero vector.
const (
	marginLo = SearchRange / Step
	marginHi = (SearchRange + BlockSize) / Step
)

// Estimate computes the motion field between two equal-sized, already
// filtered frames. prev and curr must have the same dimensions; the
// caller checks this with SameSize before calling. The grid is
// Width/Step by Height/Step cells, with only the interior beyond the
// edge margins estimated.
//
// With workers > 1 the grid rows are fanned out to that many
// goroutines. Every cell's search is self-contained, including its
// tie-break, so the result is identical to the sequential scan
// regardless of worker count.
func Estimate(prev, curr *Frame, workers int) *Field {
	field := NewField(prev.Width/Step, prev.Height/Step)

	if workers <= 1 {
		for idy := marginLo; idy < field.NY-marginHi; idy++ {
			estimateRow(prev, curr, field, idy)
		}
		return field
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idy := range rows {
				estimateRow(prev, curr, field, idy)
			}
		}()
	}
	for idy := marginLo; idy < field.NY-marginHi; idy++ {
		rows <- idy
	}
	close(rows)
	wg.Wait()
	return field
}

// estimateRow fills one grid row of the field, matching the block
// anchored at each cell's pixel position.
func estimateRow(prev, curr *Frame, field *Field, idy int) {
	for idx := marginLo; idx < field.NX-marginHi; idx++ {
		mvx, mvy, _ := matchBlock(prev, curr, idx*Step, idy*Step)
		field.Vectors[idy*field.NX+idx] = Vector{X: int8(mvx), Y: int8(mvy)}
	}
}

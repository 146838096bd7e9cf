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

// Median3x3 removes impulse noise by replacing every interior pixel
// with the median of its 3x3 neighbourhood. The filter runs in place in
// raster order, so a pixel's top and left neighbours have already been
// filtered when it is processed. That single-buffer behaviour is part
// of the contract; buffering into a second frame produces different
// output. Border pixels are left unmodified.
//
// Frames smaller than 3x3 are outside the contract.
func Median3x3(f *Frame) {
	var window [9]uint8
	w := f.Width
	for row := 1; row < f.Height-1; row++ {
		for col := 1; col < w-1; col++ {
			i := row*w + col
			gatherWindow(&window, f.Pix, i, w)
			insertionSort(window[:])
			f.Pix[i] = window[4]
		}
	}
}

// gatherWindow copies the 3x3 neighbourhood around center into window
// in row-major order, top-left to bottom-right.
func gatherWindow(window *[9]uint8, pix []uint8, center, width int) {
	i := 0
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			window[i] = pix[center+y*width+x]
			i++
		}
	}
}

func insertionSort(pix []uint8) {
	for i := 1; i < len(pix); i++ {
		for j := i; j > 0 && pix[j] < pix[j-1]; j-- {
			pix[j], pix[j-1] = pix[j-1], pix[j]
		}
	}
}

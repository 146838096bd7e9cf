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

// Package pnm reads and writes PGM ("portable graymap") images, the
// format the frame capture tooling produces. Only 8-bit grayscale is
// supported: raw (P5) and plain (P2) variants.
package pnm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/videofield/motion-estimator/motion"
)

// ReadFrame parses a PGM image into a frame. It rejects images that are
// not 8-bit grayscale, so the returned frame always satisfies
// Frame.Validate.
func ReadFrame(r io.Reader) (*motion.Frame, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("reading PGM header: %v", err)
	}
	if magic != "P5" && magic != "P2" {
		return nil, fmt.Errorf("not a PGM image (magic number %q)", magic)
	}

	width, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading width: %v", err)
	}
	height, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading height: %v", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	maxval, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading maxval: %v", err)
	}
	if maxval <= 0 || maxval > 255 {
		return nil, fmt.Errorf("unsupported maxval %d: only 8-bit samples are supported", maxval)
	}

	frame := motion.NewFrame(width, height)
	if magic == "P5" {
		// readInt consumed the single whitespace byte that separates
		// the maxval from the raw sample data.
		if _, err := io.ReadFull(br, frame.Pix); err != nil {
			return nil, fmt.Errorf("reading %dx%d samples: %v", width, height, err)
		}
		return frame, nil
	}

	for i := range frame.Pix {
		v, err := readInt(br)
		if err != nil {
			return nil, fmt.Errorf("reading sample %d: %v", i, err)
		}
		if v < 0 || v > maxval {
			return nil, fmt.Errorf("sample %d out of range: %d", i, v)
		}
		frame.Pix[i] = uint8(v)
	}
	return frame, nil
}

// WriteFrame writes a frame as a raw (P5) PGM image.
func WriteFrame(w io.Writer, f *motion.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P5\n%d %d\n255\n", f.Width, f.Height)
	bw.Write(f.Pix)
	return bw.Flush()
}

// readToken returns the next whitespace-delimited token, skipping "#"
// comments which run to the end of the line. The single whitespace byte
// terminating the token is consumed.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#' && len(tok) == 0:
			inComment = true
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readInt(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", tok)
	}
	return v, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// This file is part of Splitloop.
//
// Splitloop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Splitloop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Splitloop.  If not, see <https://www.gnu.org/licenses/>.

// Package frame defines the pixel frames that flow from the simulation to the
// presentation, and the placeholder painter that generates them.
//
// A Frame is an owned byte sequence. Ownership transfers fully from the
// simulation to the presentation on a successful send. The presentation must
// not retain a reference past the current tick.
package frame

import (
	"fmt"
)

// pixelDepth is the number of bytes per pixel. Four interleaved 8-bit
// channels in R, G, B, A order.
const pixelDepth = 4

// Spec describes the fixed geometry of every frame in a session.
type Spec struct {
	Width  int
	Height int
}

func (spec Spec) String() string {
	return fmt.Sprintf("%dx%d", spec.Width, spec.Height)
}

// NumBytes returns the exact length of every Frame with this Spec.
func (spec Spec) NumBytes() int {
	return spec.Width * spec.Height * pixelDepth
}

// Frame is a raw pixel buffer in row-major order. Every frame for a given
// Spec has exactly Spec.NumBytes() bytes.
type Frame []byte

// Paint generates the frame for the given frame number. This is placeholder
// pixel generation and not part of the coordination design: a gradient over
// x and y with the blue channel cycling with the frame number. The phase
// argument shifts the blue cycle and is the piece of simulation state that
// responds to user input.
//
// The alpha channel is always 255.
func Paint(spec Spec, frameNum int, phase int) Frame {
	f := make(Frame, spec.NumBytes())

	blue := byte((frameNum + phase) % 256)

	i := 0
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			f[i] = byte(x % 256)
			f[i+1] = byte(y % 256)
			f[i+2] = blue
			f[i+3] = 255
			i += pixelDepth
		}
	}

	return f
}

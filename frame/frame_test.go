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

package frame_test

import (
	"testing"

	"github.com/jetsetilly/splitloop/frame"
	"github.com/jetsetilly/splitloop/test"
)

func TestNumBytes(t *testing.T) {
	test.ExpectEquality(t, frame.Spec{Width: 640, Height: 480}.NumBytes(), 1228800)
	test.ExpectEquality(t, frame.Spec{Width: 1, Height: 1}.NumBytes(), 4)
	test.ExpectEquality(t, frame.Spec{Width: 320, Height: 200}.NumBytes(), 256000)
}

func TestPaintLength(t *testing.T) {
	for _, spec := range []frame.Spec{
		{Width: 640, Height: 480},
		{Width: 16, Height: 9},
		{Width: 1, Height: 1},
	} {
		f := frame.Paint(spec, 0, 0)
		test.ExpectEquality(t, len(f), spec.NumBytes(), spec)
	}
}

// byte 4*(y*W+x)+3 is the alpha channel and is always 255
func TestAlphaChannel(t *testing.T) {
	spec := frame.Spec{Width: 64, Height: 48}
	f := frame.Paint(spec, 99, 12)

	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			i := 4 * (y*spec.Width + x)
			test.DemandEquality(t, f[i+3], 255)
		}
	}
}

func TestGradient(t *testing.T) {
	spec := frame.Spec{Width: 300, Height: 2}
	f := frame.Paint(spec, 5, 0)

	// red channel follows x modulo 256
	test.ExpectEquality(t, f[0], 0)
	test.ExpectEquality(t, f[4*257], byte(1))

	// green channel follows y
	i := 4 * spec.Width
	test.ExpectEquality(t, f[i+1], 1)

	// blue channel follows the frame number
	test.ExpectEquality(t, f[2], 5)
}

// phase shifts the blue channel
func TestPhase(t *testing.T) {
	spec := frame.Spec{Width: 8, Height: 8}

	f := frame.Paint(spec, 10, 0)
	test.ExpectEquality(t, f[2], 10)

	f = frame.Paint(spec, 10, 20)
	test.ExpectEquality(t, f[2], 30)

	// phase and frame number wrap together
	f = frame.Paint(spec, 250, 10)
	test.ExpectEquality(t, f[2], 4)
}

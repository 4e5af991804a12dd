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

package performance_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/splitloop/performance"
	"github.com/jetsetilly/splitloop/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(60, 1.0, 16*time.Millisecond)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 96.0, 0.001)

	fps, accuracy = performance.CalcFPS(125, 2.0, 16*time.Millisecond)
	test.ExpectApproximate(t, fps, 62.5, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)
}

func TestCalcFPSDegenerate(t *testing.T) {
	fps, accuracy := performance.CalcFPS(100, 0, 16*time.Millisecond)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)

	fps, accuracy = performance.CalcFPS(100, 1.0, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

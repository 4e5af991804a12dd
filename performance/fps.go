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

// Package performance contains helper functions relating to the measurement
// of the frame rate achieved by the simulation loop.
package performance

import (
	"time"
)

// CalcFPS takes a number of frames and a duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of
// the rate implied by the target interval.
func CalcFPS(numFrames int, duration float64, interval time.Duration) (fps float64, accuracy float64) {
	if duration <= 0 || interval <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	target := float64(time.Second) / float64(interval)
	accuracy = 100 * fps / target
	return fps, accuracy
}

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

// Package simulation implements the worker side of the loop pair: the
// continuously-running update process that generates frames and consumes
// user input.
//
// The simulation never blocks on the driver. Frames the driver is not ready
// for are dropped and the loop moves on, so a slow or stalled presentation
// degrades to dropped frames rather than a stall. The loop ends only on a
// MessageTerminate from the driver or on expiry of its wall-clock budget.
// There is no exit path that originates here.
package simulation

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

// Package userinput defines the events that arrive from the windowing
// collaborator and the Accumulator that buffers them on the driver goroutine
// between forwards to the simulation.
//
// It can be thought of as a translation layer between the windowing
// implementation and the simulation. The windowing implementation in use
// during development was SDL and so there will be a bias towards that system.
package userinput

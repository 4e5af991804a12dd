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

// Package session wires the driver/presentation loop to the simulation
// worker and drives the whole lifecycle.
//
// Exactly two long-lived goroutines exist for the life of a session: the
// goroutine calling Run(), which owns the display and services the windowing
// system; and the simulation goroutine. All communication between them goes
// through two single-slot mailboxes, one per direction, and neither side
// ever blocks on the other. When one side outpaces its peer the excess unit
// of work is dropped at the sender and logged.
//
// The driver is the only component that can end the simulation, by way of
// the terminate sentinel during the shutdown handshake. The handshake has
// two phases: deliver the sentinel (best-effort, paced retries), then wait
// for the worker goroutine with a timeout.
package session

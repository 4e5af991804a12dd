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

package userinput

import (
	"sync"
)

// Accumulator buffers Events arriving on the driver goroutine between
// forwards to the simulation. It is safe to Push and Drain from different
// goroutines although in normal use both happen on the driver goroutine.
//
// The critical section is only ever held for the duration of an append or a
// snapshot-and-clear. Never across anything that can block.
type Accumulator struct {
	crit   sync.Mutex
	events EventBatch
}

// NewAccumulator is the preferred method of initialisation for the
// Accumulator type.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Push appends a single event to the accumulator.
func (acc *Accumulator) Push(ev Event) {
	acc.crit.Lock()
	defer acc.crit.Unlock()
	acc.events = append(acc.events, ev)
}

// Drain returns the accumulated events in arrival order and clears the
// accumulator in the same critical section. An event is never both returned
// and left behind.
//
// Clearing is unconditional. If the caller then fails to forward the batch
// the events are lost, which is acceptable. Unbounded growth is not.
func (acc *Accumulator) Drain() EventBatch {
	acc.crit.Lock()
	defer acc.crit.Unlock()

	if len(acc.events) == 0 {
		return nil
	}

	batch := acc.events
	acc.events = nil
	return batch
}

// Len returns the number of events currently accumulated.
func (acc *Accumulator) Len() int {
	acc.crit.Lock()
	defer acc.crit.Unlock()
	return len(acc.events)
}

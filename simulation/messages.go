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

package simulation

import (
	"github.com/jetsetilly/splitloop/userinput"
)

// Message is the tagged-variant type flowing from the driver to the
// simulation. The only consumption point is the simulation loop, which
// dispatches over the full set of variants. New variants should be added
// here and handled there, nowhere else.
//
// The opposite direction carries frames only, so no equivalent type exists
// for it. The frame.Frame payload is the message.
type Message interface {
	simulationMessage()
}

// MessageEvents carries a batch of user input events accumulated by the
// driver since the last forward. An empty batch is valid and is a no-op.
type MessageEvents struct {
	Batch userinput.EventBatch
}

// MessageTerminate is the sentinel that asks the simulation loop to end.
// It is only ever sent by the driver during shutdown. The simulation
// observes it between iterations, never mid-iteration.
type MessageTerminate struct{}

func (MessageEvents) simulationMessage()    {}
func (MessageTerminate) simulationMessage() {}

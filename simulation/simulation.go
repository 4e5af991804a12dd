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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/splitloop/frame"
	"github.com/jetsetilly/splitloop/logger"
	"github.com/jetsetilly/splitloop/mailbox"
	"github.com/jetsetilly/splitloop/performance"
	"github.com/jetsetilly/splitloop/userinput"
)

// amount the painter phase moves for one key press.
const phaseStep = 16

// Simulation runs the update loop on its own goroutine, decoupled from the
// driver. Communication with the driver goes through the two mailboxes and
// nothing else.
type Simulation struct {
	spec frame.Spec

	// target iteration interval and the wall-clock run budget. a budget of
	// zero means no budget
	interval time.Duration
	budget   time.Duration

	// inbound events and the terminate sentinel
	commands *mailbox.Mailbox[Message]

	// outbound frames
	frames *mailbox.Mailbox[frame.Frame]

	// number of frames actually handed to the driver and the number dropped
	// because the driver had not consumed the previous frame. delivered
	// doubles as the frame number for the painter, so frame numbering
	// reflects frames delivered, not attempts.
	//
	// atomic so the driver can read them for the exit summary
	delivered atomic.Int64
	dropped   atomic.Int64

	// painter phase. the placeholder simulation state. only ever touched
	// from the simulation goroutine
	phase int

	// closed when the loop has ended, however it ended
	done chan struct{}
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type. The mailboxes are supplied by the driver. A budget of zero means the
// loop runs until terminated.
func NewSimulation(spec frame.Spec, commands *mailbox.Mailbox[Message],
	frames *mailbox.Mailbox[frame.Frame],
	interval time.Duration, budget time.Duration) *Simulation {

	return &Simulation{
		spec:     spec,
		interval: interval,
		budget:   budget,
		commands: commands,
		frames:   frames,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the simulation loop has ended.
// The driver waits on this during shutdown.
func (sim *Simulation) Done() <-chan struct{} {
	return sim.done
}

// Delivered returns the number of frames successfully handed to the driver.
func (sim *Simulation) Delivered() int {
	return int(sim.delivered.Load())
}

// Dropped returns the number of frames dropped because the driver had not
// consumed the previous frame.
func (sim *Simulation) Dropped() int {
	return int(sim.dropped.Load())
}

// Run is the simulation loop. It ends when a MessageTerminate is received or
// when the wall-clock budget elapses. It should be run on a dedicated
// goroutine; the Done() channel signals its end.
//
// The loop never blocks on the driver. A frame the driver is not ready for
// is dropped and the next iteration paints a fresh one.
func (sim *Simulation) Run() {
	defer close(sim.done)

	start := time.Now()

	for {
		tick := time.Now()

		if msg, ok := sim.commands.TryRecv(); ok {
			if sim.process(msg) {
				sim.summarise(time.Since(start))
				return
			}
		}

		f := frame.Paint(sim.spec, int(sim.delivered.Load()), sim.phase)
		if err := sim.frames.TrySend(f); err != nil {
			sim.dropped.Add(1)
			logger.Log(logger.Allow, "simulation", "dropping frame: driver has not consumed the previous frame")
		} else {
			sim.delivered.Add(1)
		}

		if sim.budget > 0 && time.Since(start) >= sim.budget {
			sim.summarise(time.Since(start))
			return
		}

		// sleep for whatever is left of the interval after this iteration's
		// compute time. clamped at zero. there is no correction for drift
		// accumulated over previous iterations
		if remaining := sim.interval - time.Since(tick); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// process a single inbound message. This is the only consumption point for
// the Message type. Returns true if the loop should end.
func (sim *Simulation) process(msg Message) bool {
	switch msg := msg.(type) {
	case MessageEvents:
		for _, ev := range msg.Batch {
			sim.dispatch(ev)
		}
	case MessageTerminate:
		return true
	}
	return false
}

// dispatch acts on a single user input event. Only keyboard events affect
// the simulation for now. Every other variant is accepted and ignored.
func (sim *Simulation) dispatch(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		if !ev.Down || ev.Mod != userinput.KeyModNone {
			return
		}
		switch ev.Key {
		case "Left":
			sim.phase = (sim.phase - phaseStep + 256) % 256
		case "Right":
			sim.phase = (sim.phase + phaseStep) % 256
		case "Space":
			sim.phase = 0
		}
	default:
	}
}

func (sim *Simulation) summarise(elapsed time.Duration) {
	fps, accuracy := performance.CalcFPS(sim.Delivered(), elapsed.Seconds(), sim.interval)
	logger.Logf(logger.Allow, "simulation", "ran for %.2fs: %d frames delivered (%d dropped) %.1f fps (%.1f%%)",
		elapsed.Seconds(), sim.Delivered(), sim.Dropped(), fps, accuracy)
}

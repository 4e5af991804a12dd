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

package session

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/splitloop/curated"
	"github.com/jetsetilly/splitloop/frame"
	"github.com/jetsetilly/splitloop/gui"
	"github.com/jetsetilly/splitloop/logger"
	"github.com/jetsetilly/splitloop/mailbox"
	"github.com/jetsetilly/splitloop/simulation"
	"github.com/jetsetilly/splitloop/userinput"
)

// WorkerJoinFailure is the sentinel error pattern returned by Run() when the
// simulation goroutine does not end during shutdown. Best-effort only, it
// should not prevent process exit.
const WorkerJoinFailure = "session: worker did not end cleanly during shutdown"

// number of paced attempts to deliver the terminate sentinel. the worker
// drains its command slot once per iteration so one retry is normally enough.
const terminateAttempts = 10

// how long phase two of the shutdown waits for the worker.
const joinTimeout = 500 * time.Millisecond

// State records the lifecycle of the driver loop. There are no states other
// than these three and the progression is strictly in order.
type State int

// List of valid states.
const (
	Running State = iota
	ShuttingDown
	Terminated
)

// Session owns everything the two loops share: the mailbox pair and the
// event accumulator. It runs the driver/presentation side itself and the
// simulation on a worker goroutine.
type Session struct {
	scr  gui.Screen
	spec frame.Spec

	// tick interval for the driver loop. the simulation has its own copy
	interval time.Duration

	// the only shared mutable state outside the mailboxes. owned here and
	// passed by reference to the two call sites that need it
	acc *userinput.Accumulator

	commands *mailbox.Mailbox[simulation.Message]
	frames   *mailbox.Mailbox[frame.Frame]
	sim      *simulation.Simulation

	state State

	// set asynchronously by Quit()
	quit atomic.Bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The screen is resized to the frame geometry immediately. The screen is
// borrowed, not owned: destroying it after Run() returns is the caller's
// responsibility.
func NewSession(scr gui.Screen, spec frame.Spec, interval time.Duration, budget time.Duration) (*Session, error) {
	s := &Session{
		scr:      scr,
		spec:     spec,
		interval: interval,
		acc:      userinput.NewAccumulator(),
		commands: mailbox.NewMailbox[simulation.Message](),
		frames:   mailbox.NewMailbox[frame.Frame](),
	}
	s.sim = simulation.NewSimulation(spec, s.commands, s.frames, interval, budget)

	if err := scr.Resize(spec.Width, spec.Height); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	return s, nil
}

// State returns the current lifecycle state. Not synchronised. Meaningful
// from the goroutine calling Run(), or after Run() has returned.
func (s *Session) State() State {
	return s.state
}

// Delivered returns the number of frames the simulation has successfully
// handed over so far.
func (s *Session) Delivered() int {
	return s.sim.Delivered()
}

// Dropped returns the number of frames the simulation has dropped so far.
func (s *Session) Dropped() int {
	return s.sim.Dropped()
}

// Quit asks the driver loop to begin shutdown at the next tick. Safe to call
// from any goroutine. Used for interrupt signals; a window close request
// does not need it.
func (s *Session) Quit() {
	s.quit.Store(true)
}

// Run starts the simulation goroutine and runs the driver loop until a close
// request, a Quit() call or a presentation failure, then performs the
// shutdown handshake with the worker.
//
// If the screen implementation requires main thread usage then Run MUST be
// called from the #mainthread.
func (s *Session) Run() error {
	go s.sim.Run()

	var presentationErr error

	for s.state == Running {
		tick := time.Now()

		if s.scr.Service(s.acc) || s.quit.Load() {
			s.state = ShuttingDown
		}

		// forward accumulated events. empty batches are forwarded too; they
		// are a no-op downstream. rejection means the simulation has not
		// drained the previous batch: those events are lost, which is
		// preferred over blocking or unbounded queueing
		batch := s.acc.Drain()
		if err := s.commands.TrySend(simulation.MessageEvents{Batch: batch}); err != nil {
			if len(batch) > 0 {
				logger.Logf(logger.Allow, "session", "dropping %d events: simulation has not consumed the previous batch", len(batch))
			}
		}

		// present the latest frame if there is one. the simulation has
		// relinquished ownership of the buffer; it is not retained past
		// this tick
		if f, ok := s.frames.TryRecv(); ok {
			err := s.scr.WriteFrame(f)
			if err == nil {
				err = s.scr.Present()
			}
			if err != nil {
				logger.Log(logger.Allow, "session", err)
				presentationErr = err
				s.state = ShuttingDown
			}
		}

		if s.state == Running {
			if remaining := s.interval - time.Since(tick); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}

	err := s.shutdown()
	s.state = Terminated

	if presentationErr != nil {
		return curated.Errorf("session: %v", presentationErr)
	}
	return err
}

// shutdown is the two-phase handshake with the worker: deliver the terminate
// sentinel, then join.
func (s *Session) shutdown() error {
	// phase one. if the command slot is full the worker will drain it within
	// one iteration, so paced retries are enough. delivery is best-effort:
	// the worker may have ended on its own budget already, in which case an
	// accepted sentinel is simply never read
	sent := false
	for i := 0; i < terminateAttempts && !sent; i++ {
		if err := s.commands.TrySend(simulation.MessageTerminate{}); err == nil {
			sent = true
		} else {
			time.Sleep(s.interval)
		}
	}
	if !sent {
		logger.Log(logger.Allow, "session", "terminate not delivered: relying on the worker's run budget")
	}

	// phase two. the join must happen before the caller releases the screen
	// resources but it must not hold up process exit indefinitely
	select {
	case <-s.sim.Done():
	case <-time.After(joinTimeout):
		return curated.Errorf(WorkerJoinFailure)
	}

	return nil
}

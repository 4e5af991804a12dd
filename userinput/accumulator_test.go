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

package userinput_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jetsetilly/splitloop/test"
	"github.com/jetsetilly/splitloop/userinput"
)

func TestEmptyDrain(t *testing.T) {
	acc := userinput.NewAccumulator()

	batch := acc.Drain()
	test.ExpectEquality(t, len(batch), 0)
}

// for any sequence of N accumulated events drained together, the batch
// preserves the original order exactly
func TestArrivalOrder(t *testing.T) {
	acc := userinput.NewAccumulator()

	const numEvents = 100

	for i := 0; i < numEvents; i++ {
		acc.Push(userinput.EventKeyboard{Key: fmt.Sprintf("%d", i), Down: true})
	}
	test.ExpectEquality(t, acc.Len(), numEvents)

	batch := acc.Drain()
	test.DemandEquality(t, len(batch), numEvents)

	for i, ev := range batch {
		kb, ok := ev.(userinput.EventKeyboard)
		test.DemandSuccess(t, ok, i)
		test.ExpectEquality(t, kb.Key, fmt.Sprintf("%d", i), i)
	}
}

// draining clears the accumulator exactly once. no event is both drained and
// left behind
func TestDrainClears(t *testing.T) {
	acc := userinput.NewAccumulator()

	acc.Push(userinput.EventQuit{})
	acc.Push(userinput.EventMouseMotion{X: 1, Y: 2})

	batch := acc.Drain()
	test.ExpectEquality(t, len(batch), 2)
	test.ExpectEquality(t, acc.Len(), 0)

	batch = acc.Drain()
	test.ExpectEquality(t, len(batch), 0)
}

func TestMixedVariants(t *testing.T) {
	acc := userinput.NewAccumulator()

	acc.Push(userinput.EventKeyboard{Key: "Space", Down: true})
	acc.Push(userinput.EventWindowResize{Width: 800, Height: 600})
	acc.Push(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	acc.Push(userinput.EventQuit{})

	batch := acc.Drain()
	test.DemandEquality(t, len(batch), 4)

	_, ok := batch[0].(userinput.EventKeyboard)
	test.ExpectSuccess(t, ok)
	_, ok = batch[1].(userinput.EventWindowResize)
	test.ExpectSuccess(t, ok)
	_, ok = batch[2].(userinput.EventMouseButton)
	test.ExpectSuccess(t, ok)
	_, ok = batch[3].(userinput.EventQuit)
	test.ExpectSuccess(t, ok)
}

// the accumulator remains safe if ever driven from more than one goroutine
func TestConcurrentPush(t *testing.T) {
	acc := userinput.NewAccumulator()

	const numGoroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				acc.Push(userinput.EventMouseMotion{X: j})
			}
		}()
	}
	wg.Wait()

	batch := acc.Drain()
	test.ExpectEquality(t, len(batch), numGoroutines*perGoroutine)
	test.ExpectEquality(t, acc.Len(), 0)
}

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

package mailbox_test

import (
	"testing"

	"github.com/jetsetilly/splitloop/curated"
	"github.com/jetsetilly/splitloop/mailbox"
	"github.com/jetsetilly/splitloop/test"
)

func TestEmptyReceive(t *testing.T) {
	mb := mailbox.NewMailbox[int]()

	_, ok := mb.TryRecv()
	test.ExpectFailure(t, ok)
}

func TestHandoff(t *testing.T) {
	mb := mailbox.NewMailbox[string]()

	test.ExpectSuccess(t, mb.TrySend("first"))

	msg, ok := mb.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, msg, "first")

	// slot is free again after the receive
	test.ExpectSuccess(t, mb.TrySend("second"))

	msg, ok = mb.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, msg, "second")
}

// a second send before the first message is drained is always rejected and
// the first message remains retrievable unchanged. no overwrite, no queueing.
func TestSecondSendRejected(t *testing.T) {
	mb := mailbox.NewMailbox[int]()

	test.ExpectSuccess(t, mb.TrySend(100))

	err := mb.TrySend(200)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, mailbox.Busy))

	// the pending message is untouched by the rejected send
	msg, ok := mb.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, msg, 100)

	// the rejected message was not queued
	_, ok = mb.TryRecv()
	test.ExpectFailure(t, ok)
}

func TestSendOrder(t *testing.T) {
	mb := mailbox.NewMailbox[int]()

	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, mb.TrySend(i), i)
		msg, ok := mb.TryRecv()
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, msg, i)
	}
}

// the two directions of a pair of mailboxes are independent. a full slot in
// one direction never affects the other.
func TestIndependentDirections(t *testing.T) {
	toWorker := mailbox.NewMailbox[int]()
	toDriver := mailbox.NewMailbox[string]()

	test.ExpectSuccess(t, toWorker.TrySend(1))
	test.ExpectFailure(t, toWorker.TrySend(2))

	test.ExpectSuccess(t, toDriver.TrySend("frame"))

	msg, ok := toDriver.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, msg, "frame")
}

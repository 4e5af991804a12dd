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

// Package mailbox provides a single-slot, non-blocking handoff channel
// between exactly two goroutines. A pending unread message is never
// overwritten and never queued behind: a second send is rejected and the
// caller keeps ownership of the rejected message.
//
// Rejection is reported with a curated error so that callers must branch on
// it consciously:
//
//	if err := mb.TrySend(m); err != nil {
//		// m was not delivered and is still ours to drop or retry
//	}
//
// Because the slot is exactly one message deep, messages within one direction
// are observed in send order. There is no ordering guarantee between two
// mailboxes.
package mailbox

import (
	"github.com/jetsetilly/splitloop/curated"
)

// Busy is the sentinel error pattern returned by TrySend when the previous
// message has not yet been received.
const Busy = "mailbox: busy: undelivered message in the slot"

// Mailbox is a handoff channel with a capacity of exactly one message.
// Neither TrySend nor TryRecv ever block.
//
// A Mailbox supports one sending goroutine and one receiving goroutine.
type Mailbox[M any] struct {
	slot chan M
}

// NewMailbox is the preferred method of initialisation for the Mailbox type.
func NewMailbox[M any]() *Mailbox[M] {
	return &Mailbox[M]{
		slot: make(chan M, 1),
	}
}

// TrySend offers a message to the mailbox. If the previous message has not
// been received the send is rejected with the Busy error and the caller
// retains ownership of msg. The pending message is left untouched.
func (mb *Mailbox[M]) TrySend(msg M) error {
	select {
	case mb.slot <- msg:
		return nil
	default:
		return curated.Errorf(Busy)
	}
}

// TryRecv takes the pending message from the mailbox. The second return value
// is false if there is no pending message.
func (mb *Mailbox[M]) TryRecv() (M, bool) {
	select {
	case msg := <-mb.slot:
		return msg, true
	default:
		var none M
		return none, false
	}
}

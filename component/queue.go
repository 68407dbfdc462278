/*
 * MIT License
 *
 * Copyright (c) 2024-2026 GoActive Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package component

import (
	"sync"

	gods "github.com/Workiva/go-datastructures/queue"

	gerrors "github.com/stackmind/goactive/errors"
)

// MessageQueue is a blocking, closable FIFO shared between any number of
// producer goroutines and exactly one consumer loop.
//
// Semantics
//   - Push enqueues unless the queue is closed, in which case it reports the
//     failure to the caller without blocking or panicking.
//   - Wait blocks the consumer until a message is available or the queue is
//     closed; the boolean result turns false when the loop should end.
//   - Close marks the queue closed and wakes every blocked waiter.
//
// Multiple concurrent consumers are not a supported configuration.
type MessageQueue interface {
	Push(msg Message) error
	Wait() (Message, bool)
	Close()
}

// unboundedQueue is the default MessageQueue: unbounded, strict FIFO,
// guarded by a single mutex with a condition variable for the consumer.
//
// Close-then-drain: messages accepted before Close are still handed to the
// consumer; Wait only reports false once the queue is both closed and empty.
// The ring buffer backing boundedQueue cannot express this, as its Dispose
// drops pending items, hence the hand-rolled implementation here.
type unboundedQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Message
	closed bool
}

// enforce compilation error when the interface contract changes
var _ MessageQueue = (*unboundedQueue)(nil)

func newUnboundedQueue() *unboundedQueue {
	q := &unboundedQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *unboundedQueue) Push(msg Message) error {
	if msg == nil {
		return gerrors.ErrNilMessage
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return gerrors.ErrQueueClosed
	}
	q.items = append(q.items, msg)
	q.cond.Signal()
	return nil
}

func (q *unboundedQueue) Wait() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}
	msg := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return msg, true
}

func (q *unboundedQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// boundedQueue is a fixed-capacity MessageQueue backed by a ring buffer.
// Push fails with ErrQueueFull when the buffer is at capacity: the message
// is dropped and the producer carries on, which is the runtime's overflow
// policy. Close drops any undelivered messages, a documented tradeoff of
// choosing an explicit bound.
type boundedQueue struct {
	buffer *gods.RingBuffer
}

// enforce compilation error when the interface contract changes
var _ MessageQueue = (*boundedQueue)(nil)

func newBoundedQueue(capacity int) *boundedQueue {
	return &boundedQueue{
		buffer: gods.NewRingBuffer(uint64(capacity)),
	}
}

func (q *boundedQueue) Push(msg Message) error {
	if msg == nil {
		return gerrors.ErrNilMessage
	}
	ok, err := q.buffer.Offer(msg)
	switch {
	case err != nil:
		return gerrors.ErrQueueClosed
	case !ok:
		return gerrors.ErrQueueFull
	default:
		return nil
	}
}

func (q *boundedQueue) Wait() (Message, bool) {
	item, err := q.buffer.Get()
	if err != nil {
		return nil, false
	}
	msg, ok := item.(Message)
	if !ok {
		return nil, true
	}
	return msg, true
}

func (q *boundedQueue) Close() {
	q.buffer.Dispose()
}

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

// Package transport defines the boundary contract that concrete transports
// satisfy so serialized messages can cross process boundaries, plus an
// in-process implementation for single-process deployments and tests.
//
// The core runtime carries no transport logic of its own; transports only
// consume the address vocabulary and deliver opaque byte payloads.
package transport

import (
	"github.com/stackmind/goactive/address"
	"github.com/stackmind/goactive/component"
)

// SendStatus is the outcome of a Send attempt.
type SendStatus int

const (
	// SendOK means the payload was handed to the receiver.
	SendOK SendStatus = iota
	// SendReceiverUnavailable means the receiver could not be reached.
	SendReceiverUnavailable
	// SendFailed means the payload was rejected before delivery, for
	// example because it exceeds the transport's frame limit.
	SendFailed
)

// String returns the text representation of the status.
func (s SendStatus) String() string {
	switch s {
	case SendOK:
		return "ok"
	case SendReceiverUnavailable:
		return "receiver-unavailable"
	case SendFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReceiverStatus is the reachability of the peer receiver.
type ReceiverStatus int

const (
	// ReceiverAvailable means the peer receiver is reachable.
	ReceiverAvailable ReceiverStatus = iota
	// ReceiverUnavailable means the peer receiver is not reachable.
	ReceiverUnavailable
)

// String returns the text representation of the status.
func (s ReceiverStatus) String() string {
	if s == ReceiverAvailable {
		return "available"
	}
	return "unavailable"
}

// DeliveryFunc is invoked by a receiver for every payload that arrives.
// It runs on a transport goroutine; implementations that need component
// semantics should post into a component queue, see DeliverTo.
type DeliveryFunc func(payload []byte)

// Sender is the outbound half of a transport. Implementations must be safe
// for use from a single goroutine; concurrent senders each open their own.
type Sender interface {
	// InitConnection binds the sender to the given receiver address and
	// establishes whatever underlying connection the transport needs.
	InitConnection(receiver *address.Address) error
	// Send delivers payload to destination, or to the receiver bound at
	// InitConnection time when destination is nil.
	Send(payload []byte, destination *address.Address) SendStatus
	// ReceiverAddress returns the address bound at InitConnection time.
	ReceiverAddress() *address.Address
	// CheckReceiverStatus probes the peer receiver's reachability.
	CheckReceiverStatus() ReceiverStatus
	// Close releases the underlying connection.
	Close() error
}

// Receiver is the inbound half of a transport.
type Receiver interface {
	// Start begins accepting payloads and dispatching them to the
	// delivery callback.
	Start() error
	// Stop stops accepting payloads and releases resources.
	Stop() error
	// Address returns the address peers use to reach this receiver.
	Address() *address.Address
}

// BytesMessageType tags payloads delivered from a transport into a
// component queue.
const BytesMessageType component.Type = "transport.bytes"

// BytesMessage carries one received transport payload through a
// component's dispatch table.
type BytesMessage struct {
	Payload []byte
}

// Type implements component.Message.
func (*BytesMessage) Type() component.Type { return BytesMessageType }

// DeliverTo returns a DeliveryFunc that re-delivers every received payload
// onto the given component's queue as a BytesMessage, preserving the
// runtime's single-threaded execution semantics for transport traffic.
func DeliverTo(comp *component.Component) DeliveryFunc {
	return func(payload []byte) {
		comp.PostMessage(&BytesMessage{Payload: payload})
	}
}

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

package transport

import (
	"fmt"
	"sync"

	goset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"

	"github.com/stackmind/goactive/address"
	gerrors "github.com/stackmind/goactive/errors"
	"github.com/stackmind/goactive/log"
)

// Hub pairs in-process senders and receivers. It satisfies the transport
// contract without any wire: payloads are handed directly to the target
// receiver's delivery callback.
type Hub struct {
	mu        sync.RWMutex
	addresses goset.Set[string]
	receivers map[string]*InmemReceiver
	logger    log.Logger
}

// NewHub creates an empty in-process transport hub.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Hub{
		addresses: goset.NewSet[string](),
		receivers: make(map[string]*InmemReceiver),
		logger:    logger,
	}
}

// NewReceiver creates a receiver for the given address on this hub. The
// receiver is registered on Start and deregistered on Stop.
func (h *Hub) NewReceiver(addr *address.Address, deliver DeliveryFunc) *InmemReceiver {
	return &InmemReceiver{
		hub:     h,
		addr:    addr,
		deliver: deliver,
		started: atomic.NewBool(false),
	}
}

// NewSender creates a sender bound to this hub.
func (h *Hub) NewSender() *InmemSender {
	return &InmemSender{hub: h}
}

func (h *Hub) register(r *InmemReceiver) error {
	key := r.addr.HostPort()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.addresses.Contains(key) {
		return fmt.Errorf("%w: %s is already registered", gerrors.ErrInvalidAddress, key)
	}
	h.addresses.Add(key)
	h.receivers[key] = r
	return nil
}

func (h *Hub) deregister(r *InmemReceiver) {
	key := r.addr.HostPort()
	h.mu.Lock()
	h.addresses.Remove(key)
	delete(h.receivers, key)
	h.mu.Unlock()
}

func (h *Hub) lookup(addr *address.Address) (*InmemReceiver, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.receivers[addr.HostPort()]
	return r, ok
}

func (h *Hub) available(addr *address.Address) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.addresses.Contains(addr.HostPort())
}

// InmemReceiver is the in-process Receiver implementation.
type InmemReceiver struct {
	hub     *Hub
	addr    *address.Address
	deliver DeliveryFunc
	started *atomic.Bool
}

// enforce compilation error when the interface contract changes
var _ Receiver = (*InmemReceiver)(nil)

// Start registers the receiver with its hub.
func (r *InmemReceiver) Start() error {
	if err := r.addr.Validate(); err != nil {
		return err
	}
	if !r.started.CompareAndSwap(false, true) {
		return nil
	}
	if err := r.hub.register(r); err != nil {
		r.started.Store(false)
		return err
	}
	return nil
}

// Stop deregisters the receiver from its hub.
func (r *InmemReceiver) Stop() error {
	if !r.started.CompareAndSwap(true, false) {
		return nil
	}
	r.hub.deregister(r)
	return nil
}

// Address returns the receiver's address.
func (r *InmemReceiver) Address() *address.Address {
	return r.addr
}

// InmemSender is the in-process Sender implementation.
type InmemSender struct {
	mu           sync.Mutex
	hub          *Hub
	receiverAddr *address.Address
}

// enforce compilation error when the interface contract changes
var _ Sender = (*InmemSender)(nil)

// InitConnection binds the sender to a receiver address. The receiver does
// not have to be registered yet; reachability is probed per send.
func (s *InmemSender) InitConnection(receiver *address.Address) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.receiverAddr = receiver
	s.mu.Unlock()
	return nil
}

// Send hands the payload to the destination receiver's delivery callback.
func (s *InmemSender) Send(payload []byte, destination *address.Address) SendStatus {
	dest := destination
	if dest == nil {
		s.mu.Lock()
		dest = s.receiverAddr
		s.mu.Unlock()
	}
	if dest == nil {
		return SendFailed
	}
	receiver, ok := s.hub.lookup(dest)
	if !ok || !receiver.started.Load() {
		return SendReceiverUnavailable
	}
	if receiver.deliver != nil {
		receiver.deliver(payload)
	}
	return SendOK
}

// ReceiverAddress returns the address bound at InitConnection time.
func (s *InmemSender) ReceiverAddress() *address.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receiverAddr
}

// CheckReceiverStatus reports whether the bound receiver is registered.
func (s *InmemSender) CheckReceiverStatus() ReceiverStatus {
	s.mu.Lock()
	addr := s.receiverAddr
	s.mu.Unlock()
	if addr == nil || !s.hub.available(addr) {
		return ReceiverUnavailable
	}
	return ReceiverAvailable
}

// Close is a no-op for the in-process transport.
func (s *InmemSender) Close() error {
	return nil
}

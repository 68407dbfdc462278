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

package tcptransport

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/flowchartsman/retry"

	"github.com/stackmind/goactive/address"
	gerrors "github.com/stackmind/goactive/errors"
	"github.com/stackmind/goactive/log"
	"github.com/stackmind/goactive/transport"
)

// Sender is the TCP implementation of the transport sender contract. It
// maintains at most one connection, to the receiver bound at
// InitConnection time, and re-dials transparently when Send targets a
// different destination.
type Sender struct {
	mu           sync.Mutex
	cfg          Config
	conn         net.Conn
	receiverAddr *address.Address
	logger       log.Logger
}

// enforce compilation error when the interface contract changes
var _ transport.Sender = (*Sender)(nil)

// NewSender creates an unconnected TCP sender.
func NewSender(cfg Config, logger log.Logger) *Sender {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Sender{
		cfg:    cfg.sanitize(),
		logger: logger,
	}
}

// InitConnection dials the receiver, retrying with backoff up to the
// configured number of attempts.
func (s *Sender) InitConnection(receiver *address.Address) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	var conn net.Conn
	retrier := retry.NewRetrier(s.cfg.DialRetries, s.cfg.RetryDelay, s.cfg.DialTimeout)
	err := retrier.Run(func() error {
		var dialErr error
		conn, dialErr = net.DialTimeout("tcp", receiver.HostPort(), s.cfg.DialTimeout)
		return dialErr
	})
	if err != nil {
		return errors.Join(gerrors.ErrReceiverUnavailable, err)
	}

	s.mu.Lock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
	s.receiverAddr = receiver
	s.mu.Unlock()
	return nil
}

// Send writes one frame to the destination, or to the receiver bound at
// InitConnection time when destination is nil. A write failure closes the
// connection; the next InitConnection re-establishes it.
func (s *Sender) Send(payload []byte, destination *address.Address) transport.SendStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if destination != nil && (s.receiverAddr == nil || !destination.Equals(s.receiverAddr)) {
		if err := s.redial(destination); err != nil {
			s.logger.Warnf("failed to reach receiver %s: %v", destination.HostPort(), err)
			return transport.SendReceiverUnavailable
		}
	}

	if s.conn == nil {
		s.logger.Warn(gerrors.ErrConnectionNotInitialized)
		return transport.SendReceiverUnavailable
	}

	if uint32(len(payload)) > s.cfg.MaxFrameSize {
		s.logger.Warnf("rejecting oversize payload of %d bytes", len(payload))
		return transport.SendFailed
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := writeFrame(s.conn, payload, s.cfg.MaxFrameSize); err != nil {
		s.logger.Warnf("failed to send %d bytes to %s: %v", len(payload), s.receiverAddr.HostPort(), err)
		_ = s.conn.Close()
		s.conn = nil
		return transport.SendReceiverUnavailable
	}
	return transport.SendOK
}

// redial replaces the current connection. Callers must hold s.mu.
func (s *Sender) redial(destination *address.Address) error {
	conn, err := net.DialTimeout("tcp", destination.HostPort(), s.cfg.DialTimeout)
	if err != nil {
		return err
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
	s.receiverAddr = destination
	return nil
}

// ReceiverAddress returns the address bound at InitConnection time.
func (s *Sender) ReceiverAddress() *address.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receiverAddr
}

// CheckReceiverStatus probes the peer with a fresh short-lived dial so a
// half-dead cached connection cannot report a false positive.
func (s *Sender) CheckReceiverStatus() transport.ReceiverStatus {
	s.mu.Lock()
	addr := s.receiverAddr
	s.mu.Unlock()
	if addr == nil {
		return transport.ReceiverUnavailable
	}
	conn, err := net.DialTimeout("tcp", addr.HostPort(), s.cfg.DialTimeout)
	if err != nil {
		return transport.ReceiverUnavailable
	}
	_ = conn.Close()
	return transport.ReceiverAvailable
}

// Close releases the underlying connection.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

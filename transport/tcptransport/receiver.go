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
	"context"
	"errors"
	"io"
	"net"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/stackmind/goactive/address"
	"github.com/stackmind/goactive/log"
	"github.com/stackmind/goactive/transport"
)

// Receiver is the TCP implementation of the transport receiver contract.
// Each accepted connection gets its own serving goroutine; all goroutines
// are supervised by one errgroup so Stop can wait for a clean drain.
type Receiver struct {
	cfg      Config
	addr     *address.Address
	deliver  transport.DeliveryFunc
	logger   log.Logger
	started  *atomic.Bool
	listener net.Listener
	group    *errgroup.Group
	cancel   context.CancelFunc
}

// enforce compilation error when the interface contract changes
var _ transport.Receiver = (*Receiver)(nil)

// NewReceiver creates a TCP receiver that will listen on the given
// address and hand every received frame to deliver.
func NewReceiver(cfg Config, addr *address.Address, deliver transport.DeliveryFunc, logger log.Logger) *Receiver {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Receiver{
		cfg:     cfg.sanitize(),
		addr:    addr,
		deliver: deliver,
		logger:  logger,
		started: atomic.NewBool(false),
	}
}

// Start binds the listener and begins accepting connections.
func (r *Receiver) Start() error {
	if err := r.addr.Validate(); err != nil {
		return err
	}
	if !r.started.CompareAndSwap(false, true) {
		return nil
	}

	listener, err := net.Listen("tcp", r.addr.HostPort())
	if err != nil {
		r.started.Store(false)
		return err
	}
	r.listener = listener

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.group, ctx = errgroup.WithContext(ctx)
	r.group.Go(func() error {
		return r.acceptLoop(ctx)
	})
	return nil
}

// Stop closes the listener and waits for the serving goroutines to drain.
func (r *Receiver) Stop() error {
	if !r.started.CompareAndSwap(true, false) {
		return nil
	}
	r.cancel()
	err := r.listener.Close()
	if waitErr := r.group.Wait(); waitErr != nil && !isClosedConn(waitErr) {
		err = errors.Join(err, waitErr)
	}
	if err != nil && isClosedConn(err) {
		return nil
	}
	return err
}

// Address returns the receiver's address.
func (r *Receiver) Address() *address.Address {
	return r.addr
}

func (r *Receiver) acceptLoop(ctx context.Context) error {
	for {
		conn, err := r.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if isClosedConn(err) {
				return nil
			}
			return err
		}
		r.group.Go(func() error {
			r.serve(ctx, conn)
			return nil
		})
	}
}

// serve reads frames off one connection until it closes.
func (r *Receiver) serve(ctx context.Context, conn net.Conn) {
	defer func() { _ = conn.Close() }()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		payload, err := readFrame(conn, r.cfg.MaxFrameSize)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) && !isClosedConn(err) {
				r.logger.Warnf("failed to read frame from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}
		if r.deliver != nil {
			r.deliver(payload)
		}
	}
}

func isClosedConn(err error) bool {
	return errors.Is(err, net.ErrClosed)
}

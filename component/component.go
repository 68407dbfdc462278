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
	"context"
	"sync"
	"time"

	"github.com/petermattis/goid"
	"go.uber.org/atomic"

	"github.com/stackmind/goactive/log"
)

// RunMode selects where a component's message loop executes.
type RunMode int

const (
	// Sync runs the message loop on the calling goroutine. Run blocks until
	// the component is stopped. Useful for a "main" component.
	Sync RunMode = iota
	// Async spawns a dedicated worker goroutine for the message loop and
	// returns immediately.
	Async
)

// Handler processes a single dispatched message. Handlers for one component
// never run concurrently with each other; each runs to completion on the
// loop goroutine before the next message is dequeued.
type Handler func(msg Message)

// defaultShutdownTimeout bounds how long Stop waits for the timer manager
// to drain its in-flight jobs.
const defaultShutdownTimeout = 3 * time.Second

// Component is an active object: it owns a message queue, a type-tag
// dispatch table, a lazily created TimerManager, and, in Async mode, a
// dedicated worker goroutine running the message loop.
//
// Producers interact with a component only through PostMessage,
// PostCallback and RegisterMessageHandler, all safe from any goroutine.
// All component-owned state is mutated exclusively on the loop goroutine.
type Component struct {
	nameMu sync.RWMutex
	name   string

	handlersMu sync.RWMutex
	handlers   map[Type]Handler

	queue  MessageQueue
	logger log.Logger

	timersMu sync.Mutex
	timers   *TimerManager

	// alive flips to false at the start of Stop; weak handles resolve
	// against it. stopped makes Stop idempotent.
	alive   *atomic.Bool
	stopped *atomic.Bool

	// loopID holds the goroutine id of the running loop, zero otherwise.
	// Stop compares against it to skip joining from inside a handler.
	loopID *atomic.Int64

	runMu     sync.Mutex
	runCalled bool
	done      chan struct{}
}

// New creates a component that is not yet running. The two built-in
// handlers (timer expiration and deferred callback execution) are
// pre-registered before any user handler.
func New(opts ...Option) *Component {
	c := &Component{
		handlers: make(map[Type]Handler),
		logger:   log.DefaultLogger,
		alive:    atomic.NewBool(true),
		stopped:  atomic.NewBool(false),
		loopID:   atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.queue == nil {
		c.queue = newUnboundedQueue()
	}

	c.handlers[timeoutType] = func(msg Message) {
		if m, ok := msg.(*timeoutMessage); ok {
			m.execute()
		}
	}
	c.handlers[callbackType] = func(msg Message) {
		if m, ok := msg.(*callbackMessage); ok {
			m.execute()
		}
	}

	return c
}

// Name returns the component name. Defaults to the empty string.
func (c *Component) Name() string {
	c.nameMu.RLock()
	defer c.nameMu.RUnlock()
	return c.name
}

// SetName sets the component name.
func (c *Component) SetName(name string) {
	c.nameMu.Lock()
	c.name = name
	c.nameMu.Unlock()
}

// Logger returns the logger the component writes to.
func (c *Component) Logger() log.Logger {
	return c.logger
}

// Ref returns a weak, liveness-checked handle to the component.
func (c *Component) Ref() Ref {
	return Ref{comp: c}
}

// Run starts the message loop. In Async mode the loop runs on a new worker
// goroutine and Run returns immediately; in Sync mode the loop occupies the
// calling goroutine until the component is stopped.
//
// onEntry runs on the loop goroutine before any message is processed, after
// the component has been bound to the active-component registry, so that
// goroutine-affine setup (including starting timers) can happen there.
// onExit runs on the loop goroutine once the queue has been closed and
// drained. Both hooks are skipped when the component was stopped before the
// loop ever entered. Run may be called at most once.
func (c *Component) Run(mode RunMode, onEntry, onExit func()) {
	c.runMu.Lock()
	if c.runCalled {
		c.runMu.Unlock()
		c.logger.Warnf("component=%s is already running", c.Name())
		return
	}
	c.runCalled = true
	if mode == Async {
		c.done = make(chan struct{})
	}
	c.runMu.Unlock()

	if mode == Async {
		go c.messageLoop(onEntry, onExit)
		return
	}
	c.messageLoop(onEntry, onExit)
}

// Stop terminates the component: it closes the queue so the loop unblocks
// and drains, shuts down the timer manager if one was created, and waits
// for the worker goroutine to exit unless Stop is being called from the
// loop goroutine itself, in which case the wait is skipped to avoid
// self-deadlock. Stop is idempotent.
func (c *Component) Stop() {
	if !c.stopped.CompareAndSwap(false, true) {
		return
	}

	c.alive.Store(false)
	c.queue.Close()

	c.timersMu.Lock()
	timers := c.timers
	c.timers = nil
	c.timersMu.Unlock()

	if timers != nil {
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		timers.Shutdown(ctx)
		cancel()
	}

	c.runMu.Lock()
	done := c.done
	c.runMu.Unlock()

	if done != nil && goid.Get() != c.loopID.Load() {
		<-done
	}
}

// PostMessage enqueues a message for the component's loop. Posting is
// fire-and-forget: every failure (closed queue, full bounded queue, nil
// message) is logged and swallowed, and the producer is never blocked.
func (c *Component) PostMessage(msg Message) {
	if msg == nil {
		c.logger.Error("rejecting nil message")
		return
	}
	if err := c.queue.Push(msg); err != nil {
		c.logger.Errorf("failed to enqueue message type=%s on component=%s: %v", msg.Type(), c.Name(), err)
	}
}

// PostCallback injects a closure into the component's serialized execution
// stream. The closure runs on the loop goroutine, in FIFO order with every
// other message.
func (c *Component) PostCallback(fn func()) {
	if fn == nil {
		c.logger.Error("rejecting nil callback")
		return
	}
	c.PostMessage(&callbackMessage{fn: fn})
}

// RegisterMessageHandler binds a handler to a message type. The last
// registration for a given type wins. A nil handler is a no-op. Safe to
// call from any goroutine at any time before the component stops.
func (c *Component) RegisterMessageHandler(msgType Type, handler Handler) {
	if handler == nil {
		return
	}
	c.handlersMu.Lock()
	c.handlers[msgType] = handler
	c.handlersMu.Unlock()
}

// TimerManager returns the component's timer manager, creating and starting
// it on first use. Returns nil once the component has been stopped.
func (c *Component) TimerManager() *TimerManager {
	c.timersMu.Lock()
	defer c.timersMu.Unlock()
	if c.stopped.Load() {
		return nil
	}
	if c.timers == nil {
		c.timers = NewTimerManager(c.logger)
		c.timers.Start(context.Background())
	}
	return c.timers
}

// messageLoop is the single consumer of the component's queue. It binds the
// component to the active-component registry for the lifetime of the loop,
// dispatches each message to the handler registered for its type, and
// isolates handler failures so one misbehaving handler never halts the
// component.
func (c *Component) messageLoop(onEntry, onExit func()) {
	c.loopID.Store(goid.Get())
	bindActive(c.Ref())

	c.runMu.Lock()
	done := c.done
	c.runMu.Unlock()

	defer func() {
		unbindActive()
		c.loopID.Store(0)
		if done != nil {
			close(done)
		}
	}()

	// The entry-time resolution is the liveness gate for both hooks: a
	// component stopped before its loop entered skips them entirely.
	_, entered := c.Ref().Get()
	if entered && onEntry != nil {
		onEntry()
	}

	for {
		msg, ok := c.queue.Wait()
		if !ok {
			break
		}
		if msg == nil {
			c.logger.Error("dequeued a nil message")
			continue
		}

		c.handlersMu.RLock()
		handler := c.handlers[msg.Type()]
		c.handlersMu.RUnlock()

		if handler == nil {
			c.logger.Warnf("no handler registered for message type=%s on component=%s", msg.Type(), c.Name())
			continue
		}

		c.dispatch(msg, handler)
	}

	if entered && onExit != nil {
		onExit()
	}
}

// dispatch runs the handler outside the handler-table lock and contains
// any panic at the dispatch boundary.
func (c *Component) dispatch(msg Message, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("handler for message type=%s on component=%s panicked: %v", msg.Type(), c.Name(), r)
		}
	}()
	handler(msg)
}

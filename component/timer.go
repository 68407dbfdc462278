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
	"time"

	"github.com/stackmind/goactive/log"
)

// Timer bridges a TimerManager job to the component that was active when
// Start was called. An expiration never runs the user callback on the
// scheduler's goroutine: it wraps the callback in a timeout message and
// posts it onto the owning component's queue, so the callback executes on
// the loop goroutine like any other handler.
//
// Owner liveness is rechecked at the moment of firing, not at Start time.
// A timer whose owner has been stopped drops the firing silently and, when
// cyclic, cancels its own schedule since the owner can never receive
// future timeouts either.
type Timer struct {
	mu     sync.Mutex
	id     JobID
	cyclic bool
	mgr    *TimerManager
	logger log.Logger
}

// NewTimer creates an idle timer. The timer binds to a component's
// TimerManager on Start, which must be called from that component's loop
// goroutine.
func NewTimer() *Timer {
	return &Timer{
		id:     InvalidJobID,
		logger: log.DefaultLogger,
	}
}

// Start arms the timer: after duration the callback will be posted onto
// the queue of the component active on the calling goroutine. A nil
// callback, or a call from outside any component loop, is logged and
// ignored. A still-running timer is stopped before being re-armed.
func (t *Timer) Start(duration time.Duration, callback func()) {
	if callback == nil {
		t.logger.Error("timer requires a non-nil callback")
		return
	}

	mgr, err := ActiveTimerManager()
	if err != nil {
		t.logger.Errorf("timer could not resolve a timer manager: %v", err)
		return
	}

	owner := ActiveRef()
	if comp, ok := owner.Get(); ok {
		t.logger = comp.Logger()
	}

	t.mu.Lock()
	t.mgr = mgr
	if t.id != InvalidJobID && mgr.IsRunning(t.id) {
		t.logger.Info("timer is still running, stopping it first")
		mgr.Stop(t.id)
		t.id = InvalidJobID
	}
	cyclic := t.cyclic
	t.mu.Unlock()

	onExpire := func() {
		t.mu.Lock()
		id := t.id
		cyc := t.cyclic
		t.mu.Unlock()

		if comp, ok := owner.Get(); ok {
			comp.PostMessage(&timeoutMessage{jobID: id, callback: callback})
		} else {
			// Dead owner: the callback is never invoked for this firing,
			// and a cyclic schedule would only keep firing uselessly.
			if cyc {
				mgr.Stop(id)
			}
			t.invalidate()
		}
		if !cyc {
			t.invalidate()
		}
	}

	id, err := mgr.Schedule(duration, onExpire, cyclic)
	if err != nil {
		t.logger.Errorf("failed to start timer: %v", err)
		return
	}

	t.mu.Lock()
	t.id = id
	t.mu.Unlock()
	t.logger.Debugf("started timer with job id=%s", id)
}

// Restart re-arms the timer with its original duration.
func (t *Timer) Restart() {
	t.mu.Lock()
	mgr, id := t.mgr, t.id
	t.mu.Unlock()
	if mgr == nil {
		return
	}
	if err := mgr.Restart(id); err != nil {
		t.logger.Debugf("failed to restart timer job id=%s: %v", id, err)
	}
}

// Stop cancels the pending firing, if any.
func (t *Timer) Stop() {
	t.mu.Lock()
	mgr, id := t.mgr, t.id
	t.mu.Unlock()
	if mgr != nil {
		mgr.Stop(id)
	}
}

// Running reports whether the timer currently has a scheduled firing.
// A one-shot timer stops running at its single firing.
func (t *Timer) Running() bool {
	t.mu.Lock()
	mgr, id := t.mgr, t.id
	t.mu.Unlock()
	return mgr != nil && mgr.IsRunning(id)
}

// SetCyclic flips the timer between one-shot and repeating. A no-op when
// the requested value matches the current one; the bound manager is only
// updated when the timer has one.
func (t *Timer) SetCyclic(cyclic bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cyclic == t.cyclic {
		return
	}
	t.cyclic = cyclic
	if t.mgr != nil {
		if err := t.mgr.SetCyclic(t.id, cyclic); err != nil {
			t.logger.Debugf("failed to update cyclic flag for timer job id=%s: %v", t.id, err)
		}
	}
}

// Close stops the timer. It is the disposal hook: a timer must not outlive
// its last use without being stopped.
func (t *Timer) Close() {
	t.Stop()
}

func (t *Timer) invalidate() {
	t.mu.Lock()
	t.id = InvalidJobID
	t.mu.Unlock()
}

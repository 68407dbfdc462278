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

	"github.com/petermattis/goid"

	gerrors "github.com/stackmind/goactive/errors"
)

// activeComponents maps a goroutine id onto the weak handle of the component
// whose message loop currently occupies that goroutine. Entries are bound at
// loop entry and removed at loop exit, so code running inside a handler can
// cheaply address its own component without parameter threading.
var activeComponents sync.Map // int64 -> Ref

// bindActive records ref as the active component of the calling goroutine.
func bindActive(ref Ref) {
	activeComponents.Store(goid.Get(), ref)
}

// unbindActive clears the calling goroutine's registry slot.
func unbindActive() {
	activeComponents.Delete(goid.Get())
}

// Active returns the live component whose loop is running on the calling
// goroutine. The boolean is false when the calling goroutine is not a
// component loop, or when that component has already been stopped.
func Active() (*Component, bool) {
	return ActiveRef().Get()
}

// ActiveRef returns a weak handle to the component bound to the calling
// goroutine. The zero Ref is returned when no loop occupies the goroutine.
func ActiveRef() Ref {
	value, ok := activeComponents.Load(goid.Get())
	if !ok {
		return Ref{}
	}
	return value.(Ref)
}

// ActiveTimerManager resolves the calling goroutine's component and returns
// its TimerManager, creating the manager on first use.
func ActiveTimerManager() (*TimerManager, error) {
	comp, ok := Active()
	if !ok {
		return nil, gerrors.ErrNoActiveComponent
	}
	timers := comp.TimerManager()
	if timers == nil {
		return nil, gerrors.ErrDead
	}
	return timers, nil
}

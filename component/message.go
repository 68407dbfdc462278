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

// Type is the stable, comparable tag a message is dispatched on. Handlers
// are registered per Type; the last registration for a given Type wins.
type Type string

// Message is the unit of work exchanged with a component. Messages must be
// treated as immutable once posted: the queue owns them until the owning
// component's loop dispatches them to a handler.
type Message interface {
	// Type returns the dispatch tag of the message.
	Type() Type
}

// Built-in message tags. Handlers for these are pre-registered at component
// construction and carry behavior rather than data.
const (
	timeoutType  Type = "goactive.timeout"
	callbackType Type = "goactive.callback"
)

// timeoutMessage is posted by a Timer expiration onto the owning component's
// queue. The user callback never runs on the timer subsystem's goroutine; it
// runs when this message is dispatched on the loop goroutine.
type timeoutMessage struct {
	jobID    JobID
	callback func()
}

func (*timeoutMessage) Type() Type { return timeoutType }

func (m *timeoutMessage) execute() {
	if m.callback != nil {
		m.callback()
	}
}

// callbackMessage injects an arbitrary closure into a component's serialized
// execution stream. See Component.PostCallback.
type callbackMessage struct {
	fn func()
}

func (*callbackMessage) Type() Type { return callbackType }

func (m *callbackMessage) execute() {
	if m.fn != nil {
		m.fn()
	}
}

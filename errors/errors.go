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

// Package errors defines the sentinel errors shared across the runtime.
package errors

import "errors"

var (
	// ErrQueueClosed is returned when pushing a message onto a queue that has
	// already been closed. Posting is best-effort, so callers log and move on.
	ErrQueueClosed = errors.New("message queue is closed")

	// ErrQueueFull is returned by a bounded queue when it is at capacity.
	// The message is dropped; the producer is never blocked.
	ErrQueueFull = errors.New("message queue is full")

	// ErrNilMessage is returned when a nil message is pushed onto a queue.
	ErrNilMessage = errors.New("message is nil")

	// ErrDead indicates that the component is no longer alive.
	ErrDead = errors.New("component is not alive")

	// ErrNoActiveComponent is returned when ambient component resolution is
	// attempted from a goroutine that is not running a component's loop.
	ErrNoActiveComponent = errors.New("no component is active on the calling goroutine")

	// ErrTimersNotStarted is returned when scheduling against a timer manager
	// whose underlying scheduler has not started.
	ErrTimersNotStarted = errors.New("timer manager has not started")

	// ErrInvalidCallback is returned when a nil callback is supplied.
	ErrInvalidCallback = errors.New("callback must not be nil")

	// ErrJobNotFound is returned for an unknown or expired timer job id.
	ErrJobNotFound = errors.New("timer job not found")

	// ErrInvalidAddress indicates an address failed validation.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrConnectionNotInitialized is returned when a sender is used before
	// InitConnection succeeded.
	ErrConnectionNotInitialized = errors.New("connection has not been initialized")

	// ErrReceiverUnavailable indicates the remote receiver cannot be reached.
	ErrReceiverUnavailable = errors.New("receiver is unavailable")

	// ErrFrameTooLarge indicates a transport frame exceeded the configured
	// maximum size.
	ErrFrameTooLarge = errors.New("frame exceeds the maximum allowed size")
)

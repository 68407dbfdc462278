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

// Package tcptransport implements the transport contract over TCP with
// length-prefixed frames.
package tcptransport

import "time"

const (
	defaultDialTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultMaxFrameSize = 16 * 1024 * 1024
	defaultDialRetries  = 3
	defaultRetryDelay   = 100 * time.Millisecond
)

// Config holds the TCP transport settings. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// DialTimeout bounds a single connection attempt.
	DialTimeout time.Duration
	// WriteTimeout bounds a single frame write.
	WriteTimeout time.Duration
	// MaxFrameSize is the largest payload accepted in either direction.
	MaxFrameSize uint32
	// DialRetries is how many times InitConnection retries a failed dial.
	DialRetries int
	// RetryDelay is the initial backoff between dial retries.
	RetryDelay time.Duration
}

// DefaultConfig returns the settings used when none are provided.
func DefaultConfig() Config {
	return Config{
		DialTimeout:  defaultDialTimeout,
		WriteTimeout: defaultWriteTimeout,
		MaxFrameSize: defaultMaxFrameSize,
		DialRetries:  defaultDialRetries,
		RetryDelay:   defaultRetryDelay,
	}
}

// sanitize fills missing fields with defaults.
func (c Config) sanitize() Config {
	defaults := DefaultConfig()
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaults.DialTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.MaxFrameSize == 0 {
		c.MaxFrameSize = defaults.MaxFrameSize
	}
	if c.DialRetries <= 0 {
		c.DialRetries = defaults.DialRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	return c
}

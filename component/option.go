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

import "github.com/stackmind/goactive/log"

// Option configures a Component at construction time.
type Option func(*Component)

// WithName sets the component name.
func WithName(name string) Option {
	return func(c *Component) {
		c.name = name
	}
}

// WithLogger sets the logger the component and its timer manager write to.
func WithLogger(logger log.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBoundedQueue replaces the default unbounded queue with a
// fixed-capacity one. When the bound is reached, posts are dropped and
// logged rather than blocking the producer. Non-positive capacities are
// ignored.
func WithBoundedQueue(capacity int) Option {
	return func(c *Component) {
		if capacity > 0 {
			c.queue = newBoundedQueue(capacity)
		}
	}
}

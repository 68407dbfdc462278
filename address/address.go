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

// Package address provides the canonical representation for addressing
// components across process boundaries.
//
// An address identifies a single component endpoint and is made of:
//
//   - System: logical name of the hosting runtime
//   - Host/Port: where the endpoint is reachable
//   - Name: name of the component within the runtime
//   - ID: unique, opaque identifier of the endpoint instance (UUIDv4)
//
// The canonical textual representation is:
//
//	goactive://<system>@<host>:<port>/<name>
package address

import (
	"fmt"
	"net"
	"strconv"

	"github.com/google/uuid"

	gerrors "github.com/stackmind/goactive/errors"
)

// scheme defines the addressing scheme
const scheme = "goactive"

// Address identifies a component endpoint reachable through a transport.
// Addresses are immutable after construction.
type Address struct {
	system string
	host   string
	port   int
	name   string
	id     string
}

// nosender is the sentinel for "no sender". Its zero fields are treated as
// valid so it can travel inside message envelopes.
var nosender = &Address{}

// New creates an address with a fresh instance id.
func New(system, name, host string, port int) *Address {
	return &Address{
		system: system,
		host:   host,
		port:   port,
		name:   name,
		id:     uuid.NewString(),
	}
}

// NoSender returns the sentinel address used when there is no sender.
func NoSender() *Address {
	return nosender
}

// System returns the logical runtime name.
func (a *Address) System() string { return a.system }

// Host returns the host part of the address.
func (a *Address) Host() string { return a.host }

// Port returns the port part of the address.
func (a *Address) Port() int { return a.port }

// Name returns the component name.
func (a *Address) Name() string { return a.name }

// ID returns the unique endpoint instance id.
func (a *Address) ID() string { return a.id }

// HostPort returns the joined host:port suitable for dialing.
func (a *Address) HostPort() string {
	return net.JoinHostPort(a.host, strconv.Itoa(a.port))
}

// String returns the canonical textual representation.
func (a *Address) String() string {
	return fmt.Sprintf("%s://%s@%s:%d/%s", scheme, a.system, a.host, a.port, a.name)
}

// Equals reports whether two addresses designate the same endpoint
// instance.
func (a *Address) Equals(other *Address) bool {
	if other == nil {
		return false
	}
	if a == nosender && other == nosender {
		return true
	}
	return a.system == other.system &&
		a.host == other.host &&
		a.port == other.port &&
		a.name == other.name &&
		a.id == other.id
}

// Validate checks the address parts. The no-sender sentinel is valid.
func (a *Address) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: address is nil", gerrors.ErrInvalidAddress)
	}
	if a.Equals(nosender) {
		return nil
	}
	if a.system == "" {
		return fmt.Errorf("%w: system is required", gerrors.ErrInvalidAddress)
	}
	if a.name == "" {
		return fmt.Errorf("%w: name is required", gerrors.ErrInvalidAddress)
	}
	if a.host == "" {
		return fmt.Errorf("%w: host is required", gerrors.ErrInvalidAddress)
	}
	if a.port <= 0 || a.port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", gerrors.ErrInvalidAddress, a.port)
	}
	return nil
}

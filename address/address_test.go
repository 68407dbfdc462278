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

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/stackmind/goactive/errors"
)

func TestAddress_String(t *testing.T) {
	addr := New("payments", "ledger", "127.0.0.1", 9000)
	assert.Equal(t, "goactive://payments@127.0.0.1:9000/ledger", addr.String())
	assert.Equal(t, "127.0.0.1:9000", addr.HostPort())
	assert.NotEmpty(t, addr.ID())
}

func TestAddress_Equals(t *testing.T) {
	addr := New("payments", "ledger", "127.0.0.1", 9000)
	other := New("payments", "ledger", "127.0.0.1", 9000)

	assert.True(t, addr.Equals(addr))
	// same endpoint coordinates, distinct instance ids
	assert.False(t, addr.Equals(other))
	assert.False(t, addr.Equals(nil))
	assert.True(t, NoSender().Equals(NoSender()))
}

func TestAddress_Validate(t *testing.T) {
	require.NoError(t, New("payments", "ledger", "127.0.0.1", 9000).Validate())
	require.NoError(t, NoSender().Validate())

	testCases := []struct {
		name string
		addr *Address
	}{
		{name: "missing system", addr: New("", "ledger", "127.0.0.1", 9000)},
		{name: "missing name", addr: New("payments", "", "127.0.0.1", 9000)},
		{name: "missing host", addr: New("payments", "ledger", "", 9000)},
		{name: "port too low", addr: New("payments", "ledger", "127.0.0.1", 0)},
		{name: "port too high", addr: New("payments", "ledger", "127.0.0.1", 70000)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.ErrorIs(t, testCase.addr.Validate(), gerrors.ErrInvalidAddress)
		})
	}
}

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

package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackmind/goactive/address"
	"github.com/stackmind/goactive/component"
	"github.com/stackmind/goactive/log"
)

func TestInmem_Roundtrip(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	addr := address.New("test", "echo", "127.0.0.1", 7001)

	received := make(chan []byte, 1)
	receiver := hub.NewReceiver(addr, func(payload []byte) {
		received <- payload
	})
	require.NoError(t, receiver.Start())
	defer func() { require.NoError(t, receiver.Stop()) }()

	sender := hub.NewSender()
	require.NoError(t, sender.InitConnection(addr))
	assert.True(t, addr.Equals(sender.ReceiverAddress()))
	assert.Equal(t, ReceiverAvailable, sender.CheckReceiverStatus())

	status := sender.Send([]byte("ping"), nil)
	require.Equal(t, SendOK, status)

	select {
	case payload := <-received:
		assert.Equal(t, []byte("ping"), payload)
	case <-time.After(time.Second):
		t.Fatal("payload was not delivered")
	}
}

func TestInmem_ReceiverUnavailable(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	addr := address.New("test", "ghost", "127.0.0.1", 7002)

	sender := hub.NewSender()
	require.NoError(t, sender.InitConnection(addr))
	assert.Equal(t, ReceiverUnavailable, sender.CheckReceiverStatus())
	assert.Equal(t, SendReceiverUnavailable, sender.Send([]byte("ping"), nil))
}

func TestInmem_StoppedReceiverIsUnavailable(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	addr := address.New("test", "gone", "127.0.0.1", 7003)

	receiver := hub.NewReceiver(addr, func([]byte) {})
	require.NoError(t, receiver.Start())
	require.NoError(t, receiver.Stop())

	sender := hub.NewSender()
	require.NoError(t, sender.InitConnection(addr))
	assert.Equal(t, ReceiverUnavailable, sender.CheckReceiverStatus())
	assert.Equal(t, SendReceiverUnavailable, sender.Send([]byte("ping"), nil))
}

func TestInmem_DuplicateRegistration(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	addr := address.New("test", "dup", "127.0.0.1", 7004)

	first := hub.NewReceiver(addr, func([]byte) {})
	require.NoError(t, first.Start())
	defer func() { _ = first.Stop() }()

	second := hub.NewReceiver(address.New("test", "dup2", "127.0.0.1", 7004), func([]byte) {})
	assert.Error(t, second.Start())
}

func TestInmem_SendWithoutInit(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	sender := hub.NewSender()
	assert.Equal(t, SendFailed, sender.Send([]byte("ping"), nil))
	assert.Equal(t, ReceiverUnavailable, sender.CheckReceiverStatus())
}

func TestDeliverTo_PostsOntoComponentQueue(t *testing.T) {
	hub := NewHub(log.DiscardLogger)
	addr := address.New("test", "sink", "127.0.0.1", 7005)

	comp := component.New(component.WithLogger(log.DiscardLogger))
	defer comp.Stop()

	received := make(chan []byte, 1)
	comp.RegisterMessageHandler(BytesMessageType, func(msg component.Message) {
		received <- msg.(*BytesMessage).Payload
	})
	comp.Run(component.Async, nil, nil)

	receiver := hub.NewReceiver(addr, DeliverTo(comp))
	require.NoError(t, receiver.Start())
	defer func() { _ = receiver.Stop() }()

	sender := hub.NewSender()
	require.NoError(t, sender.InitConnection(addr))
	require.Equal(t, SendOK, sender.Send([]byte("framed"), nil))

	select {
	case payload := <-received:
		assert.Equal(t, []byte("framed"), payload)
	case <-time.After(2 * time.Second):
		t.Fatal("payload did not reach the component handler")
	}
}

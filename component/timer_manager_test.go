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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	gerrors "github.com/stackmind/goactive/errors"
	"github.com/stackmind/goactive/log"
)

func newStartedTimerManager(t *testing.T) *TimerManager {
	t.Helper()
	tm := NewTimerManager(log.DiscardLogger)
	tm.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tm.Shutdown(ctx)
	})
	return tm
}

func TestTimerManager_OneShot(t *testing.T) {
	tm := newStartedTimerManager(t)

	fired := make(chan struct{})
	id, err := tm.Schedule(30*time.Millisecond, func() { close(fired) }, false)
	require.NoError(t, err)
	require.NotEqual(t, InvalidJobID, id)
	assert.True(t, tm.IsRunning(id))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot job did not fire")
	}

	assert.Eventually(t, func() bool {
		return !tm.IsRunning(id)
	}, time.Second, 10*time.Millisecond)
}

func TestTimerManager_Cyclic(t *testing.T) {
	tm := newStartedTimerManager(t)

	count := atomic.NewInt32(0)
	id, err := tm.Schedule(20*time.Millisecond, func() { count.Inc() }, true)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return count.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, tm.IsRunning(id))

	tm.Stop(id)
	assert.False(t, tm.IsRunning(id))

	settled := count.Load()
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), settled+1, "a stopped cyclic job must not keep firing")
}

func TestTimerManager_StopUnknownJobIsHarmless(t *testing.T) {
	tm := newStartedTimerManager(t)
	tm.Stop("no-such-job")
	tm.Stop(InvalidJobID)
}

func TestTimerManager_Restart(t *testing.T) {
	tm := newStartedTimerManager(t)

	count := atomic.NewInt32(0)
	id, err := tm.Schedule(200*time.Millisecond, func() { count.Inc() }, false)
	require.NoError(t, err)

	require.NoError(t, tm.Restart(id))
	assert.True(t, tm.IsRunning(id))

	assert.Eventually(t, func() bool {
		return count.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, tm.Restart("no-such-job"), gerrors.ErrJobNotFound)
}

func TestTimerManager_SetCyclic(t *testing.T) {
	tm := newStartedTimerManager(t)

	count := atomic.NewInt32(0)
	id, err := tm.Schedule(30*time.Millisecond, func() { count.Inc() }, false)
	require.NoError(t, err)

	require.NoError(t, tm.SetCyclic(id, true))
	// same value again is a no-op
	require.NoError(t, tm.SetCyclic(id, true))

	assert.Eventually(t, func() bool {
		return count.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "job must repeat after becoming cyclic")

	tm.Stop(id)
	assert.ErrorIs(t, tm.SetCyclic("no-such-job", true), gerrors.ErrJobNotFound)
}

func TestTimerManager_ScheduleValidation(t *testing.T) {
	tm := NewTimerManager(log.DiscardLogger)

	// not started yet
	id, err := tm.Schedule(time.Millisecond, func() {}, false)
	assert.ErrorIs(t, err, gerrors.ErrTimersNotStarted)
	assert.Equal(t, InvalidJobID, id)

	tm.Start(context.Background())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tm.Shutdown(ctx)
	}()

	id, err = tm.Schedule(time.Millisecond, nil, false)
	assert.ErrorIs(t, err, gerrors.ErrInvalidCallback)
	assert.Equal(t, InvalidJobID, id)
}

func TestTimerManager_ShutdownCancelsJobs(t *testing.T) {
	tm := NewTimerManager(log.DiscardLogger)
	tm.Start(context.Background())

	fired := atomic.NewBool(false)
	_, err := tm.Schedule(150*time.Millisecond, func() { fired.Store(true) }, false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	tm.Shutdown(ctx)

	time.Sleep(300 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestTimerManager_IsRunningInvalidID(t *testing.T) {
	tm := newStartedTimerManager(t)
	assert.False(t, tm.IsRunning(InvalidJobID))
}

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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	gerrors "github.com/stackmind/goactive/errors"
	"github.com/stackmind/goactive/log"
)

// JobID identifies a scheduled timer job. The zero value is InvalidJobID.
type JobID string

// InvalidJobID is the sentinel for "no job scheduled".
const InvalidJobID JobID = ""

// timerJob is the manager's bookkeeping for one scheduled job: enough to
// re-create the quartz trigger on restart or when the cyclic flag changes.
type timerJob struct {
	key      *quartz.JobKey
	duration time.Duration
	cyclic   bool
	callback func()
}

// TimerManager schedules delayed and repeating jobs on behalf of exactly
// one owning component. Callbacks fire on the scheduler's own goroutines,
// never on any component loop; it is the Timer handle's job to re-deliver
// expirations onto the owning component's queue.
//
// The manager is handed out as a shared reference: a Timer may keep using
// it after the originating TimerManager() call, and the manager stays
// functional until its owning component shuts it down.
type TimerManager struct {
	mu        sync.Mutex
	scheduler quartz.Scheduler
	started   *atomic.Bool
	jobs      map[JobID]*timerJob
	logger    log.Logger
}

// NewTimerManager creates a timer manager backed by a quartz scheduler
// with quartz's own logging turned off.
func NewTimerManager(logger log.Logger) *TimerManager {
	scheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &TimerManager{
		scheduler: scheduler,
		started:   atomic.NewBool(false),
		jobs:      make(map[JobID]*timerJob),
		logger:    logger,
	}
}

// Start starts the underlying scheduler.
func (tm *TimerManager) Start(ctx context.Context) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.scheduler.Start(ctx)
	tm.started.Store(tm.scheduler.IsStarted())
}

// Shutdown cancels every scheduled job and stops the scheduler, waiting up
// to the context deadline for in-flight jobs to finish.
func (tm *TimerManager) Shutdown(ctx context.Context) {
	if !tm.started.Load() {
		return
	}
	tm.mu.Lock()
	tm.jobs = make(map[JobID]*timerJob)
	_ = tm.scheduler.Clear()
	tm.scheduler.Stop()
	tm.started.Store(tm.scheduler.IsStarted())
	tm.mu.Unlock()

	tm.scheduler.Wait(ctx)
}

// Schedule registers callback to fire after duration, repeatedly when
// cyclic is true, and returns the opaque id of the new job.
func (tm *TimerManager) Schedule(duration time.Duration, callback func(), cyclic bool) (JobID, error) {
	if callback == nil {
		return InvalidJobID, gerrors.ErrInvalidCallback
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.started.Load() {
		return InvalidJobID, gerrors.ErrTimersNotStarted
	}

	id := JobID(uuid.NewString())
	scheduled := &timerJob{
		key:      quartz.NewJobKey(string(id)),
		duration: duration,
		cyclic:   cyclic,
		callback: callback,
	}
	if err := tm.schedule(id, scheduled); err != nil {
		return InvalidJobID, err
	}
	tm.jobs[id] = scheduled
	return id, nil
}

// Stop cancels the job with the given id. Unknown ids are ignored, which
// makes stopping an already expired one-shot job harmless.
func (tm *TimerManager) Stop(id JobID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	scheduled, ok := tm.jobs[id]
	if !ok {
		return
	}
	delete(tm.jobs, id)
	if err := tm.scheduler.DeleteJob(scheduled.key); err != nil {
		tm.logger.Debugf("failed to delete timer job id=%s: %v", id, err)
	}
}

// Restart cancels the job's pending trigger and re-arms it with its
// original duration.
func (tm *TimerManager) Restart(id JobID) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	scheduled, ok := tm.jobs[id]
	if !ok {
		return gerrors.ErrJobNotFound
	}
	if err := tm.scheduler.DeleteJob(scheduled.key); err != nil {
		tm.logger.Debugf("failed to delete timer job id=%s: %v", id, err)
	}
	return tm.schedule(id, scheduled)
}

// IsRunning reports whether the job with the given id is still scheduled.
// A one-shot job stops running once its single firing has been handed to
// the scheduler's worker.
func (tm *TimerManager) IsRunning(id JobID) bool {
	if id == InvalidJobID {
		return false
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	_, ok := tm.jobs[id]
	return ok
}

// SetCyclic flips the job between one-shot and repeating. The job is
// rescheduled with a fresh trigger, which restarts its delay.
func (tm *TimerManager) SetCyclic(id JobID, cyclic bool) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	scheduled, ok := tm.jobs[id]
	if !ok {
		return gerrors.ErrJobNotFound
	}
	if scheduled.cyclic == cyclic {
		return nil
	}
	scheduled.cyclic = cyclic
	if err := tm.scheduler.DeleteJob(scheduled.key); err != nil {
		tm.logger.Debugf("failed to delete timer job id=%s: %v", id, err)
	}
	return tm.schedule(id, scheduled)
}

// schedule submits the job to quartz. Callers must hold tm.mu.
func (tm *TimerManager) schedule(id JobID, scheduled *timerJob) error {
	functionJob := job.NewFunctionJob[bool](func(context.Context) (bool, error) {
		tm.mu.Lock()
		current, active := tm.jobs[id]
		cyclic := active && current.cyclic
		// A one-shot job's lifecycle ends at its single firing.
		if active && !cyclic {
			delete(tm.jobs, id)
		}
		tm.mu.Unlock()

		// Stale firing of a job stopped between trigger and execution.
		if !active || current != scheduled {
			return false, nil
		}

		scheduled.callback()
		return true, nil
	})

	detail := quartz.NewJobDetail(functionJob, scheduled.key)
	var trigger quartz.Trigger
	if scheduled.cyclic {
		trigger = quartz.NewSimpleTrigger(scheduled.duration)
	} else {
		trigger = quartz.NewRunOnceTrigger(scheduled.duration)
	}
	return tm.scheduler.ScheduleJob(detail, trigger)
}

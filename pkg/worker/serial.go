package worker

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrQueueClosed = errors.New("queue is closed")
	ErrQueueFull   = errors.New("queue is full")
)

// Serial runs submitted jobs one at a time, in submission order, on a
// single goroutine. It is the serialization point for all game-state
// access: two submitted jobs can never interleave, so a job may sleep
// (turn pacing, bot thinking) while later submissions simply wait in
// the queue.
type Serial struct {
	jobs    chan func()
	done    chan struct{}
	once    sync.Once
	stopped sync.WaitGroup
	pending atomic.Int32
}

// NewSerial creates a queue with the given buffer size and starts its
// goroutine
func NewSerial(size int) *Serial {
	if size <= 0 {
		size = 64
	}

	s := &Serial{
		jobs: make(chan func(), size),
		done: make(chan struct{}),
	}

	s.stopped.Add(1)
	go s.run()

	return s
}

// Do submits a job. It never blocks: a full queue rejects the job with
// ErrQueueFull rather than stalling the caller.
func (s *Serial) Do(job func()) error {
	if job == nil {
		return nil
	}

	select {
	case <-s.done:
		return ErrQueueClosed
	default:
	}

	select {
	case s.jobs <- job:
		s.pending.Add(1)
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Serial) run() {
	defer s.stopped.Done()

	for {
		select {
		case <-s.done:
			return
		case job := <-s.jobs:
			job()
			s.pending.Add(-1)
		}
	}
}

// Done is closed once the queue shuts down. Close drops jobs still
// buffered, so a caller waiting on a submitted job's result must
// select on Done or it can wait forever.
func (s *Serial) Done() <-chan struct{} {
	return s.done
}

// Pending returns the number of jobs submitted but not yet finished
func (s *Serial) Pending() int {
	return int(s.pending.Load())
}

// Close stops the queue. Jobs still buffered are dropped; the running
// job finishes first.
func (s *Serial) Close() {
	s.once.Do(func() {
		close(s.done)
	})
	s.stopped.Wait()
}

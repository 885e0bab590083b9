package scheduler

import (
	"container/heap"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Job struct {
	Name    string
	NextRun time.Time
	RunFunc func() error

	seq uint64
}

// Scheduler runs jobs one at a time, in NextRun order, on its own goroutine.
// Everything it runs can therefore share state that is not goroutine safe,
// such as a Lua state.
type Scheduler struct {
	mu     sync.Mutex
	jobs   JobHeap
	wake   chan struct{}
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger
	added  uint64
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Scheduler{
		jobs:   make(JobHeap, 0),
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: logger,
	}
	heap.Init(&s.jobs)
	go s.run()
	return s
}

func (s *Scheduler) Add(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added++
	job.seq = s.added
	heap.Push(&s.jobs, job)

	select {
	case s.wake <- struct{}{}:
	default:
	} // wake the loop upon jobs updating
}

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(name string, d time.Duration, fn func() error) {
	s.Add(&Job{Name: name, NextRun: time.Now().Add(d), RunFunc: fn})
}

// Flush blocks until every job due now has run. It returns false if the
// scheduler stopped first.
func (s *Scheduler) Flush() bool {
	ran := make(chan struct{})
	s.After("flush", 0, func() error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
		return true
	case <-s.done:
		return false
	}
}

// Len is the number of jobs still waiting to run.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *Scheduler) run() {
	defer close(s.done)

	for {
		s.mu.Lock()
		if len(s.jobs) == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.quit:
				return
			}
		}

		next := s.jobs[0]
		wait := time.Until(next.NextRun)
		s.mu.Unlock()

		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-s.wake:
				timer.Stop()
				continue
			case <-s.quit:
				timer.Stop()
				return
			}
		}

		s.mu.Lock()
		next = heap.Pop(&s.jobs).(*Job)
		s.mu.Unlock()

		if err := next.RunFunc(); err != nil {
			s.logger.Warn("scheduled job failed", zap.String("job", next.Name), zap.Error(err))
		}
	}
}

// Stop ends the loop once the running job returns. Pending jobs are dropped.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}

package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"taskmanager/pkg/logger"
)

type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	GetJob(id string) (*JobInfo, bool)
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*jobEntry
	mu        sync.RWMutex
	running   bool
}

type jobEntry struct {
	cronExpr string
	job      *gocron.Job
	lastRun  *time.Time
}

// NewEventScheduler builds a scheduler in singleton mode: a tick that
// fires while the previous run is still going is skipped rather than
// overlapped.
func NewEventScheduler(location *time.Location) EventScheduler {
	if location == nil {
		location = time.Local
	}

	s := gocron.NewScheduler(location)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*jobEntry),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Event scheduler started")
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Info("Event scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		now := time.Now()
		logger.Info("Executing scheduled job", "job_id", id, "at", now.Format(time.RFC3339))

		s.mu.Lock()
		if entry, ok := s.jobs[id]; ok {
			entry.lastRun = &now
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %v", id, err)
	}

	s.jobs[id] = &jobEntry{cronExpr: cronExpr, job: job}

	nextRun := job.NextRun()
	logger.Info("Job registered", "job_id", id, "cron", cronExpr, "next_run", nextRun.Format(time.RFC3339))
	return nil
}

func (s *GocronScheduler) GetJob(id string) (*JobInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.jobs[id]
	if !ok {
		return nil, false
	}

	info := &JobInfo{
		ID:       id,
		CronExpr: entry.cronExpr,
	}
	if entry.lastRun != nil {
		lastRun := *entry.lastRun
		info.LastRun = &lastRun
	}
	if entry.job != nil {
		nextRun := entry.job.NextRun()
		info.NextRun = &nextRun
	}

	return info, true
}

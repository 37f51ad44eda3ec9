// Package jobs manages audit job lifecycle for the web UI: create, execute
// in the background, track progress and logs, ingest results into the
// violation store.
package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/afuentes/centinela/internal/gemini"
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/google/uuid"
)

// newJobID generates job identifiers. Extracted as a variable for testing.
var newJobID = uuid.NewString

// Auditor runs one expert audit. Implemented by *gemini.Gateway.
type Auditor interface {
	Scan(ctx context.Context, req gemini.ScanRequest, obs gemini.Observer) (*types.ScanResult, error)
}

// Manager manages audit job lifecycle: create, execute, track, store results.
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*Job
	auditor Auditor
	store   *store.Store
}

// NewManager creates a job manager backed by the given auditor and
// violation store.
func NewManager(auditor Auditor, violations *store.Store) *Manager {
	return &Manager{
		jobs:    make(map[string]*Job),
		auditor: auditor,
		store:   violations,
	}
}

// Create creates a new pending audit job for the given content.
func (m *Manager) Create(label string, modes []string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &Job{
		ID:        newJobID(),
		Label:     label,
		Modes:     modes,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	m.jobs[job.ID] = job
	return job
}

// Start launches the audit in a background goroutine. Once started, the run
// is not cancellable; it completes or fails on its own.
func (m *Manager) Start(jobID, content string) error {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("job %q not found", jobID)
	}
	job.Status = StatusRunning
	job.StartedAt = time.Now()
	m.mu.Unlock()

	go m.execute(job, content)
	return nil
}

func (m *Manager) execute(job *Job, content string) {
	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			job.Status = StatusFailed
			job.Error = fmt.Sprintf("panic: %v", r)
			job.CompletedAt = time.Now()
			m.mu.Unlock()
		}
	}()

	obs := &jobObserver{manager: m, job: job}
	req := gemini.ScanRequest{Content: content, Label: job.Label, Modes: job.Modes}

	result, err := m.auditor.Scan(context.Background(), req, obs)

	m.mu.Lock()
	defer m.mu.Unlock()

	job.CompletedAt = time.Now()
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		return
	}

	job.Status = StatusCompleted
	job.Result = result
	m.store.IngestScanResult(result, time.Now())
}

// jobObserver funnels gateway progress and log events into the job record.
type jobObserver struct {
	manager *Manager
	job     *Job
}

func (o *jobObserver) Progress(pct int) {
	o.manager.mu.Lock()
	defer o.manager.mu.Unlock()
	if pct > o.job.Progress {
		o.job.Progress = pct
	}
}

func (o *jobObserver) Log(line string) {
	o.manager.mu.Lock()
	defer o.manager.mu.Unlock()
	o.job.Logs = append(o.job.Logs, line)
}

// Get returns a job by ID.
func (m *Manager) Get(jobID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %q not found", jobID)
	}
	return job, nil
}

// Snapshot returns a copy of the job safe to serialize while the job is
// still being mutated by its background goroutine.
func (m *Manager) Snapshot(jobID string) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return Job{}, fmt.Errorf("job %q not found", jobID)
	}

	snap := *job
	snap.Logs = append([]string(nil), job.Logs...)
	snap.Modes = append([]string(nil), job.Modes...)
	return snap, nil
}

// List returns all jobs sorted by CreatedAt descending.
func (m *Manager) List() []Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		snap := *j
		snap.Logs = append([]string(nil), j.Logs...)
		result = append(result, snap)
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result
}

// Delete removes a job from the manager.
func (m *Manager) Delete(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[jobID]; !ok {
		return fmt.Errorf("job %q not found", jobID)
	}
	delete(m.jobs, jobID)
	return nil
}

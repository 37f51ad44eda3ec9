package jobs

import (
	"time"

	"github.com/afuentes/centinela/pkg/types"
)

// JobStatus represents the current state of an audit job.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job represents an async audit run. Progress and Logs are appended while the
// job runs; Result is set once on completion and never mutated after.
type Job struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Modes       []string          `json:"modes,omitempty"`
	Status      JobStatus         `json:"status"`
	Progress    int               `json:"progress"`
	Logs        []string          `json:"logs,omitempty"`
	Result      *types.ScanResult `json:"result,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	StartedAt   time.Time         `json:"started_at,omitempty"`
	CompletedAt time.Time         `json:"completed_at,omitempty"`
}

// FindingCount returns the number of findings in the job result.
func (j Job) FindingCount() int {
	if j.Result == nil {
		return 0
	}
	return len(j.Result.Findings)
}

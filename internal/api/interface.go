package api

import "context"

// Service defines the interface for job-management service operations.
type Service interface {
	Login(ctx context.Context, employeeID, password string) (*Technician, error)
	TechnicianJobs(ctx context.Context, technicianID string) ([]*Job, error)
	AllJobs(ctx context.Context) ([]*Job, error)
	UpdateJobStatus(ctx context.Context, jobID, status string) error
	FinalizeJob(ctx context.Context, jobID string, amountCollected float64) error
	ChangePassword(ctx context.Context, employeeID, oldPassword, newPassword string) error
}

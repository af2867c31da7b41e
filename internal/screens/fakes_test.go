package screens

import (
	"context"
	"io"

	"github.com/sounicbehera/madina-technician-app/internal/api"
)

// scriptedUI feeds queued answers to prompts and records everything shown.
type scriptedUI struct {
	inputs []string
	shown  []string
	alerts []string
}

func (u *scriptedUI) Show(lines ...string) {
	u.shown = append(u.shown, lines...)
}

func (u *scriptedUI) Prompt(label string) (string, error) {
	if len(u.inputs) == 0 {
		return "", io.EOF
	}
	next := u.inputs[0]
	u.inputs = u.inputs[1:]
	return next, nil
}

func (u *scriptedUI) Alert(message string) {
	u.alerts = append(u.alerts, message)
}

// recordingService implements api.Service with configurable responses and a
// record of every mutating call.
type recordingService struct {
	technician *api.Technician
	jobs       []*api.Job

	loginErr    error
	jobsErr     error
	updateErr   error
	finalizeErr error
	passwordErr error

	statusUpdates   []statusUpdate
	finalizations   []finalization
	passwordChanges int
}

type statusUpdate struct {
	jobID  string
	status string
}

type finalization struct {
	jobID  string
	amount float64
}

func (s *recordingService) Login(ctx context.Context, employeeID, password string) (*api.Technician, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.technician, nil
}

func (s *recordingService) TechnicianJobs(ctx context.Context, technicianID string) ([]*api.Job, error) {
	if s.jobsErr != nil {
		return nil, s.jobsErr
	}
	return s.jobs, nil
}

func (s *recordingService) AllJobs(ctx context.Context) ([]*api.Job, error) {
	if s.jobsErr != nil {
		return nil, s.jobsErr
	}
	return s.jobs, nil
}

func (s *recordingService) UpdateJobStatus(ctx context.Context, jobID, status string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.statusUpdates = append(s.statusUpdates, statusUpdate{jobID: jobID, status: status})
	return nil
}

func (s *recordingService) FinalizeJob(ctx context.Context, jobID string, amountCollected float64) error {
	if s.finalizeErr != nil {
		return s.finalizeErr
	}
	s.finalizations = append(s.finalizations, finalization{jobID: jobID, amount: amountCollected})
	return nil
}

func (s *recordingService) ChangePassword(ctx context.Context, employeeID, oldPassword, newPassword string) error {
	if s.passwordErr != nil {
		return s.passwordErr
	}
	s.passwordChanges++
	return nil
}

// recordingOpener captures external URL handoffs.
type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(rawURL string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, rawURL)
	return nil
}

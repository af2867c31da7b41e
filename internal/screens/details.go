package screens

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/extlink"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// JobDetailsScreen shows a single job and lets the technician update its
// status, call the customer, open directions or move on to payment.
type JobDetailsScreen struct {
	ui      ui.UI
	service api.Service
	opener  extlink.Opener
	jobID   string

	job *api.Job
}

// NewJobDetailsScreen creates a details screen for one job id.
func NewJobDetailsScreen(term ui.UI, service api.Service, opener extlink.Opener, jobID string) *JobDetailsScreen {
	return &JobDetailsScreen{ui: term, service: service, opener: opener, jobID: jobID}
}

// Fetch loads the job. The server has no single-enquiry endpoint, so the full
// collection is fetched and scanned for the id.
func (s *JobDetailsScreen) Fetch(ctx context.Context) (*api.Job, error) {
	jobs, err := s.service.AllJobs(ctx)
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if job.ID == s.jobID {
			return job, nil
		}
	}
	return nil, nil
}

// UpdateStatus issues the status-only partial update.
func (s *JobDetailsScreen) UpdateStatus(ctx context.Context, status string) error {
	return s.service.UpdateJobStatus(ctx, s.jobID, status)
}

// Run fetches the job and handles one menu choice.
func (s *JobDetailsScreen) Run(ctx context.Context) Route {
	s.ui.Show("", "=== Job Details ===", "Loading job...")

	job, err := s.Fetch(ctx)
	if err != nil {
		s.ui.Alert("Could not load the job. Please try again.")
		return Route{Kind: RouteBack}
	}
	if job == nil {
		s.ui.Alert("This job is no longer available.")
		return Route{Kind: RouteBack}
	}
	s.job = job

	s.ui.Show(
		fmt.Sprintf("Customer : %s", job.CustomerName),
		fmt.Sprintf("Service  : %s", job.ServiceType),
		fmt.Sprintf("Status   : %s", job.Status),
		fmt.Sprintf("Phone    : %s", job.Phone),
		fmt.Sprintf("Address  : %s", job.Address),
	)
	if job.Landmark != "" {
		s.ui.Show(fmt.Sprintf("Landmark : %s", job.Landmark))
	}

	choice, err := s.ui.Prompt("Action: 1 on the way, 2 working, 3 reschedule, 4 cancel, c call, d directions, p collect payment, b back")
	if err != nil {
		return Route{Kind: RouteQuit}
	}

	switch choice {
	case "1":
		return s.applyStatus(ctx, api.StatusOnTheWay)
	case "2":
		return s.applyStatus(ctx, api.StatusWorking)
	case "3":
		return s.applyStatus(ctx, api.StatusRescheduled)
	case "4":
		return s.applyStatus(ctx, api.StatusCancelled)
	case "c":
		s.openExternal(extlink.DialURL(job.Phone))
		return Route{Kind: RouteStay}
	case "d":
		s.openExternal(extlink.DirectionsURL(job.Latitude, job.Longitude, job.Address))
		return Route{Kind: RouteStay}
	case "p":
		return Route{Kind: RoutePayment, JobID: s.jobID}
	case "b", "":
		return Route{Kind: RouteBack}
	default:
		return Route{Kind: RouteStay}
	}
}

// applyStatus pushes the new status to the server. Success confirms and
// returns to the job list; failure keeps the user here with nothing mutated
// locally.
func (s *JobDetailsScreen) applyStatus(ctx context.Context, status string) Route {
	if err := s.UpdateStatus(ctx, status); err != nil {
		s.ui.Alert("Could not update the job status. Please try again.")
		return Route{Kind: RouteStay}
	}
	s.ui.Alert(fmt.Sprintf("Status updated to %q.", status))
	return Route{Kind: RouteBack}
}

// openExternal is a fire-and-forget handoff to the platform.
func (s *JobDetailsScreen) openExternal(url string) {
	if err := s.opener.Open(url); err != nil {
		slog.Warn("External link handoff failed", "url", url, "error", err)
	}
}

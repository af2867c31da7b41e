package screens

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// DashboardScreen lists the technician's active jobs. It re-fetches on every
// visit and keeps the previously displayed list when a fetch fails.
type DashboardScreen struct {
	ui      ui.UI
	service api.Service
	authCtx *auth.Context

	jobs []*api.Job
}

// NewDashboardScreen creates the dashboard.
func NewDashboardScreen(term ui.UI, service api.Service, authCtx *auth.Context) *DashboardScreen {
	return &DashboardScreen{ui: term, service: service, authCtx: authCtx}
}

// ActiveJobs filters a fetched list down to the jobs shown on the dashboard.
func ActiveJobs(jobs []*api.Job) []*api.Job {
	var active []*api.Job
	for _, job := range jobs {
		if job.IsActive() {
			active = append(active, job)
		}
	}
	return active
}

// Jobs returns the currently displayed list.
func (s *DashboardScreen) Jobs() []*api.Job {
	return s.jobs
}

// Refresh re-fetches the technician's job list. On error the previous list is
// left displayed unchanged and the error is reported to the caller.
func (s *DashboardScreen) Refresh(ctx context.Context) error {
	tech := s.authCtx.Session()
	if tech == nil {
		return fmt.Errorf("no active session")
	}

	fetched, err := s.service.TechnicianJobs(ctx, tech.ID)
	if err != nil {
		return err
	}
	s.jobs = ActiveJobs(fetched)
	return nil
}

// Run fetches and renders the job list, then handles one menu choice.
func (s *DashboardScreen) Run(ctx context.Context) Route {
	s.ui.Show("", "=== My Jobs ===", "Loading jobs...")

	if err := s.Refresh(ctx); err != nil {
		s.ui.Alert("Could not load jobs. Please try again.")
	}

	if len(s.jobs) == 0 {
		s.ui.Show("No active jobs assigned to you right now.")
	} else {
		for i, job := range s.jobs {
			s.ui.Show(fmt.Sprintf("%d. %s - %s [%s]", i+1, job.CustomerName, job.ServiceType, job.Status))
		}
	}

	choice, err := s.ui.Prompt("Open job # (r refresh, p profile, q quit)")
	if err != nil {
		return Route{Kind: RouteQuit}
	}

	switch choice {
	case "r", "":
		return Route{Kind: RouteStay}
	case "p":
		return Route{Kind: RouteProfile}
	case "q":
		return Route{Kind: RouteQuit}
	}

	index, convErr := strconv.Atoi(choice)
	if convErr != nil || index < 1 || index > len(s.jobs) {
		s.ui.Alert("Please pick a job number from the list.")
		return Route{Kind: RouteStay}
	}
	return Route{Kind: RouteJobDetails, JobID: s.jobs[index-1].ID}
}

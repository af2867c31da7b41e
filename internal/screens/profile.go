package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// ProfileScreen shows the logged-in technician and manages credentials.
type ProfileScreen struct {
	ui      ui.UI
	service api.Service
	authCtx *auth.Context
}

// NewProfileScreen creates the profile screen.
func NewProfileScreen(term ui.UI, service api.Service, authCtx *auth.Context) *ProfileScreen {
	return &ProfileScreen{ui: term, service: service, authCtx: authCtx}
}

// ChangePassword requires both fields before any network call. A successful
// change forces re-authentication by logging out.
func (s *ProfileScreen) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("both current and new password are required")
	}

	tech := s.authCtx.Session()
	if tech == nil {
		return fmt.Errorf("no active session")
	}

	if err := s.service.ChangePassword(ctx, tech.EmployeeID, oldPassword, newPassword); err != nil {
		var serverErr *api.ServerError
		if errors.As(err, &serverErr) && serverErr.Message != "" {
			return errors.New(serverErr.Message)
		}
		return fmt.Errorf("could not change the password, please try again")
	}

	s.authCtx.Logout()
	return nil
}

// Run renders the profile (no fetch; the data lives in the auth context) and
// handles one menu choice.
func (s *ProfileScreen) Run(ctx context.Context) Route {
	tech := s.authCtx.Session()
	if tech == nil {
		return Route{Kind: RouteBack}
	}

	s.ui.Show(
		"",
		"=== Profile ===",
		fmt.Sprintf("Name        : %s", tech.Name),
		fmt.Sprintf("Employee ID : %s", tech.EmployeeID),
	)

	choice, err := s.ui.Prompt("Action: c change password, l logout, b back")
	if err != nil {
		return Route{Kind: RouteQuit}
	}

	switch choice {
	case "c":
		oldPassword, err := s.ui.Prompt("Current password")
		if err != nil {
			return Route{Kind: RouteQuit}
		}
		newPassword, err := s.ui.Prompt("New password")
		if err != nil {
			return Route{Kind: RouteQuit}
		}

		if err := s.ChangePassword(ctx, oldPassword, newPassword); err != nil {
			s.ui.Alert(err.Error())
			return Route{Kind: RouteStay}
		}
		s.ui.Alert("Password changed. Please log in again.")
		return Route{Kind: RouteRoot}
	case "l":
		s.authCtx.Logout()
		return Route{Kind: RouteRoot}
	case "b", "":
		return Route{Kind: RouteBack}
	default:
		return Route{Kind: RouteStay}
	}
}

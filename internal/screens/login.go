package screens

import (
	"context"

	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// LoginScreen collects credentials and delegates to the auth context.
type LoginScreen struct {
	ui      ui.UI
	authCtx *auth.Context
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(term ui.UI, authCtx *auth.Context) *LoginScreen {
	return &LoginScreen{ui: term, authCtx: authCtx}
}

// Run prompts for credentials and attempts a login. A failed attempt leaves
// the user on the login screen; the navigator notices a new session through
// the auth context.
func (s *LoginScreen) Run(ctx context.Context) Route {
	s.ui.Show("", "=== Madina Services - Technician Login ===")

	employeeID, err := s.ui.Prompt("Employee ID")
	if err != nil {
		return Route{Kind: RouteQuit}
	}
	password, err := s.ui.Prompt("Password")
	if err != nil {
		return Route{Kind: RouteQuit}
	}

	if employeeID == "" || password == "" {
		s.ui.Alert("Please enter both employee ID and password.")
		return Route{Kind: RouteStay}
	}

	if err := s.authCtx.Login(ctx, employeeID, password); err != nil {
		s.ui.Alert(err.Error())
		return Route{Kind: RouteStay}
	}

	return Route{Kind: RouteDashboard}
}

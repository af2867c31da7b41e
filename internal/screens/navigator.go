// Package screens contains the interactive screen controllers and the
// navigation stack that sequences them.
package screens

import (
	"context"
	"net/http"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/extlink"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// RouteKind identifies the navigation outcome of a screen run.
type RouteKind int

const (
	// RouteStay re-runs the current screen.
	RouteStay RouteKind = iota
	// RouteDashboard resets the stack to the dashboard.
	RouteDashboard
	// RouteJobDetails pushes the details screen for Route.JobID.
	RouteJobDetails
	// RoutePayment pushes the payment screen for Route.JobID.
	RoutePayment
	// RouteProfile pushes the profile screen.
	RouteProfile
	// RouteBack pops one screen.
	RouteBack
	// RouteRoot pops everything above the dashboard.
	RouteRoot
	// RouteQuit exits the application.
	RouteQuit
)

// Route is a navigation request returned by a screen.
type Route struct {
	Kind  RouteKind
	JobID string
}

// Navigator renders the login screen while unauthenticated and the job stack
// rooted at the dashboard once a session exists.
type Navigator struct {
	ui      ui.UI
	authCtx *auth.Context
	service api.Service
	opener  extlink.Opener
	qrURL   string
	qrHTTP  *http.Client

	login     *LoginScreen
	dashboard *DashboardScreen
	profile   *ProfileScreen
}

// NewNavigator wires the screen stack.
func NewNavigator(term ui.UI, authCtx *auth.Context, service api.Service, opener extlink.Opener, qrURL string) *Navigator {
	return &Navigator{
		ui:        term,
		authCtx:   authCtx,
		service:   service,
		opener:    opener,
		qrURL:     qrURL,
		qrHTTP:    http.DefaultClient,
		login:     NewLoginScreen(term, authCtx),
		dashboard: NewDashboardScreen(term, service, authCtx),
		profile:   NewProfileScreen(term, service, authCtx),
	}
}

// Run drives the screen loop until the user quits. The auth context must have
// completed its initial load before Run is called.
func (n *Navigator) Run(ctx context.Context) {
	for {
		if n.authCtx.Session() == nil {
			route := n.login.Run(ctx)
			if route.Kind == RouteQuit {
				return
			}
			continue
		}

		if n.runAuthenticated(ctx) {
			return
		}
	}
}

// screenRunner is one entry on the navigation stack. Screens keep their local
// state between runs while they remain on the stack.
type screenRunner interface {
	Run(ctx context.Context) Route
}

// runAuthenticated drives the job stack. It returns true when the user quit,
// false when the session ended and the login screen should take over.
func (n *Navigator) runAuthenticated(ctx context.Context) bool {
	stack := []screenRunner{n.dashboard}

	for len(stack) > 0 {
		if n.authCtx.Session() == nil {
			return false
		}

		next := stack[len(stack)-1].Run(ctx)

		switch next.Kind {
		case RouteStay:
			// re-run the same screen
		case RouteBack:
			stack = stack[:len(stack)-1]
		case RouteRoot, RouteDashboard:
			stack = stack[:1]
		case RouteQuit:
			return true
		case RouteJobDetails:
			stack = append(stack, NewJobDetailsScreen(n.ui, n.service, n.opener, next.JobID))
		case RoutePayment:
			payment := NewPaymentScreen(n.ui, n.service, n.opener, n.qrURL, next.JobID)
			payment.SetHTTPClient(n.qrHTTP)
			stack = append(stack, payment)
		case RouteProfile:
			stack = append(stack, n.profile)
		}
	}
	return false
}

// Package auth holds the process-wide authentication state shared by every
// screen.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/session"
)

// ErrLoginFailed is the generic fallback when the server gives no message.
var ErrLoginFailed = errors.New("Unable to log in. Please check your credentials and try again.")

// Context owns the current session. It starts loading and becomes ready after
// the one-time store load at process start; screens are gated on Ready.
type Context struct {
	service api.Service
	store   session.Store

	mu      sync.RWMutex
	tech    *api.Technician
	loading bool
}

// NewContext creates an auth context in the loading state.
func NewContext(service api.Service, store session.Store) *Context {
	return &Context{
		service: service,
		store:   store,
		loading: true,
	}
}

// Init restores the persisted session. Called exactly once, before any screen
// runs. A malformed or absent record simply leaves the context unauthenticated.
func (c *Context) Init() {
	tech, err := c.store.Load()
	if err != nil {
		slog.Warn("Failed to load persisted session", "error", err)
		tech = nil
	}

	c.mu.Lock()
	c.tech = tech
	c.loading = false
	c.mu.Unlock()

	if tech != nil {
		slog.Info("Restored session", "employee_id", tech.EmployeeID)
	}
}

// Ready reports whether the initial session load has completed.
func (c *Context) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loading
}

// Session returns the current session, or nil when logged out.
func (c *Context) Session() *api.Technician {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tech
}

// Login authenticates against the remote service. On success the session is
// persisted and swapped in. On failure the state is left untouched and the
// returned error carries the server's message, or a generic fallback, suitable
// for direct display.
func (c *Context) Login(ctx context.Context, employeeID, password string) error {
	tech, err := c.service.Login(ctx, employeeID, password)
	if err != nil {
		slog.Warn("Login failed", "employee_id", employeeID, "error", err)
		var serverErr *api.ServerError
		if errors.As(err, &serverErr) && serverErr.Message != "" {
			return errors.New(serverErr.Message)
		}
		return ErrLoginFailed
	}

	if err := c.store.Save(tech); err != nil {
		slog.Warn("Failed to persist session", "error", err)
	}

	c.mu.Lock()
	c.tech = tech
	c.mu.Unlock()

	slog.Info("Logged in", "employee_id", tech.EmployeeID, "name", tech.Name)
	return nil
}

// Logout resets the session. The durable clear is best-effort: the in-memory
// state is dropped even when the file removal fails.
func (c *Context) Logout() {
	if err := c.store.Clear(); err != nil {
		slog.Warn("Failed to clear persisted session", "error", err)
	}

	c.mu.Lock()
	c.tech = nil
	c.loading = false
	c.mu.Unlock()

	slog.Info("Logged out")
}

package devserver

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/screens"
	"github.com/sounicbehera/madina-technician-app/internal/session"
)

func startServer(t *testing.T) (*httptest.Server, *Store, *Technician) {
	t.Helper()
	store := NewStore()
	tech, err := Seed(store)
	require.NoError(t, err)

	router := mux.NewRouter()
	NewHTTPHandler(store).RegisterRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store, tech
}

func TestEndToEnd_LoginAndDashboard(t *testing.T) {
	server, _, _ := startServer(t)

	client := api.NewClient(server.URL, 5*time.Second)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	authCtx := auth.NewContext(client, store)
	authCtx.Init()

	ctx := context.Background()

	// Wrong password: alert path, nothing persisted
	err := authCtx.Login(ctx, "2389045", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid employee ID or password", err.Error())
	persisted, _ := store.Load()
	assert.Nil(t, persisted)

	// Valid credentials: session persisted, dashboard reachable
	require.NoError(t, authCtx.Login(ctx, "2389045", "technician"))
	persisted, _ = store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, "2389045", persisted.EmployeeID)

	jobs, err := client.TechnicianJobs(ctx, authCtx.Session().ID)
	require.NoError(t, err)
	require.Len(t, jobs, 3, "seeded enquiries for the technician")

	active := screens.ActiveJobs(jobs)
	assert.Len(t, active, 2, "completed enquiry filtered off the dashboard")
}

func TestEndToEnd_StatusUpdateAndPayment(t *testing.T) {
	server, store, tech := startServer(t)

	client := api.NewClient(server.URL, 5*time.Second)

	ctx := context.Background()
	enquiries := store.TechnicianEnquiries(tech.ID)
	require.NotEmpty(t, enquiries)
	target := enquiries[0]

	// Status-only partial update
	require.NoError(t, client.UpdateJobStatus(ctx, target.ID, api.StatusWorking))
	assert.Equal(t, api.StatusWorking, target.Status, "store holds the updated status")
	assert.Nil(t, target.AmountCollected, "status update carries no amount")

	jobs, err := client.AllJobs(ctx)
	require.NoError(t, err)
	var found *api.Job
	for _, job := range jobs {
		if job.ID == target.ID {
			found = job
		}
	}
	require.NotNil(t, found, "single-job lookup scans the full collection")

	// Finalize with payment
	require.NoError(t, client.FinalizeJob(ctx, target.ID, 250.5))

	final := store.TechnicianEnquiries(tech.ID)
	for _, enquiry := range final {
		if enquiry.ID != target.ID {
			continue
		}
		assert.Equal(t, api.StatusCompleted, enquiry.Status)
		require.NotNil(t, enquiry.AmountCollected)
		assert.Equal(t, 250.5, *enquiry.AmountCollected)
	}
}

func TestEndToEnd_ChangePasswordForcesRelogin(t *testing.T) {
	server, _, _ := startServer(t)

	client := api.NewClient(server.URL, 5*time.Second)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	authCtx := auth.NewContext(client, store)
	authCtx.Init()

	ctx := context.Background()
	require.NoError(t, authCtx.Login(ctx, "2389045", "technician"))

	profile := screens.NewProfileScreen(nullUI{}, client, authCtx)
	require.NoError(t, profile.ChangePassword(ctx, "technician", "rotated"))

	assert.Nil(t, authCtx.Session(), "successful change logs out")
	persisted, _ := store.Load()
	assert.Nil(t, persisted)

	// Old credential rejected, new one accepted
	require.Error(t, authCtx.Login(ctx, "2389045", "technician"))
	require.NoError(t, authCtx.Login(ctx, "2389045", "rotated"))
}

// nullUI satisfies ui.UI for flows that never prompt.
type nullUI struct{}

func (nullUI) Show(lines ...string)                {}
func (nullUI) Prompt(label string) (string, error) { return "", nil }
func (nullUI) Alert(message string)                {}

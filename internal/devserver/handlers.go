package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sounicbehera/madina-technician-app/internal/api"
)

// HTTPHandler serves the job-management API surface the client consumes.
type HTTPHandler struct {
	store *Store
}

// NewHTTPHandler creates a handler over the given store.
func NewHTTPHandler(store *Store) *HTTPHandler {
	return &HTTPHandler{store: store}
}

// RegisterRoutes sets up HTTP routes
func (h *HTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/technicians/login", h.Login).Methods("POST")
	router.HandleFunc("/technicians/change-password", h.ChangePassword).Methods("PATCH")
	router.HandleFunc("/enquiries", h.GetAllEnquiries).Methods("GET")
	router.HandleFunc("/enquiries/technician/{id}", h.GetTechnicianEnquiries).Methods("GET")
	router.HandleFunc("/enquiries/{id}/status", h.UpdateEnquiryStatus).Methods("PATCH")
}

// Health returns service health status
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Login authenticates a technician and returns the session record.
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EmployeeID == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Employee ID and password are required")
		return
	}

	tech, err := h.store.Authenticate(req.EmployeeID, req.Password)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid employee ID or password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]*api.Technician{
		"technician": {ID: tech.ID, EmployeeID: tech.EmployeeID, Name: tech.Name},
	})
}

// ChangePassword verifies the old credential and replaces it.
func (h *HTTPHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  string `json:"employeeId"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EmployeeID == "" || req.OldPassword == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	switch err := h.store.ChangePassword(req.EmployeeID, req.OldPassword, req.NewPassword); {
	case errors.Is(err, ErrTechnicianNotFound):
		writeMessage(w, http.StatusNotFound, "Technician not found")
	case errors.Is(err, ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Old password is incorrect")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Could not change password")
	default:
		writeMessage(w, http.StatusOK, "Password changed successfully")
	}
}

// GetAllEnquiries returns every enquiry.
func (h *HTTPHandler) GetAllEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries := h.store.AllEnquiries()
	if enquiries == nil {
		enquiries = []*Enquiry{}
	}
	writeJSON(w, http.StatusOK, enquiries)
}

// GetTechnicianEnquiries returns the enquiries assigned to a technician.
func (h *HTTPHandler) GetTechnicianEnquiries(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	enquiries := h.store.TechnicianEnquiries(vars["id"])
	if enquiries == nil {
		enquiries = []*Enquiry{}
	}
	writeJSON(w, http.StatusOK, enquiries)
}

// UpdateEnquiryStatus applies a partial update of the status field, with an
// optional collected amount.
func (h *HTTPHandler) UpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Status          string   `json:"status"`
		AmountCollected *float64 `json:"amountCollected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Status is required")
		return
	}

	enquiry, err := h.store.UpdateStatus(vars["id"], req.Status, req.AmountCollected)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Enquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, enquiry)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

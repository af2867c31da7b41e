// Package devserver is a local stand-in for the remote job-management API,
// used for development and end-to-end tests of the client.
package devserver

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sounicbehera/madina-technician-app/internal/api"
)

var (
	// ErrInvalidCredentials is returned when login credentials are rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTechnicianNotFound is returned when no technician matches.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrEnquiryNotFound is returned when no enquiry matches.
	ErrEnquiryNotFound = errors.New("enquiry not found")
)

// Technician is the server-side record, including the credential hash.
type Technician struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Enquiry is a job as the server stores it: the client-visible fields plus
// assignment and payment bookkeeping.
type Enquiry struct {
	api.Job
	TechnicianID    string   `json:"technicianId,omitempty"`
	AmountCollected *float64 `json:"amountCollected,omitempty"`
}

// Store keeps technicians and enquiries in memory.
type Store struct {
	mu          sync.RWMutex
	technicians map[string]*Technician // keyed by employee id
	enquiries   map[string]*Enquiry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		technicians: make(map[string]*Technician),
		enquiries:   make(map[string]*Enquiry),
	}
}

// AddTechnician registers a technician with a bcrypt-hashed password.
func (s *Store) AddTechnician(employeeID, name, password string) (*Technician, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tech := &Technician{
		ID:           uuid.New().String(),
		EmployeeID:   employeeID,
		Name:         name,
		PasswordHash: string(hash),
	}
	s.technicians[employeeID] = tech
	return tech, nil
}

// Authenticate verifies a technician's credentials.
func (s *Store) Authenticate(employeeID, password string) (*Technician, error) {
	s.mu.RLock()
	tech, exists := s.technicians[employeeID]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tech.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return tech, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (s *Store) ChangePassword(employeeID, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tech, exists := s.technicians[employeeID]
	if !exists {
		return ErrTechnicianNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tech.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	tech.PasswordHash = string(hash)
	return nil
}

// AddEnquiry stores an enquiry, assigning an id when absent.
func (s *Store) AddEnquiry(enquiry *Enquiry) *Enquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	if enquiry.Status == "" {
		enquiry.Status = api.StatusEnquired
	}
	s.enquiries[enquiry.ID] = enquiry
	return enquiry
}

// AllEnquiries returns every stored enquiry.
func (s *Store) AllEnquiries() []*Enquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Enquiry
	for _, enquiry := range s.enquiries {
		result = append(result, enquiry)
	}
	return result
}

// TechnicianEnquiries returns the enquiries assigned to a technician id.
func (s *Store) TechnicianEnquiries(technicianID string) []*Enquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Enquiry
	for _, enquiry := range s.enquiries {
		if enquiry.TechnicianID == technicianID {
			result = append(result, enquiry)
		}
	}
	return result
}

// UpdateStatus applies a partial status update and records the collected
// amount when present.
func (s *Store) UpdateStatus(enquiryID, status string, amountCollected *float64) (*Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enquiry, exists := s.enquiries[enquiryID]
	if !exists {
		return nil, ErrEnquiryNotFound
	}

	enquiry.Status = status
	if amountCollected != nil {
		enquiry.AmountCollected = amountCollected
	}
	return enquiry, nil
}

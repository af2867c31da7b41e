package api

// Job statuses used by the enquiry service. The client only ever compares
// these for equality; the server owns the label set.
const (
	StatusEnquired    = "Enquired"
	StatusOnTheWay    = "On the way"
	StatusWorking     = "Working"
	StatusRescheduled = "Rescheduled"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
)

// Technician identifies a logged-in technician. The same shape is persisted
// locally as the session record.
type Technician struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

// Job represents an enquiry from the job-management service. The client holds
// transient copies only; every screen re-fetches on focus.
type Job struct {
	ID           string   `json:"id"`
	CustomerName string   `json:"customerName"`
	ServiceType  string   `json:"serviceType"`
	Status       string   `json:"status"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Landmark     string   `json:"landmark,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// IsActive reports whether the job should appear on the dashboard. Completed,
// cancelled and rescheduled jobs are exempt.
func (j *Job) IsActive() bool {
	switch j.Status {
	case StatusCompleted, StatusCancelled, StatusRescheduled:
		return false
	}
	return true
}

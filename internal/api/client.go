package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client handles communication with the remote job-management service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new job-management service client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ServerError is a 4xx/5xx response carrying the server's message field.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Login authenticates a technician against the remote service.
func (c *Client) Login(ctx context.Context, employeeID, password string) (*Technician, error) {
	payload := struct {
		EmployeeID string `json:"employeeId"`
		Password   string `json:"password"`
	}{
		EmployeeID: employeeID,
		Password:   password,
	}

	var response struct {
		Technician Technician `json:"technician"`
	}
	if err := c.doJSON(ctx, "POST", "/technicians/login", payload, &response); err != nil {
		return nil, err
	}
	return &response.Technician, nil
}

// TechnicianJobs retrieves the jobs assigned to a specific technician.
func (c *Client) TechnicianJobs(ctx context.Context, technicianID string) ([]*Job, error) {
	var jobs []*Job
	path := fmt.Sprintf("/enquiries/technician/%s", technicianID)
	if err := c.doJSON(ctx, "GET", path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AllJobs retrieves every enquiry. There is no single-enquiry endpoint on the
// server, so callers locate individual jobs by scanning this list.
func (c *Client) AllJobs(ctx context.Context) ([]*Job, error) {
	var jobs []*Job
	if err := c.doJSON(ctx, "GET", "/enquiries", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJobStatus issues a partial update of a job's status field only.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{
		Status: status,
	}
	path := fmt.Sprintf("/enquiries/%s/status", jobID)
	return c.doJSON(ctx, "PATCH", path, payload, nil)
}

// FinalizeJob marks a job Completed together with the collected amount.
func (c *Client) FinalizeJob(ctx context.Context, jobID string, amountCollected float64) error {
	payload := struct {
		Status          string  `json:"status"`
		AmountCollected float64 `json:"amountCollected"`
	}{
		Status:          StatusCompleted,
		AmountCollected: amountCollected,
	}
	path := fmt.Sprintf("/enquiries/%s/status", jobID)
	return c.doJSON(ctx, "PATCH", path, payload, nil)
}

// ChangePassword updates a technician's credential on the server.
func (c *Client) ChangePassword(ctx context.Context, employeeID, oldPassword, newPassword string) error {
	payload := struct {
		EmployeeID  string `json:"employeeId"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}{
		EmployeeID:  employeeID,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}
	return c.doJSON(ctx, "PATCH", "/technicians/change-password", payload, nil)
}

// doJSON performs a request against the service and decodes the response into
// out when out is non-nil. Non-2xx responses become a *ServerError carrying
// the server's message field when one is present.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	url := c.baseURL + path
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := &ServerError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil {
			serverErr.Message = msg.Message
		}
		return serverErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

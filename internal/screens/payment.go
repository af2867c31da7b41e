package screens

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/extlink"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

// Payment methods offered on the payment screen. Only the QR display depends
// on the choice; the wire payload is the same either way.
const (
	MethodCash = "Cash"
	MethodUPI  = "UPI"
)

// PaymentScreen records the collected amount and finalizes the job. All local
// state survives a failed submission so the technician can retry.
type PaymentScreen struct {
	ui      ui.UI
	service api.Service
	opener  extlink.Opener
	qrURL   string
	jobID   string

	httpClient *http.Client

	amount string
	method string
}

// NewPaymentScreen creates a payment screen for one job.
func NewPaymentScreen(term ui.UI, service api.Service, opener extlink.Opener, qrURL, jobID string) *PaymentScreen {
	return &PaymentScreen{
		ui:         term,
		service:    service,
		opener:     opener,
		qrURL:      qrURL,
		jobID:      jobID,
		httpClient: http.DefaultClient,
		method:     MethodCash,
	}
}

// SetHTTPClient overrides the client used to fetch the QR image.
func (s *PaymentScreen) SetHTTPClient(client *http.Client) {
	if client != nil {
		s.httpClient = client
	}
}

// ParseAmount validates the free-text amount field. The value must parse to a
// positive finite number.
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is required")
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

// Finalize validates the amount and sends the completion update. No request is
// issued when validation fails.
func (s *PaymentScreen) Finalize(ctx context.Context) error {
	amount, err := ParseAmount(s.amount)
	if err != nil {
		return err
	}
	return s.service.FinalizeJob(ctx, s.jobID, amount)
}

// Run collects amount and method, shows the UPI QR when selected, and
// finalizes the job.
func (s *PaymentScreen) Run(ctx context.Context) Route {
	s.ui.Show("", "=== Collect Payment ===")

	amount, err := s.ui.Prompt(s.amountLabel())
	if err != nil {
		return Route{Kind: RouteQuit}
	}
	if amount != "" {
		s.amount = amount
	}

	method, err := s.ui.Prompt(fmt.Sprintf("Method: 1 Cash, 2 UPI (current %s)", s.method))
	if err != nil {
		return Route{Kind: RouteQuit}
	}
	switch method {
	case "1":
		s.method = MethodCash
	case "2":
		s.method = MethodUPI
	}

	if s.method == MethodUPI {
		s.showQR(ctx)
	}

	if _, err := ParseAmount(s.amount); err != nil {
		s.ui.Alert("Please enter a valid amount before finalizing.")
		return Route{Kind: RouteStay}
	}

	if err := s.Finalize(ctx); err != nil {
		s.ui.Alert("Could not record the payment. Please try again.")
		return Route{Kind: RouteStay}
	}

	s.ui.Alert("Payment recorded. Job marked Completed.")
	return Route{Kind: RouteRoot}
}

func (s *PaymentScreen) amountLabel() string {
	if s.amount != "" {
		return fmt.Sprintf("Amount collected (current %s)", s.amount)
	}
	return "Amount collected"
}

// showQR fetches the static UPI QR image and hands it to the platform viewer.
// The client never verifies that a payment actually happened.
func (s *PaymentScreen) showQR(ctx context.Context) {
	s.ui.Show("Ask the customer to scan the UPI QR code.")

	path, err := s.downloadQR(ctx)
	if err != nil {
		slog.Warn("Failed to fetch UPI QR image", "url", s.qrURL, "error", err)
		s.ui.Show("QR image unavailable; open it manually: " + s.qrURL)
		return
	}
	if err := s.opener.Open(path); err != nil {
		slog.Warn("Failed to open UPI QR image", "path", path, "error", err)
	}
}

func (s *PaymentScreen) downloadQR(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.qrURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("QR fetch returned status %d", resp.StatusCode)
	}

	file, err := os.CreateTemp("", "upi-qr-*.png")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}

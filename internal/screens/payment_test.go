package screens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"250.50", 250.5, true},
		{" 100 ", 100, true},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-50", 0, false},
	}

	for _, tc := range cases {
		amount, err := ParseAmount(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, amount, "input %q", tc.input)
		} else {
			assert.Error(t, err, "input %q", tc.input)
		}
	}
}

func TestPayment_FinalizeSendsCompletedWithAmount(t *testing.T) {
	service := &recordingService{}
	term := &scriptedUI{inputs: []string{"250.50", "1"}} // amount, Cash
	screen := NewPaymentScreen(term, service, &recordingOpener{}, "http://unused", "job-1")

	route := screen.Run(context.Background())

	assert.Equal(t, RouteRoot, route.Kind, "success returns to the root of the job stack")
	require.Len(t, service.finalizations, 1)
	assert.Equal(t, finalization{jobID: "job-1", amount: 250.5}, service.finalizations[0])
}

func TestPayment_InvalidAmountBlocksSubmission(t *testing.T) {
	for _, amount := range []string{"", "abc"} {
		service := &recordingService{}
		term := &scriptedUI{inputs: []string{amount, "1"}}
		screen := NewPaymentScreen(term, service, &recordingOpener{}, "http://unused", "job-1")

		route := screen.Run(context.Background())

		assert.Equal(t, RouteStay, route.Kind, "amount %q", amount)
		assert.Empty(t, service.finalizations, "no network call for amount %q", amount)
		require.Len(t, term.alerts, 1, "amount %q", amount)
	}
}

func TestPayment_FailureKeepsStateForRetry(t *testing.T) {
	service := &recordingService{finalizeErr: errors.New("server unavailable")}
	term := &scriptedUI{inputs: []string{"250.50", "1"}}
	screen := NewPaymentScreen(term, service, &recordingOpener{}, "http://unused", "job-1")

	route := screen.Run(context.Background())
	assert.Equal(t, RouteStay, route.Kind)
	require.Len(t, term.alerts, 1)

	// Retry without re-typing: empty inputs reuse the kept state
	service.finalizeErr = nil
	term.inputs = []string{"", ""}

	route = screen.Run(context.Background())
	assert.Equal(t, RouteRoot, route.Kind)
	require.Len(t, service.finalizations, 1)
	assert.Equal(t, 250.5, service.finalizations[0].amount)
}

func TestPayment_UPIShowsQRImage(t *testing.T) {
	qrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer qrServer.Close()

	service := &recordingService{}
	opener := &recordingOpener{}
	term := &scriptedUI{inputs: []string{"100", "2"}} // amount, UPI
	screen := NewPaymentScreen(term, service, opener, qrServer.URL, "job-1")

	route := screen.Run(context.Background())

	assert.Equal(t, RouteRoot, route.Kind)
	require.Len(t, opener.opened, 1, "QR image handed to the platform viewer")
	// Method only controls the QR display; the payload is unchanged
	require.Len(t, service.finalizations, 1)
	assert.Equal(t, 100.0, service.finalizations[0].amount)
}

func TestPayment_QRFetchFailureIsNonFatal(t *testing.T) {
	qrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer qrServer.Close()

	service := &recordingService{}
	term := &scriptedUI{inputs: []string{"100", "2"}}
	screen := NewPaymentScreen(term, service, &recordingOpener{}, qrServer.URL, "job-1")

	route := screen.Run(context.Background())

	assert.Equal(t, RouteRoot, route.Kind, "payment still finalizes without the QR image")
	require.Len(t, service.finalizations, 1)
}

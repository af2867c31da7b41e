// Package extlink hands URLs off to the operating system. The client never
// verifies the outcome; dialing and navigation belong to the platform.
package extlink

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener is the capability for opening an external URL.
type Opener interface {
	Open(rawURL string) error
}

// SystemOpener shells out to the platform URL handler.
type SystemOpener struct{}

// Open launches the platform handler for the URL without waiting on it.
func (SystemOpener) Open(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}

// DialURL builds a tel: URL for the given phone number.
func DialURL(phone string) string {
	return "tel:" + phone
}

// DirectionsURL builds a Google Maps directions URL. Coordinates win over the
// street address when both are present.
func DirectionsURL(latitude, longitude *float64, address string) string {
	if latitude != nil && longitude != nil {
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f", *latitude, *longitude)
	}
	return "https://www.google.com/maps/dir/?api=1&destination=" + url.QueryEscape(address)
}

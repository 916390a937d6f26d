// Package serial configures the diagnostic serial console.
// The real implementation configures a Linux tty device for raw 8N1
// operation at a fixed baud rate. The fake implementation allows testing
// without hardware.
package serial

import "fmt"

// DefaultBaud is the diagnostic console baud rate.
const DefaultBaud = 115200

// Config describes the diagnostic console.
type Config struct {
	// Device is the tty device path, e.g. /dev/serial0.
	Device string
	// Baud is the line rate. Must be one of the supported rates.
	Baud int
}

// Port is an open diagnostic console. The daemon holds it open for its
// lifetime; writing to it is optional.
type Port interface {
	// Write sends raw bytes out the console.
	Write(p []byte) (int, error)

	// Close releases the device.
	Close() error
}

// supportedBauds lists the line rates the console can be configured at.
var supportedBauds = []int{9600, 19200, 38400, 57600, 115200, 230400}

// ValidateBaud reports whether the given rate is configurable.
func ValidateBaud(baud int) error {
	for _, b := range supportedBauds {
		if b == baud {
			return nil
		}
	}
	return fmt.Errorf("unsupported baud rate %d (supported: %v)", baud, supportedBauds)
}

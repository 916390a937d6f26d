// Package led drives the status LED with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package led

// Driver drives a single digital output pin.
type Driver interface {
	// Set drives the pin HIGH (true) or LOW (false).
	Set(on bool) error

	// Close releases GPIO resources.
	Close() error
}

// DefaultPin is the status LED line offset.
const DefaultPin = 2

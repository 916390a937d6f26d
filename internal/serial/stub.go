//go:build !linux

package serial

import "errors"

// RealPort is not available on non-Linux platforms.
type RealPort struct{}

// Open returns an error on non-Linux platforms.
func Open(cfg Config) (*RealPort, error) {
	return nil, errors.New("serial: not supported on this platform (requires Linux)")
}

// Write is not implemented on non-Linux platforms.
func (p *RealPort) Write(b []byte) (int, error) {
	return 0, errors.New("serial: not supported")
}

// Close is not implemented on non-Linux platforms.
func (p *RealPort) Close() error {
	return nil
}

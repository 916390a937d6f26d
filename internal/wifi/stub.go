//go:build !linux

package wifi

import "errors"

// RealStation is not available on non-Linux platforms.
type RealStation struct{}

// NewRealStation returns an error on non-Linux platforms.
func NewRealStation(ifname string) (*RealStation, error) {
	return nil, errors.New("wifi: not supported on this platform (requires Linux nl80211)")
}

// Associate is not implemented on non-Linux platforms.
func (s *RealStation) Associate(creds Credentials) error {
	return errors.New("wifi: not supported")
}

// Status is not implemented on non-Linux platforms.
func (s *RealStation) Status() (Status, error) {
	return StatusDisconnected, errors.New("wifi: not supported")
}

// Close is not implemented on non-Linux platforms.
func (s *RealStation) Close() error {
	return nil
}

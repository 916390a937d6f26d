package wifi

import "errors"

// FakeStation is a test double that returns scripted association statuses.
type FakeStation struct {
	// Statuses contains scripted values returned by Status().
	// Each call consumes the next value.
	Statuses []Status

	// index tracks current position in Statuses
	index int

	// Associations records the credentials passed to Associate.
	Associations []Credentials

	// AssociateError, if set, will be returned by Associate()
	AssociateError error

	// StatusError, if set, will be returned by Status()
	StatusError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeStation creates a FakeStation with the given scripted statuses.
func NewFakeStation(statuses []Status) *FakeStation {
	return &FakeStation{Statuses: statuses}
}

// Associate records the credentials.
func (f *FakeStation) Associate(creds Credentials) error {
	if f.AssociateError != nil {
		return f.AssociateError
	}
	f.Associations = append(f.Associations, creds)
	return nil
}

// Status returns the next scripted status.
// If statuses are exhausted, returns the last status repeatedly.
func (f *FakeStation) Status() (Status, error) {
	if f.StatusError != nil {
		return StatusDisconnected, f.StatusError
	}

	if len(f.Statuses) == 0 {
		return StatusDisconnected, errors.New("no statuses configured")
	}

	s := f.Statuses[f.index]
	if f.index < len(f.Statuses)-1 {
		f.index++
	}
	return s, nil
}

// Close marks the station as closed.
func (f *FakeStation) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the station to the beginning of its script.
func (f *FakeStation) Reset() {
	f.index = 0
	f.Associations = nil
	f.Closed = false
}

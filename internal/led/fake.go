package led

// FakeDriver records every level driven on the pin for test assertions.
type FakeDriver struct {
	// History contains every level passed to Set, in order.
	History []bool

	// Current is the last level driven.
	Current bool

	// SetError, if set, will be returned by Set()
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeDriver creates a FakeDriver for testing.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{}
}

// Set records the level.
func (f *FakeDriver) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.History = append(f.History, on)
	f.Current = on
	return nil
}

// Close marks the driver as closed.
func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded levels.
func (f *FakeDriver) Reset() {
	f.History = nil
	f.Current = false
	f.Closed = false
	f.SetError = nil
}

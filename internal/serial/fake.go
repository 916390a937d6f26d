package serial

// FakePort records writes for test assertions.
type FakePort struct {
	// Written accumulates all bytes passed to Write.
	Written []byte

	// WriteError, if set, will be returned by Write()
	WriteError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakePort creates a FakePort for testing.
func NewFakePort() *FakePort {
	return &FakePort{}
}

// Write records the bytes.
func (f *FakePort) Write(p []byte) (int, error) {
	if f.WriteError != nil {
		return 0, f.WriteError
	}
	f.Written = append(f.Written, p...)
	return len(p), nil
}

// Close marks the port as closed.
func (f *FakePort) Close() error {
	f.Closed = true
	return nil
}

package wifi

import (
	"errors"
	"testing"
)

func TestFakeStationStatus(t *testing.T) {
	f := NewFakeStation([]Status{
		StatusDisconnected,
		StatusDisconnected,
		StatusConnected,
	})

	want := []Status{
		StatusDisconnected,
		StatusDisconnected,
		StatusConnected,
		StatusConnected, // script exhausted, last value repeats
	}
	for i, w := range want {
		got, err := f.Status()
		if err != nil {
			t.Fatalf("status %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("status %d: got %s, want %s", i, got, w)
		}
	}
}

func TestFakeStationNoStatuses(t *testing.T) {
	f := NewFakeStation(nil)

	_, err := f.Status()
	if err == nil {
		t.Error("expected error with no statuses")
	}
}

func TestFakeStationStatusError(t *testing.T) {
	f := NewFakeStation([]Status{StatusConnected})
	f.StatusError = errors.New("simulated error")

	s, err := f.Status()
	if err == nil {
		t.Error("expected error to be returned")
	}
	if s != StatusDisconnected {
		t.Errorf("expected DISCONNECTED on error, got %s", s)
	}
}

func TestFakeStationAssociate(t *testing.T) {
	f := NewFakeStation([]Status{StatusDisconnected})

	creds := Credentials{SSID: "home-net", PSK: "hunter2"}
	if err := f.Associate(creds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Associations) != 1 {
		t.Fatalf("expected 1 recorded association, got %d", len(f.Associations))
	}
	if f.Associations[0] != creds {
		t.Errorf("recorded credentials: got %+v, want %+v", f.Associations[0], creds)
	}
}

func TestFakeStationAssociateError(t *testing.T) {
	f := NewFakeStation(nil)
	f.AssociateError = errors.New("bad request")

	if err := f.Associate(Credentials{SSID: "x"}); err == nil {
		t.Error("expected error to be returned")
	}
	if len(f.Associations) != 0 {
		t.Error("failed associate should not be recorded")
	}
}

func TestFakeStationClose(t *testing.T) {
	f := NewFakeStation(nil)

	if f.Closed {
		t.Error("should not be closed initially")
	}
	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakeStationReset(t *testing.T) {
	f := NewFakeStation([]Status{StatusConnected, StatusDisconnected})

	f.Status()
	f.Associate(Credentials{SSID: "a"})
	f.Reset()

	s, _ := f.Status()
	if s != StatusConnected {
		t.Errorf("after reset: got %s, want CONNECTED", s)
	}
	if len(f.Associations) != 0 {
		t.Error("after reset: expected no recorded associations")
	}
}

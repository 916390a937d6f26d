package internal

import (
	"testing"
	"time"

	"github.com/sweeney/wifi-led/internal/led"
	"github.com/sweeney/wifi-led/internal/logic"
	"github.com/sweeney/wifi-led/internal/wifi"
)

// drive simulates the reflector loop: one status sample per step, synthetic
// clock advanced by each step's own delay. Returns the per-step delays.
func drive(t *testing.T, station *wifi.FakeStation, driver *led.FakeDriver, steps int) []time.Duration {
	t.Helper()

	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reflector := logic.NewReflector(200*time.Millisecond, time.Second, startTime)

	var delays []time.Duration
	now := startTime
	for i := 0; i < steps; i++ {
		st, err := station.Status()
		if err != nil {
			t.Fatalf("step %d: status error: %v", i, err)
		}

		out := reflector.Step(logic.Input{
			Connected: st == wifi.StatusConnected,
			Time:      now,
		})

		if err := driver.Set(out.LED); err != nil {
			t.Fatalf("step %d: led error: %v", i, err)
		}

		delays = append(delays, out.Next)
		now = now.Add(out.Next)
	}
	return delays
}

// TestIntegrationSearchThenConnect tests the complete flow from association
// polling to pin levels using fakes.
func TestIntegrationSearchThenConnect(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{
		wifi.StatusDisconnected, // t=0      -> HIGH
		wifi.StatusDisconnected, // t=200ms  -> LOW
		wifi.StatusDisconnected, // t=400ms  -> HIGH
		wifi.StatusDisconnected, // t=600ms  -> LOW
		wifi.StatusConnected,    // t=800ms  -> HIGH (transition)
		wifi.StatusConnected,    // t=1.8s   -> HIGH
		wifi.StatusConnected,    // t=2.8s   -> HIGH
	})
	driver := led.NewFakeDriver()

	delays := drive(t, station, driver, 7)

	wantLevels := []bool{true, false, true, false, true, true, true}
	for i, w := range wantLevels {
		if driver.History[i] != w {
			t.Errorf("level %d: got %v, want %v", i, driver.History[i], w)
		}
	}

	wantDelays := []time.Duration{
		200 * time.Millisecond, 200 * time.Millisecond,
		200 * time.Millisecond, 200 * time.Millisecond,
		time.Second, time.Second, time.Second,
	}
	for i, w := range wantDelays {
		if delays[i] != w {
			t.Errorf("delay %d: got %v, want %v", i, delays[i], w)
		}
	}
}

// TestIntegrationSolidHighIffConnected verifies the pin shows no low pulses
// exactly while the status reads connected.
func TestIntegrationSolidHighIffConnected(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{
		wifi.StatusConnected,
		wifi.StatusConnected,
		wifi.StatusConnected,
		wifi.StatusConnected,
	})
	driver := led.NewFakeDriver()

	drive(t, station, driver, 4)

	for i, level := range driver.History {
		if !level {
			t.Errorf("level %d: low pulse while connected", i)
		}
	}
}

// TestIntegrationNeverConnected verifies perpetual flashing: the failure UI
// for an association that never completes.
func TestIntegrationNeverConnected(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{wifi.StatusDisconnected})
	driver := led.NewFakeDriver()

	delays := drive(t, station, driver, 200)

	for i, d := range delays {
		if d != 200*time.Millisecond {
			t.Fatalf("delay %d: got %v, want 200ms", i, d)
		}
	}
	for i := 1; i < len(driver.History); i++ {
		if driver.History[i] == driver.History[i-1] {
			t.Fatalf("level %d: did not toggle", i)
		}
	}
}

// TestIntegrationFlap verifies the pin follows a flapping status with no
// debounce beyond the current step's own delay.
func TestIntegrationFlap(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{
		wifi.StatusConnected,
		wifi.StatusDisconnected,
		wifi.StatusConnected,
		wifi.StatusDisconnected,
	})
	driver := led.NewFakeDriver()

	delays := drive(t, station, driver, 4)

	// Each connected sample holds (1s); each searching sample flashes (200ms).
	wantDelays := []time.Duration{
		time.Second, 200 * time.Millisecond,
		time.Second, 200 * time.Millisecond,
	}
	for i, w := range wantDelays {
		if delays[i] != w {
			t.Errorf("delay %d: got %v, want %v", i, delays[i], w)
		}
	}
}

// TestIntegrationScenarioSequence covers the scripted sample sequence
// [DISCONNECTED, DISCONNECTED, CONNECTED, CONNECTED] with one step per
// sample: flash, flash, HIGH(hold), HIGH(hold).
func TestIntegrationScenarioSequence(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{
		wifi.StatusDisconnected,
		wifi.StatusDisconnected,
		wifi.StatusConnected,
		wifi.StatusConnected,
	})
	driver := led.NewFakeDriver()

	delays := drive(t, station, driver, 4)

	wantLevels := []bool{true, false, true, true}
	wantDelays := []time.Duration{
		200 * time.Millisecond, 200 * time.Millisecond,
		time.Second, time.Second,
	}
	for i := range wantLevels {
		if driver.History[i] != wantLevels[i] {
			t.Errorf("level %d: got %v, want %v", i, driver.History[i], wantLevels[i])
		}
		if delays[i] != wantDelays[i] {
			t.Errorf("delay %d: got %v, want %v", i, delays[i], wantDelays[i])
		}
	}
}

// TestIntegrationAssociateOnce verifies init-phase semantics: one
// non-blocking association request, then polling only.
func TestIntegrationAssociateOnce(t *testing.T) {
	station := wifi.NewFakeStation([]wifi.Status{wifi.StatusDisconnected})
	driver := led.NewFakeDriver()

	creds := wifi.Credentials{SSID: "home-net", PSK: "hunter2"}
	if err := station.Associate(creds); err != nil {
		t.Fatalf("associate: %v", err)
	}

	drive(t, station, driver, 20)

	if len(station.Associations) != 1 {
		t.Fatalf("expected exactly 1 association request, got %d", len(station.Associations))
	}
	if station.Associations[0] != creds {
		t.Errorf("credentials: got %+v, want %+v", station.Associations[0], creds)
	}
}

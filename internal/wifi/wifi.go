// Package wifi models the platform network stack as an external
// collaborator. The daemon asks it once to associate and then only ever
// polls its status; association itself runs as platform-managed background
// work. The real implementation talks nl80211, the fake allows testing
// without hardware.
package wifi

// Status is the platform-reported association status.
type Status string

const (
	StatusConnected    Status = "CONNECTED"
	StatusDisconnected Status = "DISCONNECTED"
)

// Credentials identifies the wireless network to join.
type Credentials struct {
	// SSID is the network name.
	SSID string
	// PSK is the pre-shared key. Empty requests an open-network association.
	PSK string
}

// Station is the daemon's view of one wireless interface.
type Station interface {
	// Associate issues a non-blocking association request. It returns once
	// the request is handed to the platform; it does not wait for, verify,
	// or retry the association. Whether the platform retries a failed
	// attempt is a property of the platform, not of this program.
	Associate(creds Credentials) error

	// Status samples the current association status.
	Status() (Status, error)

	// Close releases the underlying resources.
	Close() error
}

// DefaultInterface is the wireless interface polled when none is configured.
const DefaultInterface = "wlan0"

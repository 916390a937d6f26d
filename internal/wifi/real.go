//go:build linux

package wifi

import (
	"errors"
	"fmt"
	"os"

	mdwifi "github.com/mdlayher/wifi"
)

// RealStation drives an actual wireless interface via nl80211.
type RealStation struct {
	client *mdwifi.Client
	ifi    *mdwifi.Interface
}

// NewRealStation opens an nl80211 client for the named interface. An empty
// name selects the first station-mode interface on the system.
func NewRealStation(ifname string) (*RealStation, error) {
	client, err := mdwifi.New()
	if err != nil {
		return nil, fmt.Errorf("open nl80211 client: %w", err)
	}

	ifi, err := findInterface(client, ifname)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &RealStation{
		client: client,
		ifi:    ifi,
	}, nil
}

func findInterface(client *mdwifi.Client, ifname string) (*mdwifi.Interface, error) {
	ifis, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list wireless interfaces: %w", err)
	}

	for _, ifi := range ifis {
		if ifname != "" {
			if ifi.Name == ifname {
				return ifi, nil
			}
			continue
		}
		if ifi.Type == mdwifi.InterfaceTypeStation && ifi.Name != "" {
			return ifi, nil
		}
	}

	if ifname != "" {
		return nil, fmt.Errorf("wireless interface %q not found", ifname)
	}
	return nil, errors.New("no station-mode wireless interface found")
}

// Associate issues the association request to the kernel and returns without
// waiting for the association to complete.
func (s *RealStation) Associate(creds Credentials) error {
	if creds.PSK == "" {
		if err := s.client.Connect(s.ifi, creds.SSID); err != nil {
			return fmt.Errorf("connect %q: %w", creds.SSID, err)
		}
		return nil
	}
	if err := s.client.ConnectWPAPSK(s.ifi, creds.SSID, creds.PSK); err != nil {
		return fmt.Errorf("connect %q: %w", creds.SSID, err)
	}
	return nil
}

// Status samples the association status. An interface with no current BSS
// reports DISCONNECTED rather than an error.
func (s *RealStation) Status() (Status, error) {
	bss, err := s.client.BSS(s.ifi)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StatusDisconnected, nil
		}
		return StatusDisconnected, fmt.Errorf("query BSS on %s: %w", s.ifi.Name, err)
	}

	if bss.Status == mdwifi.BSSStatusAssociated {
		return StatusConnected, nil
	}
	return StatusDisconnected, nil
}

// Close releases the nl80211 client.
func (s *RealStation) Close() error {
	return s.client.Close()
}

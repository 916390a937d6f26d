package web

import (
	"encoding/json"
	"time"

	"github.com/sweeney/wifi-led/internal/status"
)

// StatusJSON is the JSON representation of the daemon status.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Phase         string     `json:"phase"`
	LED           string     `json:"led"`
	PhaseSince    string     `json:"phase_since"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	LastPollError string     `json:"last_poll_error,omitempty"`
	Counts        CountsJSON `json:"transition_counts"`
	Config        ConfigJSON `json:"config"`
}

// CountsJSON is the JSON representation of transition counts.
type CountsJSON struct {
	Connects    int `json:"connects"`
	Disconnects int `json:"disconnects"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	FlashMs   int64  `json:"flash_ms"`
	HoldMs    int64  `json:"hold_ms"`
	Interface string `json:"interface"`
	SSID      string `json:"ssid"`
	LEDPin    int    `json:"led_pin"`
	HTTPAddr  string `json:"http_addr"`
	SerialDev string `json:"serial_dev,omitempty"`
	BaudRate  int    `json:"baud_rate,omitempty"`
}

func formatJSON(snap status.Snapshot) []byte {
	led := "LOW"
	if snap.LED {
		led = "HIGH"
	}

	sj := StatusJSON{
		Status: StatusInner{
			Phase:         string(snap.Phase),
			LED:           led,
			PhaseSince:    snap.PhaseSince.UTC().Format(time.RFC3339),
			UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
			StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
			Timestamp:     snap.Now.UTC().Format(time.RFC3339),
			LastPollError: snap.LastPollErr,
			Counts: CountsJSON{
				Connects:    snap.Counts.Connects,
				Disconnects: snap.Counts.Disconnects,
			},
			Config: ConfigJSON{
				FlashMs:   snap.Config.FlashMs,
				HoldMs:    snap.Config.HoldMs,
				Interface: snap.Config.Interface,
				SSID:      snap.Config.SSID,
				LEDPin:    snap.Config.LEDPin,
				HTTPAddr:  snap.Config.HTTPAddr,
				SerialDev: snap.Config.SerialDev,
				BaudRate:  snap.Config.BaudRate,
			},
		},
	}

	out, err := json.Marshal(sj)
	if err != nil {
		// Snapshot contains only plain values; this cannot fail.
		return []byte(`{"status":{}}`)
	}
	return out
}

// Command wifi-led joins a wireless network and reflects the association
// state on a GPIO LED: solid while connected, flashing while searching.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/wifi-led/internal/led"
	"github.com/sweeney/wifi-led/internal/logic"
	"github.com/sweeney/wifi-led/internal/serial"
	"github.com/sweeney/wifi-led/internal/status"
	"github.com/sweeney/wifi-led/internal/web"
	"github.com/sweeney/wifi-led/internal/wifi"
)

// Build-time credential defaults, overridable per-device without touching
// flags or unit files:
//
//	go build -ldflags "-X main.defaultSSID=home-net -X main.defaultPSK=secret"
var (
	defaultSSID string
	defaultPSK  string
)

func main() {
	iface := flag.String("iface", wifi.DefaultInterface, "Wireless interface name (empty to auto-select)")
	ssid := flag.String("ssid", defaultSSID, "Network name")
	psk := flag.String("psk", defaultPSK, "Pre-shared key (empty for open networks)")
	pin := flag.Int("pin", led.DefaultPin, "GPIO line offset for the status LED")
	flash := flag.Duration("flash", 200*time.Millisecond, "LED toggle period while searching")
	hold := flag.Duration("hold", time.Second, "Polling interval while connected")
	serialDev := flag.String("serial", "", "Diagnostic serial device, e.g. /dev/serial0 (empty to disable)")
	baud := flag.Int("baud", serial.DefaultBaud, "Diagnostic serial baud rate")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	printState := flag.Bool("print-state", false, "Print current association status and exit")

	flag.Parse()

	creds := wifi.Credentials{SSID: *ssid, PSK: *psk}
	if err := run(*iface, creds, *pin, *flash, *hold, *serialDev, *baud, *httpAddr, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(iface string, creds wifi.Credentials, pin int, flash, hold time.Duration, serialDev string, baud int, httpAddr string, printState bool) error {
	station, err := wifi.NewRealStation(iface)
	if err != nil {
		return fmt.Errorf("init wifi: %w", err)
	}
	defer station.Close()

	// Print state mode
	if printState {
		st, err := station.Status()
		if err != nil {
			return fmt.Errorf("poll status: %w", err)
		}
		fmt.Println(st)
		return nil
	}

	if creds.SSID == "" {
		return errors.New("ssid required: set -ssid or build with -ldflags \"-X main.defaultSSID=...\"")
	}

	// Initialize LED output
	driver, err := led.NewRealDriver(pin)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer driver.Close()

	// Configure the diagnostic serial console. The daemon holds the port
	// open for its lifetime but emits nothing on it.
	if serialDev != "" {
		port, err := serial.Open(serial.Config{Device: serialDev, Baud: baud})
		if err != nil {
			return fmt.Errorf("init serial: %w", err)
		}
		defer port.Close()
		log.Printf("serial console configured: %s @ %d baud", serialDev, baud)
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		FlashMs:   flash.Milliseconds(),
		HoldMs:    hold.Milliseconds(),
		Interface: iface,
		SSID:      creds.SSID,
		LEDPin:    pin,
		HTTPAddr:  httpAddr,
		SerialDev: serialDev,
		BaudRate:  baud,
	})

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	// Hand the association request to the platform and move on. A request
	// that fails outright gets no special handling: the loop below keeps
	// flashing, which is the entire failure UI.
	if err := station.Associate(creds); err != nil {
		log.Printf("association request failed: %v", err)
	} else {
		log.Printf("association requested: ssid=%q iface=%s", creds.SSID, iface)
	}

	log.Printf("started: pin=%d flash=%v hold=%v", pin, flash, hold)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(station, driver, tracker, flash, hold, time.Now, time.After, sigCh)
}

func runLoop(station wifi.Station, driver led.Driver, tracker *status.Tracker, flash, hold time.Duration, now func() time.Time, after func(time.Duration) <-chan time.Time, sig <-chan os.Signal) error {
	reflector := logic.NewReflector(flash, hold, now())

	// First sample immediately; the reflector schedules everything after.
	next := after(0)

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if err := driver.Set(false); err != nil {
				log.Printf("clear led: %v", err)
			}
			return nil

		case <-next:
			t := now()

			st, err := station.Status()
			if err != nil {
				// A failed poll reads as not connected; the loop keeps going.
				log.Printf("status poll error: %v", err)
				if tracker != nil {
					tracker.SetPollError(err.Error())
				}
				st = wifi.StatusDisconnected
			} else if tracker != nil {
				tracker.SetPollError("")
			}

			out := reflector.Step(logic.Input{
				Connected: st == wifi.StatusConnected,
				Time:      t,
			})

			if out.Transition != nil {
				log.Printf("association: %s -> %s", out.Transition.From, out.Transition.To)
			}

			if err := driver.Set(out.LED); err != nil {
				log.Printf("led set error: %v", err)
				// Don't crash on a drive failure
			}

			if tracker != nil {
				tracker.Update(out.Phase, out.LED, reflector.PhaseEnteredAt(), reflector.CountsSnapshot())
			}

			next = after(out.Next)
		}
	}
}

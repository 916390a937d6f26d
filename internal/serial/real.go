//go:build linux

package serial

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// baudFlags maps supported line rates to termios speed flags.
var baudFlags = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

// RealPort is an open tty device configured for raw 8N1 operation.
type RealPort struct {
	file *os.File
}

// Open opens and configures the tty device described by cfg.
func Open(cfg Config) (*RealPort, error) {
	if err := ValidateBaud(cfg.Baud); err != nil {
		return nil, err
	}
	speed := baudFlags[cfg.Baud]

	f, err := os.OpenFile(cfg.Device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("open serial device: %w", err)
	}

	fd := int(f.Fd())
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("get termios for %s: %w", cfg.Device, err)
	}

	// Raw 8N1: no parity, one stop bit, no flow control, no echo.
	tio.Iflag = 0
	tio.Oflag = 0
	tio.Lflag = 0
	tio.Cflag = unix.CREAD | unix.CLOCAL | unix.CS8 | speed
	tio.Ispeed = speed
	tio.Ospeed = speed
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		f.Close()
		return nil, fmt.Errorf("set termios for %s: %w", cfg.Device, err)
	}

	return &RealPort{file: f}, nil
}

// Write sends raw bytes out the console.
func (p *RealPort) Write(b []byte) (int, error) {
	return p.file.Write(b)
}

// Close releases the device.
func (p *RealPort) Close() error {
	return p.file.Close()
}

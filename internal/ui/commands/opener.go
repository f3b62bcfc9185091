package commands

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrNoBrowser means no launcher command could be found
var ErrNoBrowser = errors.New("no browser launcher found")

// URLOpener opens a URL outside the terminal
type URLOpener interface {
	Open(url string) error
}

// SystemOpener uses the platform's default URL handler
type SystemOpener struct {
	goos     string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewSystemOpener creates an opener for the running platform
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open starts the launcher without waiting for it
func (o *SystemOpener) Open(url string) error {
	name, args := o.command(url)
	if _, err := o.lookPath(name); err != nil {
		return fmt.Errorf("%w: %s", ErrNoBrowser, name)
	}
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

func (o *SystemOpener) command(url string) (string, []string) {
	switch o.goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default: // "linux", "freebsd", "openbsd", "netbsd"
		return "xdg-open", []string{url}
	}
}

package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ErrUnavailable means no clipboard utility exists on this system
var ErrUnavailable = errors.New("clipboard not available")

// Notice is the transient message shown after a copy attempt
type Notice struct {
	Text string
	Err  error
}

// OK reports whether the copy succeeded
func (n Notice) OK() bool {
	return n.Err == nil
}

// Copier copies text to the system clipboard on a best-effort basis
type Copier struct {
	write       func(string) error
	unsupported func() bool
	logger      *zap.Logger
}

// NewCopier creates a copier backed by the system clipboard
func NewCopier(logger *zap.Logger) *Copier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
		logger:      logger.Named("clipboard"),
	}
}

// Copy writes text to the clipboard. Failures are reported in the notice,
// never returned or raised.
func (c *Copier) Copy(text string) Notice {
	if c.unsupported() {
		return Notice{Text: "Clipboard not available", Err: ErrUnavailable}
	}

	if err := c.safeWrite(text); err != nil {
		c.logger.Warn("copy failed", zap.Error(err))
		return Notice{Text: "Copy failed", Err: err}
	}
	return Notice{Text: "Copied"}
}

func (c *Copier) safeWrite(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("clipboard write panicked")
		}
	}()
	return c.write(text)
}

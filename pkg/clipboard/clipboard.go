// Package clipboard copies text for the "copy share link" and "copy path"
// actions.
//
// Two providers exist: Native writes the system clipboard, OSC52 asks the
// terminal to do it with an escape sequence. Detect checks once at startup
// and the chosen Provider is reused for every copy.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/fruitsalade/fruitsalade/webutil/internal/logging"
	"github.com/fruitsalade/fruitsalade/webutil/internal/metrics"
)

// ErrUnavailable is returned when no system clipboard utility exists.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Provider writes text to a clipboard.
type Provider interface {
	Name() string
	WriteText(ctx context.Context, text string) error
}

// Mode selects a provider.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeNative Mode = "native"
	ModeOSC52  Mode = "osc52"
)

// ParseMode validates a mode string; "" means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeNative, ModeOSC52:
		return m, nil
	default:
		return "", fmt.Errorf("unknown clipboard mode %q", s)
	}
}

// nativeSupported is swapped in tests.
var nativeSupported = func() bool { return NewNative().Supported() }

// Detect returns the provider for mode. In auto mode the system clipboard
// is preferred and OSC52 on out is the fallback.
func Detect(mode Mode, out io.Writer) Provider {
	if out == nil {
		out = os.Stderr
	}

	var p Provider
	switch mode {
	case ModeNative:
		p = NewNative()
	case ModeOSC52:
		p = NewOSC52(out)
	default:
		if nativeSupported() {
			p = NewNative()
		} else {
			p = NewOSC52(out)
		}
	}
	logging.Debug("clipboard provider selected",
		zap.String("mode", string(mode)),
		zap.String("provider", p.Name()))
	return p
}

// Copy writes text through p in the background. The returned channel
// receives the result once and is then closed.
func Copy(ctx context.Context, p Provider, text string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := p.WriteText(ctx, text)
		metrics.RecordClipboardWrite(p.Name(), err == nil)
		if err != nil {
			logging.Warn("clipboard write failed",
				zap.String("provider", p.Name()),
				zap.Error(err))
		} else {
			logging.Debug("clipboard write",
				zap.String("provider", p.Name()),
				zap.Int("bytes", len(text)))
		}
		done <- err
	}()
	return done
}

// CopyWait is Copy followed by waiting for the result or ctx.
//
// When ctx ends first CopyWait returns ctx.Err(), but a write already handed
// to the provider is not interrupted and may still reach the clipboard.
// Providers only check ctx before they start writing.
func CopyWait(ctx context.Context, p Provider, text string) error {
	select {
	case err := <-Copy(ctx, p, text):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

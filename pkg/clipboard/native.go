package clipboard

import (
	"context"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Native writes the system clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows clipboard API).
type Native struct {
	write       func(string) error
	unsupported bool
}

// NewNative returns a provider backed by the system clipboard.
func NewNative() *Native {
	return &Native{write: atotto.WriteAll, unsupported: atotto.Unsupported}
}

// Name implements Provider.
func (n *Native) Name() string { return "native" }

// Supported reports whether a clipboard utility was found.
func (n *Native) Supported() bool { return !n.unsupported }

// WriteText implements Provider.
func (n *Native) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.unsupported {
		return ErrUnavailable
	}
	if err := n.write(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

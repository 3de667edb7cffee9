package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fruitsalade/fruitsalade/webutil/internal/config"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/clipboard"
)

func newCopyCmd(conf func() *config.Config) *cobra.Command {
	var (
		mode    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "copy [text]",
		Short: "Copy text to the clipboard",
		Long: `Copies the argument, or stdin when it is piped, to the clipboard.
Uses the system clipboard when available and falls back to an OSC 52
terminal sequence otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = conf().ClipboardMode
			}
			m, err := clipboard.ParseMode(mode)
			if err != nil {
				return err
			}

			text, err := copyText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			p := clipboard.Detect(m, cmd.ErrOrStderr())
			if err := clipboard.CopyWait(ctx, p, text); err != nil {
				return fmt.Errorf("copy via %s: %w", p.Name(), err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "auto, native or osc52 (default $CLIPBOARD_MODE)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "give up after this long")
	return cmd
}

func copyText(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("nothing to copy: pass text or pipe it on stdin")
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fruitsalade/fruitsalade/webutil/pkg/fileicon"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/format"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/password"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/validate"
)

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <bytes|size>...",
		Short: "Format byte counts",
		Long: `Formats byte counts with binary units. Arguments may be plain
integers or human sizes such as "1.5 GB".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					if n, err = format.ParseSize(arg); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), format.Size(n))
			}
			return nil
		},
	}
}

func newDateCmd() *cobra.Command {
	var (
		tz       string
		relative bool
	)
	cmd := &cobra.Command{
		Use:   "date <timestamp>...",
		Short: "Format timestamps as YYYY-MM-DD HH:MM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if tz != "" {
				l, err := time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("load time zone: %w", err)
				}
				loc = l
			}
			for _, arg := range args {
				out := format.DateIn(arg, loc)
				if relative {
					if t, ok := format.ParseTime(arg, loc); ok {
						out += " (" + format.Relative(t) + ")"
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone (default local)")
	cmd.Flags().BoolVarP(&relative, "relative", "r", false, "append relative time")
	return cmd
}

func newIconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icon <filename>...",
		Short: "Print the icon class for file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, fileicon.For(name), fileicon.CategoryOf(name))
			}
			return nil
		},
	}
}

func newPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password <password>",
		Short: "Rate password strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := password.Check(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", r.Level, r.Label)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var form validate.Form
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate login form fields",
		Long:  `Prints the validation result as JSON and fails when the form is invalid.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := validate.Check(form)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(r); err != nil {
				return err
			}
			if !r.Valid {
				return fmt.Errorf("form has %d invalid field(s)", len(r.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Username, "username", "", "username field")
	cmd.Flags().StringVar(&form.Password, "password", "", "password field")
	return cmd
}

// webutil exposes the file browser's formatting and validation helpers on
// the command line and, with "webutil serve", as a JSON API.
package main

import (
	"os"

	"github.com/fruitsalade/fruitsalade/webutil/cmd/webutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

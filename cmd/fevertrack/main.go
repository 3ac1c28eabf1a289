// Command fevertrack records children's temperatures and medication.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/fevertrack/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands write their own error output in the selected format.
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "fevertrack:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

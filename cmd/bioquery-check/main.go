// Command bioquery-check reports whether the configured biometric query
// backend and audit bus are reachable. It is an operator tool: the access
// gate binary never runs it, so the gate's stdout stays a single verdict line.
package main

import (
	"biometric-query/internal/config"
	src "biometric-query/internal/dig"
	"biometric-query/internal/verdict"
	"fmt"
	"io"
	"os"
)

const checkCommand = "service:check"

// run executes the health check and returns the exit status.
func run(name string, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(stderr, "panic: %v\n", r)
			code = 1
		}
	}()

	if err := config.LoadEnvFiles(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	app := src.NewApp(src.NewKernel(verdict.NewPrinter(io.Discard)))
	if err := app.Run([]string{name, checkCommand}); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[0], os.Stderr))
}

package main

import (
	cli2 "biometric-query/internal/cli"
	"biometric-query/internal/config"
	src "biometric-query/internal/dig"
	"biometric-query/internal/verdict"
	"errors"
	"fmt"
	"io"
	"os"
)

var errNoVerdict = errors.New("application finished without a verdict")

// run executes the application and returns the exit status. Stdout always
// ends up with exactly one verdict line; a non-zero status comes with NAO.
func run(args []string, stdout, stderr io.Writer) (code int) {
	printer := verdict.NewPrinter(stdout)
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(stderr, "panic: %v\n", r)
			code = 1
		}
		if code != 0 {
			printer.Print(verdict.Denied)
		}
	}()

	if err := config.LoadEnvFiles(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	app := src.NewApp(src.NewKernel(printer))
	if err := app.Run(cli2.Route(args)); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if _, printed := printer.Printed(); !printed {
		_, _ = fmt.Fprintln(stderr, errNoVerdict)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

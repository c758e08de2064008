// Package cli provides a method for new application instantiation.

package cli

import (
	"biometric-query/internal/command"
	"biometric-query/internal/command/query"
	"os"

	"github.com/urfave/cli/v2"
)

// NewApp initializes a new cli.App service. Help and version output are
// disabled and diagnostics go to stderr, so stdout only ever carries the verdict.
func NewApp(definitions []command.Command) *cli.App {
	commands := make([]*cli.Command, 0, len(definitions))

	for _, definition := range definitions {
		commands = append(commands, definition.Describe())
	}

	return &cli.App{
		Name:            "Biometric Query Gate",
		Usage:           "Answer SIM or NAO for a fingerprint template",
		Version:         "0.1.0",
		Commands:        commands,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		Writer:          os.Stderr,
		ErrWriter:       os.Stderr,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return err
		},
	}
}

// Route rewrites os-style args so that every positional argument reaches
// biometric:query untouched. Other commands are run by their own binaries.
func Route(args []string) []string {
	name := "biometric-query"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	return append([]string{name, query.Name}, args...)
}

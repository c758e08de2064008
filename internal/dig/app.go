// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type App struct {
	Kernel *Kernel
}

func (t *App) Boot() error {
	if err := t.Kernel.Build(); err != nil {
		return fmt.Errorf("failed to build kernel: %w", err)
	}

	return nil
}

// Run builds the object graph and runs the CLI on args (os.Args style, already routed).
// Configuration and construction errors surface here, before any command runs.
func (t *App) Run(args []string) error {
	if err := t.Boot(); err != nil {
		return err
	}

	if err := t.Kernel.Container.Invoke(func(
		app *cli.App,
	) error {
		if err := app.Run(args); err != nil {
			return fmt.Errorf("failed to run application: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	return nil
}

func NewApp(kernel *Kernel) *App {
	return &App{
		Kernel: kernel,
	}
}

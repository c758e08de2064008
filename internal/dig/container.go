// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"biometric-query/internal/agent/agent"
	"biometric-query/internal/biometric"
	"biometric-query/internal/bus/amqp"
	cli2 "biometric-query/internal/cli"
	"biometric-query/internal/command"
	commandQuery "biometric-query/internal/command/query"
	commandService "biometric-query/internal/command/service"
	"biometric-query/internal/config"
	"biometric-query/internal/logger"
	"biometric-query/internal/syncutils"
	"biometric-query/internal/verdict"
	"fmt"

	"go.uber.org/dig"
)

var definitions = []interface{}{
	commandQuery.NewQueryCommand,
	commandService.NewCheckCommand,
	config.NewConfig,
	logger.NewLog,
	biometric.NewProvider,
	cli2.NewApp,
	syncutils.NewSyncUtils,
	amqp.NewAMQP,
	agent.NewAgent,
}

func buildContainer(printer *verdict.Printer) (*dig.Container, error) {
	container := dig.New()

	for _, definition := range definitions {
		if err := container.Provide(definition); err != nil {
			return nil, fmt.Errorf("failed to provide service: %w", err)
		}
	}

	if err := bindings(container, printer); err != nil {
		return nil, fmt.Errorf("failed to provide bindings: %w", err)
	}

	if err := commands(container); err != nil {
		return nil, fmt.Errorf("failed to provide commands: %w", err)
	}

	return container, nil
}

// bindings supplies the agent's interfaces and the externally owned printer.
func bindings(container *dig.Container, printer *verdict.Printer) error {
	for _, binding := range []interface{}{
		func() *verdict.Printer { return printer },
		func(provider *biometric.Provider) agent.ServiceOpener { return provider },
		func(bus *amqp.AMQP) agent.Auditor { return bus },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}

func commands(container *dig.Container) error {
	if err := container.Provide(func(
		queryCommand *commandQuery.QueryCommand,
		checkCommand *commandService.CheckCommand,
	) []command.Command {
		return []command.Command{
			queryCommand,
			checkCommand,
		}
	}); err != nil {
		return fmt.Errorf("failed to define application: %w", err)
	}

	return nil
}

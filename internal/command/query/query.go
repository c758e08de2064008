// Package query provides the access query CLI command.

package query

import (
	"biometric-query/internal/agent/agent"
	"biometric-query/internal/command/errors"
	"biometric-query/internal/syncutils"
	"biometric-query/internal/verdict"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Name is the command invoked when the first argument names no other command.
const Name = "biometric:query"

// QueryCommand defines a new command struct and sets its attributes.
type QueryCommand struct {
	log       *zerolog.Logger
	agent     *agent.Agent
	printer   *verdict.Printer
	syncUtils *syncutils.SyncUtils
}

// NewQueryCommand creates a new command instance.
func NewQueryCommand(
	logger *zerolog.Logger,
	agent *agent.Agent,
	printer *verdict.Printer,
	syncUtils *syncutils.SyncUtils,
) *QueryCommand {
	logger.Debug().Msg("calling initializer of biometric:query command")
	return &QueryCommand{
		log:       logger,
		agent:     agent,
		printer:   printer,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *QueryCommand) Describe() *cli.Command {
	return &cli.Command{
		Category:        "biometric",
		Name:            Name,
		Usage:           "Print SIM when the template is granted access, NAO otherwise",
		ArgsUsage:       "<template_base64> <finger_type>",
		HideHelp:        true,
		SkipFlagParsing: true,
		Action:          t.Execute,
	}
}

// Execute runs the command-associated execution logic. The verdict line is
// printed as soon as it is decided, so a returned error only sets the exit status.
func (t *QueryCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = Name
		handlerKey = "cli_command"
	)

	defer t.syncUtils.Shutdown()

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	_, err := t.agent.Decide(ctx.Context, ctx.Args().Slice(), handler, t.printer.Print)
	if err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.QueryDecisionError)
		return err
	}

	return nil
}

// Package service provides CLI commands for inspecting the configured components.

package service

import (
	"biometric-query/internal/biometric"
	busAMQP "biometric-query/internal/bus/amqp"
	"biometric-query/internal/command/errors"
	"biometric-query/internal/config"
	"biometric-query/internal/syncutils"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	statusOK       = "ok"
	statusDisabled = "disabled"
	statusFailed   = "failed"
)

type componentStatus struct {
	component string
	target    string
	status    string
	err       error
}

// CheckCommand defines a new command struct and sets its attributes.
type CheckCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	provider  *biometric.Provider
	bus       *busAMQP.AMQP
	syncUtils *syncutils.SyncUtils
}

// NewCheckCommand creates a new command instance.
func NewCheckCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	provider *biometric.Provider,
	bus *busAMQP.AMQP,
	syncUtils *syncutils.SyncUtils,
) *CheckCommand {
	logger.Debug().Msg("calling initializer of service:check command")
	return &CheckCommand{
		log:       logger,
		cfg:       cfg,
		provider:  provider,
		bus:       bus,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *CheckCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "service",
		Name:     "service:check",
		Usage:    "Check the biometric query backend and the audit bus",
		HideHelp: true,
		Action:   t.Execute,
	}
}

// Execute runs the command-associated execution logic.
func (t *CheckCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "service:check"
		handlerKey = "cli_command"
	)

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))

	ctxMain, cancel := context.WithTimeout(ctx.Context, t.cfg.Biometric.QueryTimeout)
	defer func() {
		cancel()
		t.syncUtils.Shutdown()
	}()

	var (
		mu       sync.Mutex
		statuses = make([]componentStatus, 2)
	)
	set := func(i int, s componentStatus) {
		mu.Lock()
		statuses[i] = s
		mu.Unlock()
	}

	// A plain group: one failing component must not cancel the other check.
	var g errgroup.Group
	g.Go(func() error {
		s := t.checkBackend(ctxMain)
		set(0, s)
		return s.err
	})
	g.Go(func() error {
		s := t.checkBus(ctxMain)
		set(1, s)
		return s.err
	})
	groupErr := g.Wait()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{
		"Component",
		"Target",
		"Status",
		"Error",
	})
	for _, s := range statuses {
		var message string
		if s.err != nil {
			message = s.err.Error()
			t.log.Error().Err(s.err).Str(handlerKey, handler).Str("component", s.component).Msg(errors.HealthCheckError)
		}
		table.Append([]string{
			s.component,
			s.target,
			s.status,
			message,
		})
	}
	table.Render()

	if groupErr != nil {
		return fmt.Errorf("%s: %w", errors.HealthCheckFailedError, groupErr)
	}

	return nil
}

func (t *CheckCommand) checkBackend(ctx context.Context) componentStatus {
	s := componentStatus{component: "backend:" + t.provider.Backend(), target: "-"}
	service, err := t.provider.Open()
	if err != nil {
		s.status, s.err = statusFailed, fmt.Errorf("%s: %w", errors.ServiceOpeningError, err)
		return s
	}
	s.target = service.Target()
	if err = service.HealthCheck(ctx); err != nil {
		s.status, s.err = statusFailed, err
		return s
	}
	s.status = statusOK
	return s
}

// checkBus reports a disabled bus without failing; auditing is optional.
func (t *CheckCommand) checkBus(ctx context.Context) componentStatus {
	s := componentStatus{component: "audit:amqp", target: t.bus.Target()}
	if !t.bus.Enabled() {
		s.status = statusDisabled
		return s
	}
	if err := t.bus.HealthCheck(ctx); err != nil {
		s.status, s.err = statusFailed, err
		return s
	}
	s.status = statusOK
	return s
}

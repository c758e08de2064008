// Package processor provides functionality for running a query executable and catching its output.

package processor

import (
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	"biometric-query/internal/processor/errors"
	"biometric-query/internal/verdict"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Processor defines an object and sets its attributes.
type Processor struct {
	cfg        *config.Config
	log        *zerolog.Logger
	executable string
}

// NewProcessor initializes a new Processor instance.
func NewProcessor(config *config.Config, logger *zerolog.Logger) (*Processor, error) {
	logger.Debug().Msg("calling initializer of processor service")
	if config.Exec.Executable == "" {
		return nil, fmt.Errorf("%s", errors.MissingExecutableError)
	}
	executable, err := exec.LookPath(config.Exec.Executable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ExecutableNotFoundError, err)
	}
	return &Processor{
		cfg:        config,
		log:        logger,
		executable: executable,
	}, nil
}

// prepareCommand prepares shell comand for execution.
func (p *Processor) prepareCommand(ctx context.Context, cliArgs []string, catcher io.Writer) *exec.Cmd {
	p.log.Debug().Msg("calling `prepareCommand` method")
	cmdGo := exec.CommandContext(ctx, p.executable, cliArgs...)
	cmdGo.Stdout = catcher
	cmdGo.Stderr = os.Stderr
	return cmdGo
}

// ProcessBiometricQuery runs the query executable with the template and finger type appended to the configured arguments.
func (p *Processor) ProcessBiometricQuery(ctx context.Context, template, fingerType string) (*models.QueryResult, error) {
	p.log.Debug().Msg("calling `ProcessBiometricQuery` method")

	args := make([]string, 0, len(p.cfg.Exec.Args)+2)
	args = append(args, p.cfg.Exec.Args...)
	args = append(args, template, fingerType)

	catcher := &bytes.Buffer{}
	cmd := p.prepareCommand(ctx, args, catcher)
	p.log.Info().Str("executable", p.executable).Int("template_length", len(template)).Str("finger_type", fingerType).Msg("query shell command started")
	if err := cmd.Run(); err != nil {
		p.log.Error().Err(err).Msg(errors.QuerySubprocessError)
		return nil, fmt.Errorf("%s: %w", errors.QuerySubprocessError, err)
	}

	result, err := parseOutput(catcher.Bytes())
	if err != nil {
		p.log.Error().Err(err).Msg(errors.QueryDataUnmarshalError)
		return nil, err
	}

	p.log.Info().Bool("access_granted", result.AccessGranted).Msg("query shell command completed")
	return result, nil
}

// parseOutput accepts either a JSON object carrying access_granted or a bare SIM/NAO token.
func parseOutput(stdout []byte) (*models.QueryResult, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s", errors.QueryOutputEmptyError)
	}

	if trimmed[0] == '{' {
		var result models.QueryResult
		if err := json.Unmarshal(trimmed, &result); err != nil {
			return nil, fmt.Errorf("%s: %w", errors.QueryDataUnmarshalError, err)
		}
		return &result, nil
	}

	switch token := strings.Join(strings.Fields(string(trimmed)), ""); token {
	case verdict.TokenGranted:
		return &models.QueryResult{AccessGranted: true}, nil
	case verdict.TokenDenied:
		return &models.QueryResult{AccessGranted: false}, nil
	default:
		return nil, fmt.Errorf("%s: %q", errors.QueryOutputUnknownError, token)
	}
}

// HealthCheck verifies the query executable still exists and is runnable.
func (p *Processor) HealthCheck(ctx context.Context) error {
	p.log.Debug().Msg("calling `HealthCheck` method")
	info, err := os.Stat(p.executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ExecutableNotFoundError, err)
	}
	if info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s: %s", errors.ExecutableNotRunnable, p.executable)
	}
	return nil
}

// Target returns the executable the processor runs.
func (p *Processor) Target() string {
	return p.executable
}

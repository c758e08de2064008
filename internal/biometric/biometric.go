// Package biometric selects the backend the biometric query service is reached through.

package biometric

import (
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	"biometric-query/internal/processor/v1/processor"
	"biometric-query/internal/remote/v1/client"
	"biometric-query/internal/storage/v1/psql"
	"biometric-query/internal/syncutils"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// QueryService is the external biometric query service.
type QueryService interface {
	// ProcessBiometricQuery evaluates a template for a finger type.
	ProcessBiometricQuery(ctx context.Context, template, fingerType string) (*models.QueryResult, error)
	// HealthCheck verifies the service can be reached.
	HealthCheck(ctx context.Context) error
	// Target names where the service lives, for diagnostics.
	Target() string
}

// Provider builds the configured QueryService on demand.
type Provider struct {
	cfg       *config.Config
	log       *zerolog.Logger
	syncUtils *syncutils.SyncUtils
}

// NewProvider initializes a new Provider. No backend is contacted until Open.
func NewProvider(cfg *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) *Provider {
	logger.Debug().Msg("calling initializer of biometric service provider")
	return &Provider{
		cfg:       cfg,
		log:       logger,
		syncUtils: syncUtils,
	}
}

// Backend returns the configured backend name.
func (p *Provider) Backend() string {
	return p.cfg.Biometric.Backend
}

// Open constructs the backend named by BIOMETRIC_BACKEND.
func (p *Provider) Open() (QueryService, error) {
	p.log.Debug().Str("backend", p.cfg.Biometric.Backend).Msg("calling `Open` method")
	var (
		service QueryService
		err     error
	)
	switch p.cfg.Biometric.Backend {
	case config.BackendHTTP:
		var c *client.Client
		if c, err = client.NewClient(p.cfg, p.log); err == nil {
			service = c
		}
	case config.BackendExec:
		var proc *processor.Processor
		if proc, err = processor.NewProcessor(p.cfg, p.log); err == nil {
			service = proc
		}
	case config.BackendPSQL:
		var st *psql.Storage
		if st, err = psql.NewStorage(p.cfg, p.log, p.syncUtils); err == nil {
			service = st
		}
	default:
		err = fmt.Errorf("unknown biometric backend %q", p.cfg.Biometric.Backend)
	}
	if err != nil {
		p.log.Error().Err(err).Str("backend", p.cfg.Biometric.Backend).Msg("could not construct biometric query service")
		return nil, err
	}
	return service, nil
}

// Package agent provides the fail-closed access decision between the CLI and the biometric query service.

package agent

import (
	"biometric-query/internal/agent/errors"
	"biometric-query/internal/biometric"
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/bus/modelbus"
	"biometric-query/internal/config"
	"biometric-query/internal/constants"
	"biometric-query/internal/verdict"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	handlerKey    = "handler"
	requestIDKey  = "request_id"
	fingerTypeKey = "finger_type"
)

// ServiceOpener constructs the biometric query service.
type ServiceOpener interface {
	Open() (biometric.QueryService, error)
}

// Auditor receives every access decision.
type Auditor interface {
	PublishAccessEvent(ctx context.Context, event modelbus.AccessEvent) error
}

// Agent defines an Agent object and sets its attributes.
type Agent struct {
	log     *zerolog.Logger
	cfg     *config.Config
	opener  ServiceOpener
	auditor Auditor
	now     func() time.Time
}

// NewAgent initializes an Agent object.
func NewAgent(
	logger *zerolog.Logger,
	cfg *config.Config,
	opener ServiceOpener,
	auditor Auditor) *Agent {
	logger.Debug().Msg("calling initializer of agent service")
	return &Agent{
		log:     logger,
		cfg:     cfg,
		opener:  opener,
		auditor: auditor,
		now:     time.Now,
	}
}

// Decide turns the positional arguments into a verdict. Any failure yields
// verdict.Denied together with a non-nil error; the error only decides the exit status.
// When sink is non-nil it receives the verdict before the access event is published,
// so a slow audit bus never delays the answer.
func (a *Agent) Decide(ctx context.Context, args []string, handler string, sink func(verdict.Verdict)) (verdict.Verdict, error) {
	a.log.Debug().Msg("calling `Decide` method")
	requestID := uuid.New().String()
	log := a.log.With().Str(handlerKey, handler).Str(requestIDKey, requestID).Logger()

	event := modelbus.AccessEvent{
		EventID:   uuid.New().String(),
		RequestID: requestID,
		UnitCode:  a.cfg.Site.UnitCode,
		DeviceID:  a.cfg.Site.DeviceID,
	}

	v, err := a.decide(ctx, &log, args, &event)
	if sink != nil {
		sink(v)
	}
	a.audit(ctx, &log, event, v, err)
	return v, err
}

func (a *Agent) decide(ctx context.Context, log *zerolog.Logger, args []string, event *modelbus.AccessEvent) (verdict.Verdict, error) {
	if len(args) != 2 {
		err := &errors.ArgumentCountError{Got: len(args)}
		log.Error().Err(err).Msg(errors.ArgumentCountMessage)
		event.Source = constants.SourceArguments
		return verdict.Denied, err
	}

	template, fingerType := args[0], args[1]
	event.FingerType = fingerType
	event.TemplateLength = len(template)
	fingerLog := log.With().Str(fingerTypeKey, fingerType).Logger()
	log = &fingerLog
	if !constants.IsKnownFingerType(fingerType) {
		log.Warn().Msg("finger type is not a known enrollment value, passing it through")
	}

	switch template {
	case constants.SimulatedGrantedTemplate:
		log.Info().Msg("simulated template, access granted")
		event.Source = constants.SourceSimulated
		return verdict.Granted, nil
	case constants.SimulatedDeniedTemplate:
		log.Info().Msg("simulated template, access denied")
		event.Source = constants.SourceSimulated
		return verdict.Denied, nil
	}

	event.Source = constants.SourceService
	v, err := a.delegate(ctx, log, template, fingerType)
	if err != nil {
		log.Error().Err(err).Msg("biometric query failed, access denied")
	} else {
		log.Info().Str("token", v.Token()).Msg("biometric query completed")
	}
	return v, err
}

// delegate opens the service and runs the query. Panics raised by the service are recovered into errors.
func (a *Agent) delegate(ctx context.Context, log *zerolog.Logger, template, fingerType string) (v verdict.Verdict, err error) {
	log.Debug().Msg("calling `delegate` method")
	defer func() {
		if r := recover(); r != nil {
			v, err = verdict.Denied, &errors.PanicError{Value: r}
		}
	}()

	service, err := a.opener.Open()
	if err != nil {
		return verdict.Denied, fmt.Errorf("%s: %w", errors.ServiceConstructionError, err)
	}

	ctxQuery := ctx
	if a.cfg.Biometric.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctxQuery, cancel = context.WithTimeout(ctx, a.cfg.Biometric.QueryTimeout)
		defer cancel()
	}

	var result *models.QueryResult
	result, err = service.ProcessBiometricQuery(ctxQuery, template, fingerType)
	if err != nil {
		return verdict.Denied, fmt.Errorf("%s: %w", errors.ServiceQueryError, err)
	}
	if result == nil {
		return verdict.Denied, errors.ErrEmptyResult
	}
	return verdict.FromBool(result.AccessGranted), nil
}

// audit hands the decision to the auditor. Its failure never changes the decision.
func (a *Agent) audit(ctx context.Context, log *zerolog.Logger, event modelbus.AccessEvent, v verdict.Verdict, cause error) {
	if a.auditor == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg(errors.AuditPublishingError)
		}
	}()

	event.Token = v.Token()
	event.AccessGranted = v.Granted()
	event.OccurredAt = a.now().UTC()
	if cause != nil {
		event.Error = cause.Error()
	}
	if err := a.auditor.PublishAccessEvent(ctx, event); err != nil {
		log.Warn().Err(err).Msg(errors.AuditPublishingError)
	}
}

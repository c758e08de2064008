// Package amqp implements the AMQP access event publisher.

package amqp

import (
	"biometric-query/internal/bus/errors"
	"biometric-query/internal/bus/modelbus"
	"biometric-query/internal/config"
	"biometric-query/internal/syncutils"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// AMQP defines the publisher object and sets its attributes.
type AMQP struct {
	mu        sync.Mutex
	config    *config.Config
	log       *zerolog.Logger
	conn      *amqp.Connection
	channel   *amqp.Channel
	syncUtils *syncutils.SyncUtils
}

// NewAMQP initializes a new AMQP service. The broker is dialled on first use.
func NewAMQP(config *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) *AMQP {
	logger.Debug().Msg("calling initializer of AMQP service")
	return &AMQP{
		config:    config,
		log:       logger,
		syncUtils: syncUtils,
	}
}

// Enabled reports whether an AMQP address is configured.
func (a *AMQP) Enabled() bool {
	return a.config.AMQP.Addr != ""
}

// init dials the broker and declares the audit exchange. Callers hold mu.
func (a *AMQP) init() error {
	a.log.Debug().Msg("calling `init` method")
	if a.channel != nil && !a.channel.IsClosed() {
		return nil
	}

	conn, err := amqp.DialConfig(a.config.AMQP.Addr, amqp.Config{
		Dial: amqp.DefaultDial(a.config.AMQP.PublishTimeout),
	})
	if err != nil {
		a.log.Error().Err(err).Msg(errors.AMQPConnectionError)
		return fmt.Errorf("%s: %w", errors.AMQPConnectionError, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		a.log.Error().Err(err).Msg(errors.AMQPChannelOpeningError)
		_ = conn.Close()
		return fmt.Errorf("%s: %w", errors.AMQPChannelOpeningError, err)
	}

	if err = channel.ExchangeDeclare(a.config.AMQP.AuditExchangeName,
		"fanout", true, false, false, false, nil); err != nil {
		a.log.Error().Err(err).Msg(errors.AMQPExchangeDeclarationError)
		_ = conn.Close()
		return fmt.Errorf("%s: %w", errors.AMQPExchangeDeclarationError, err)
	}

	a.conn = conn
	a.channel = channel

	a.syncUtils.OnShutdown(func() {
		if err := conn.Close(); err != nil && err != amqp.ErrClosed {
			a.log.Error().Err(err).Msg("could not close AMQP connection")
			return
		}
		a.log.Debug().Msg("AMQP connection was closed")
	})
	return nil
}

// PublishToExchange publishes a message to the specified exchange.
func (a *AMQP) PublishToExchange(ctx context.Context, exchange string, msg amqp.Publishing) error {
	a.log.Debug().Msg("calling `PublishToExchange` method")
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.init(); err != nil {
		return err
	}

	if err := a.channel.PublishWithContext(ctx, exchange, "", false, false, msg); err != nil {
		a.log.Error().Err(err).Msg(errors.AMQPPublishingError)
		return fmt.Errorf("%s: %w", errors.AMQPPublishingError, err)
	}

	a.log.Debug().Str("exchange", exchange).Msg("message was successfully published to AMQP")
	return nil
}

// PublishAccessEvent publishes an access event to the audit exchange. It is a no-op when AMQP is not configured.
func (a *AMQP) PublishAccessEvent(ctx context.Context, event modelbus.AccessEvent) error {
	a.log.Debug().Msg("calling `PublishAccessEvent` method")
	if !a.Enabled() {
		a.log.Debug().Msg("AMQP is not configured, access event dropped")
		return nil
	}

	serialized, err := json.Marshal(event)
	if err != nil {
		a.log.Error().Err(err).Msg(errors.AMQPMarshallingError)
		return fmt.Errorf("%s: %w", errors.AMQPMarshallingError, err)
	}

	ctxPub, cancel := context.WithTimeout(ctx, a.config.AMQP.PublishTimeout)
	defer cancel()

	return a.PublishToExchange(ctxPub, a.config.AMQP.AuditExchangeName, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Headers:      amqp.Table{"source": event.Source},
		Body:         serialized,
	})
}

// HealthCheck dials the broker and declares the audit exchange.
func (a *AMQP) HealthCheck(ctx context.Context) error {
	a.log.Debug().Msg("calling `HealthCheck` method")
	if !a.Enabled() {
		return fmt.Errorf("%s", errors.AMQPDisabledError)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.init()
}

// Target returns the broker address without credentials.
func (a *AMQP) Target() string {
	if !a.Enabled() {
		return "-"
	}
	uri, err := amqp.ParseURI(a.config.AMQP.Addr)
	if err != nil {
		return "invalid AMQP_ADDR"
	}
	return fmt.Sprintf("%s:%d%s", uri.Host, uri.Port, uri.Vhost)
}

// Package errors provides string codes for error instantiation.

package errors

const (
	AMQPConnectionError          = "could not connect to AMQP"
	AMQPChannelOpeningError      = "could not open an AMQP channel"
	AMQPExchangeDeclarationError = "could not declare an exchange"
	AMQPMarshallingError         = "failed to marshall message"
	AMQPPublishingError          = "could not publish a message"
	AMQPDisabledError            = "AMQP address is not configured"
)

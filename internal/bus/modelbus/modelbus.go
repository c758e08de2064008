// Package modelbus provides models for AMQP transfer objects.

package modelbus

import "time"

// AccessEvent records one access decision. The template itself is never carried.
type AccessEvent struct {
	EventID        string    `json:"event_id"`
	RequestID      string    `json:"request_id"`
	FingerType     string    `json:"finger_type"`
	TemplateLength int       `json:"template_length"`
	Token          string    `json:"token"`
	AccessGranted  bool      `json:"access_granted"`
	Source         string    `json:"source"`
	Error          string    `json:"error,omitempty"`
	UnitCode       string    `json:"unit_code,omitempty"`
	DeviceID       string    `json:"device_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

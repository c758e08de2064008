// Package models provides data types shared by the biometric query backends.

package models

// QueryRequest is the payload handed to the biometric query service.
type QueryRequest struct {
	Template   string `json:"template"`
	FingerType string `json:"finger_type"`
}

// QueryResult is what the biometric query service answers. Only AccessGranted
// drives the decision; an absent or null field decodes as false.
type QueryResult struct {
	AccessGranted bool    `json:"access_granted"`
	PersonID      string  `json:"person_id,omitempty"`
	Similarity    float64 `json:"similarity,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

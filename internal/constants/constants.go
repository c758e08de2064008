// Package constants provides constants.

package constants

const (
	// SimulatedGrantedTemplate and SimulatedDeniedTemplate are reserved by the
	// native caller for integration runs and must match bit-exact.
	SimulatedGrantedTemplate = "SIMULATED_GRANTED_TEMPLATE"
	SimulatedDeniedTemplate  = "SIMULATED_DENIED_TEMPLATE"

	SourceSimulated = "simulated"
	SourceService   = "service"
	SourceArguments = "arguments"
)

// KnownFingerTypes lists the finger identifiers accepted by enrollment.
// Queries pass the finger type through regardless.
var KnownFingerTypes = []string{
	"thumb_right",
	"index_right",
	"middle_right",
	"ring_right",
	"pinky_right",
	"thumb_left",
	"index_left",
	"middle_left",
	"ring_left",
	"pinky_left",
}

// IsKnownFingerType reports whether fingerType is one of KnownFingerTypes.
func IsKnownFingerType(fingerType string) bool {
	for _, known := range KnownFingerTypes {
		if known == fingerType {
			return true
		}
	}
	return false
}

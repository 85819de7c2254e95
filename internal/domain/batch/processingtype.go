package batch

import "titledesk/internal/shared/errors"

// ProcessingType is how a batch is delivered to its county office.
type ProcessingType string

const (
	// ProcessingWalk is hand-delivered by a runner the same day.
	ProcessingWalk ProcessingType = "WALK"
	// ProcessingDrop is dropped off at the office for later pickup.
	ProcessingDrop ProcessingType = "DROP"
	// ProcessingMail is shipped to the office via carrier.
	ProcessingMail ProcessingType = "MAIL"
)

// IsValid reports whether t is a known processing type.
func (t ProcessingType) IsValid() bool {
	switch t {
	case ProcessingWalk, ProcessingDrop, ProcessingMail:
		return true
	}
	return false
}

func (t ProcessingType) String() string {
	return string(t)
}

// ParseProcessingType validates a raw processing type value.
func ParseProcessingType(raw string) (ProcessingType, error) {
	t := ProcessingType(raw)
	if !t.IsValid() {
		return "", errors.NewValidationError("invalid processing type: " + raw)
	}
	return t, nil
}

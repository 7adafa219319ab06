package order

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// Urgency represents how quickly a client needs the work done.
// It feeds the urgency charge on the quotation.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	// UrgencyStandard is the default turnaround with no extra charge.
	UrgencyStandard

	// UrgencyPriority is an expedited turnaround.
	UrgencyPriority

	// UrgencyRush is the fastest turnaround the marketplace offers.
	UrgencyRush
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown:  "Unknown",
		UrgencyStandard: "Standard",
		UrgencyPriority: "Priority",
		UrgencyRush:     "Rush",
	}
}

// UrgencyFromString parses an urgency from its lowercase string form as it
// appears in API requests ("standard", "priority", "rush").
func UrgencyFromString(s string) (Urgency, error) {
	switch s {
	case "standard":
		return UrgencyStandard, nil
	case "priority":
		return UrgencyPriority, nil
	case "rush":
		return UrgencyRush, nil
	default:
		return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency",
			fmt.Errorf("%s is not a valid urgency", s))
	}
}

// Validate checks if the Urgency value is valid.
func (u Urgency) Validate() error {
	switch u {
	case UrgencyStandard, UrgencyPriority, UrgencyRush:
		return nil
	case UrgencyUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
			fmt.Errorf("%d is not a valid urgency", u))
	}
}

// String returns the human-readable name of the urgency.
// This method implements the fmt.Stringer interface.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

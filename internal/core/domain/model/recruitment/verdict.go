package recruitment

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// Verdict is the assigned writer's own judgement of whether the task is
// doable. It lives on the writer interest row and is only meaningful while
// the row is Assigned.
type Verdict int

const (
	// VerdictUnknown represents an invalid or undefined verdict.
	VerdictUnknown Verdict = iota

	// VerdictPending means the writer has not evaluated the task yet.
	VerdictPending

	// VerdictDoable means the writer confirmed they can do the task.
	VerdictDoable

	// VerdictNotDoable means the writer flagged the task as beyond them.
	VerdictNotDoable
)

func getVerdictStrings() map[Verdict]string {
	return map[Verdict]string{
		VerdictUnknown:   "Unknown",
		VerdictPending:   "Pending",
		VerdictDoable:    "Doable",
		VerdictNotDoable: "NotDoable",
	}
}

// Validate checks if the Verdict value is valid.
func (v Verdict) Validate() error {
	switch v {
	case VerdictPending, VerdictDoable, VerdictNotDoable:
		return nil
	case VerdictUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("verdict is invalid",
			fmt.Errorf("%d is not a valid verdict", v))
	}
}

// String returns the human-readable name of the verdict.
// This method implements the fmt.Stringer interface.
func (v Verdict) String() string {
	if str, ok := getVerdictStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

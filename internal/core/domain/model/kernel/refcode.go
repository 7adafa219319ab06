package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

const (
	queryCodePrefix = "QRY"
	workCodePrefix  = "WRK"
)

// ErrRefCodeIsNotConstructed is returned when attempting to use an improperly initialized RefCode.
// Reference codes must be created via GenerateQueryCode, GenerateWorkCode or RefCodeFromString.
var ErrRefCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"reference code must be created via GenerateQueryCode, GenerateWorkCode or RefCodeFromString")

// RefCode is a human-readable reference code attached to an order.
// A query code identifies the order during quotation, a work code is minted
// once payment is fully verified and identifies the order for the rest of the
// workflow. Codes look like "WRK-MC3K1T9Q-7F3A": a purpose prefix, the mint
// time in base36 and a random suffix. Uniqueness is ultimately enforced by
// the store; the random suffix only keeps collisions rare enough that a
// regenerate loop terminates quickly.
//
// The zero value of RefCode is invalid and will fail validation.
type RefCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// GenerateQueryCode mints a new query code for a freshly placed order.
func GenerateQueryCode() RefCode {
	return newRefCode(queryCodePrefix)
}

// GenerateWorkCode mints a new work code for an order whose payment has been
// verified in full.
func GenerateWorkCode() RefCode {
	return newRefCode(workCodePrefix)
}

func newRefCode(prefix string) RefCode {
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := rand.IntN(0x10000) //nolint:gosec // it's ok
	return RefCode{
		value: fmt.Sprintf("%s-%s-%04X", prefix, stamp, suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// RefCodeFromString restores a reference code from its string representation,
// typically when rehydrating an order from persistence.
// Returns an error if the string is empty.
func RefCodeFromString(s string) (RefCode, error) {
	if s == "" {
		return RefCode{}, errs.NewValueIsRequiredError("reference code")
	}
	return RefCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the RefCode was properly constructed using a constructor.
//
// Returns:
//   - error: ErrRefCodeIsNotConstructed if the code was not properly initialized, nil otherwise
func (c RefCode) Validate() error {
	return c.guard.Validate(ErrRefCodeIsNotConstructed)
}

// IsWorkCode reports whether the code carries the work code prefix.
func (c RefCode) IsWorkCode() bool {
	return strings.HasPrefix(c.value, workCodePrefix+"-")
}

// IsEqual compares two reference codes for equality.
func (c RefCode) IsEqual(other RefCode) bool {
	return c.value == other.value
}

// String returns the code text. This method implements the fmt.Stringer
// interface.
func (c RefCode) String() string {
	return c.value
}

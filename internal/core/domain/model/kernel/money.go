package kernel

import (
	"fmt"

	"writedesk/internal/pkg/errs"
	"writedesk/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money represents a monetary amount in the smallest currency unit (cents).
// Money is an immutable value object. Amounts are never negative: prices,
// discounts and charges are all stored as absolute values and combined
// through Add and Subtract, which guard against going below zero.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(30000) // 300.00
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 300.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("amount %d must not be negative", cents))
	}
	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a valid Money value of zero cents.
func ZeroMoney() Money {
	return Money{
		cents: 0,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the value was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in the smallest currency unit.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts. Both operands must be properly
// constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.cents + other.cents)
}

// Subtract returns the difference of two amounts. Returns an error when the
// result would be negative, which signals an over-discount upstream.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("subtrahend", other.cents, 0, m.cents)
	}
	return NewMoney(m.cents - other.cents)
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, for example
// "300.00". This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

package order

import (
	"errors"
	"fmt"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a client order in the marketplace. It is the aggregate root
// that manages the order lifecycle from placement through quotation, payment,
// writer assignment and quality control to completion.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid client
//   - Topic and subject must not be empty
//   - A query code is minted at placement and never changes
//   - A work code exists if and only if payment was verified in full
//     (statuses Confirmed and later)
//   - At most one writer is assigned, and only in statuses Assigned and later
//   - Status transitions follow the role-aware transition table
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID identifies the client who placed the order
	clientID kernel.UUID

	// bdeID identifies the business development executive handling the
	// quotation (nil until the first quote)
	bdeID *kernel.UUID

	// topic is the short title of the requested work
	topic string

	// subject is the academic subject area
	subject string

	// urgency is the requested turnaround
	urgency Urgency

	// deadline is when the client needs the work delivered
	deadline time.Time

	// queryCode identifies the order during quotation
	queryCode kernel.RefCode

	// workCode identifies the order after payment verification (nil before)
	workCode *kernel.RefCode

	// status represents the current state in the order lifecycle
	status Status

	// assignedWriter is the writer currently working the order (nil if none)
	assignedWriter *kernel.UUID

	// basicPrice, discount and totalPrice mirror the active quotation
	basicPrice kernel.Money
	discount   kernel.Money
	totalPrice kernel.Money

	// deadlineAlerted records that the deadline sweep already notified
	// the participants about this order
	deadlineAlerted bool

	// version supports optimistic locking in the store
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a fresh order, ensuring all business invariants hold from the start.
//
// The order starts in Pending status with a freshly minted query code, no
// work code, no writer and zero prices. The deadline must lie in the future.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - clientID: The client placing the order (must be valid UUID)
//   - topic: Short title of the requested work (must not be empty)
//   - subject: Academic subject area (must not be empty)
//   - urgency: Requested turnaround (must be a valid Urgency)
//   - deadline: When the work is needed (must be in the future)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	topic string,
	subject string,
	urgency Urgency,
	deadline time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		queryCode:     kernel.GenerateQueryCode(),
		basicPrice:    kernel.ZeroMoney(),
		discount:      kernel.ZeroMoney(),
		totalPrice:    kernel.ZeroMoney(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setTopic(topic),
		order.setSubject(subject),
		order.setUrgency(urgency),
		order.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	if !deadline.After(time.Now()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deadline",
			fmt.Errorf("%s is not in the future", deadline.Format(time.RFC3339)))
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which places a fresh order, this constructor restores an
// order to its previously persisted state, including status, codes, prices
// and writer assignment. Cross-field consistency (work code vs status, writer
// vs status) is re-checked so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	bdeID *kernel.UUID,
	topic string,
	subject string,
	urgency Urgency,
	deadline time.Time,
	queryCode kernel.RefCode,
	workCode *kernel.RefCode,
	status Status,
	assignedWriter *kernel.UUID,
	basicPrice kernel.Money,
	discount kernel.Money,
	totalPrice kernel.Money,
	deadlineAlerted bool,
	version int,
) (*Order, error) {
	order := &Order{
		deadlineAlerted: deadlineAlerted,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setBDE(bdeID),
		order.setTopic(topic),
		order.setSubject(subject),
		order.setUrgency(urgency),
		order.setDeadline(deadline),
		order.setQueryCode(queryCode),
		order.setWorkCode(workCode),
		order.setStatus(status),
		order.setAssignedWriter(assignedWriter),
		order.setPrices(basicPrice, discount, totalPrice),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(
		order.status.ValidateCanHaveWorkCode(order.workCode != nil),
		order.status.ValidateCanHaveWriter(order.assignedWriter != nil),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// BDE returns the business development executive handling the order.
// Returns nil until the first quotation.
func (o *Order) BDE() *kernel.UUID {
	return o.bdeID
}

// Topic returns the short title of the requested work.
func (o *Order) Topic() string {
	return o.topic
}

// Subject returns the academic subject area.
func (o *Order) Subject() string {
	return o.subject
}

// Urgency returns the requested turnaround.
func (o *Order) Urgency() Urgency {
	return o.urgency
}

// Deadline returns when the client needs the work delivered.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// QueryCode returns the reference code minted at placement.
func (o *Order) QueryCode() kernel.RefCode {
	return o.queryCode
}

// WorkCode returns the reference code minted at payment verification.
// Returns nil while payment is not verified in full.
func (o *Order) WorkCode() *kernel.RefCode {
	return o.workCode
}

// HasWorkCode reports whether a work code was already issued.
func (o *Order) HasWorkCode() bool {
	return o.workCode != nil
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedWriter returns the writer currently working the order.
// Returns nil if no writer is assigned.
func (o *Order) AssignedWriter() *kernel.UUID {
	return o.assignedWriter
}

// BasicPrice returns the base price from the active quotation.
func (o *Order) BasicPrice() kernel.Money {
	return o.basicPrice
}

// Discount returns the discount from the active quotation.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// TotalPrice returns the final price from the active quotation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// DeadlineAlerted reports whether the deadline sweep already notified the
// participants about this order.
func (o *Order) DeadlineAlerted() bool {
	return o.deadlineAlerted
}

// Version returns the optimistic locking version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// ApplyQuotation records a quotation on the order: the order moves to Quoted
// and mirrors the quoted prices. When a BDE quotes, they become the order's
// handling BDE. Re-quoting is allowed while the order stays in Quoted.
//
// Parameters:
//   - role: the actor's role (bde or admin per the transition table)
//   - bdeID: the quoting BDE, nil when an admin quotes on their behalf
//   - basicPrice, discount, totalPrice: the quoted amounts
//
// Returns:
//   - nil on success
//   - error if the transition is not allowed or any amount is invalid
func (o *Order) ApplyQuotation(
	role kernel.Role,
	bdeID *kernel.UUID,
	basicPrice kernel.Money,
	discount kernel.Money,
	totalPrice kernel.Money,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Quoted, role)
	if err != nil {
		return err
	}

	if err := o.setPrices(basicPrice, discount, totalPrice); err != nil {
		return err
	}
	if err := o.setBDE(bdeID); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AcceptQuotation records the client's acceptance of the active quotation.
// Only the client who placed the order may accept; admin may accept on the
// client's behalf.
func (o *Order) AcceptQuotation(actorID kernel.UUID, role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.validateClientOwnership(actorID, role, Accepted); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Accepted, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmPayment records full payment verification: the order receives its
// work code and moves to Confirmed. A second work code can never be issued.
//
// Parameters:
//   - role: the actor's role (admin per the transition table)
//   - workCode: the freshly minted work code
//
// Returns:
//   - nil on success
//   - error if a work code exists already or the transition is not allowed
func (o *Order) ConfirmPayment(role kernel.Role, workCode kernel.RefCode) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.workCode != nil {
		return errs.NewValueIsInvalidErrorWithCause("work code",
			fmt.Errorf("order %s already has work code %s", o.id, o.workCode))
	}
	if err := workCode.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Confirmed, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.workCode = &workCode
	return nil
}

// AssignWriter puts a writer on the order and moves it to Assigned.
// Reassignment from Assigned to Assigned is allowed; the recruitment ledger
// is responsible for releasing the displaced writer.
func (o *Order) AssignWriter(role kernel.Role, writerID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := writerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Assigned, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedWriter = &writerID
	return nil
}

// RevokeWriter takes the assigned writer off the order and returns it to
// Confirmed, where it waits for a new assignment.
func (o *Order) RevokeWriter(role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.assignedWriter == nil {
		return errs.NewValueIsInvalidErrorWithCause("assigned writer",
			fmt.Errorf("order %s has no assigned writer", o.id))
	}

	newStatus, err := o.status.TransitionTo(Confirmed, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedWriter = nil
	return nil
}

// SubmitWork moves the order to Submitted. Only the assigned writer may
// submit, both on the first submission and on rework after a revision.
func (o *Order) SubmitWork(actorID kernel.UUID, role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.assignedWriter == nil || !o.assignedWriter.IsEqual(actorID) {
		return errs.NewInvalidTransitionErrorWithCause(
			role.String(), o.status.String(), Submitted.String(),
			fmt.Errorf("actor is not the assigned writer"))
	}

	newStatus, err := o.status.TransitionTo(Submitted, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApproveWork records that quality control accepted the latest submission.
func (o *Order) ApproveWork(role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Approved, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RequestRevision sends the latest submission back to the writer. The work
// code and the writer assignment stay untouched.
func (o *Order) RequestRevision(role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Revision, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver hands the approved work over to the client.
func (o *Order) Deliver(role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Delivered, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete closes the order after delivery. Only the client who placed the
// order (or admin) may complete. Completed is a final state.
func (o *Order) Complete(actorID kernel.UUID, role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.validateClientOwnership(actorID, role, Completed); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Completed, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Clients may cancel their own orders while the
// transition table allows it; admin may cancel any non-terminal order.
// The writer assignment and codes are kept for the audit trail.
func (o *Order) Cancel(actorID kernel.UUID, role kernel.Role) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.validateClientOwnership(actorID, role, Cancelled); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Cancelled, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDeadlineAlerted records that the deadline sweep notified the
// participants, so the next sweep skips this order.
func (o *Order) MarkDeadlineAlerted() error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.deadlineAlerted = true
	return nil
}

// validateClientOwnership rejects client actors who do not own the order.
// Other roles pass through; the transition table decides their permissions.
func (o *Order) validateClientOwnership(actorID kernel.UUID, role kernel.Role, target Status) error {
	if role != kernel.RoleClient {
		return nil
	}
	if !actorID.IsEqual(o.clientID) {
		return errs.NewInvalidTransitionErrorWithCause(
			role.String(), o.status.String(), target.String(),
			fmt.Errorf("actor does not own the order"))
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the placing client.
// This is a private method used only during construction.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setBDE validates and sets the handling BDE. A nil BDE is allowed.
func (o *Order) setBDE(bdeID *kernel.UUID) error {
	if bdeID == nil {
		return nil
	}
	if err := bdeID.Validate(); err != nil {
		return err
	}
	o.bdeID = bdeID
	return nil
}

// setTopic validates and sets the order topic.
// This is a private method used only during construction.
func (o *Order) setTopic(topic string) error {
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}
	o.topic = topic
	return nil
}

// setSubject validates and sets the subject area.
// This is a private method used only during construction.
func (o *Order) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	o.subject = subject
	return nil
}

// setUrgency validates and sets the urgency.
// This is a private method used only during construction.
func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

// setDeadline validates and sets the deadline. Restoring past deadlines is
// allowed; only fresh orders require a future deadline.
func (o *Order) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	o.deadline = deadline
	return nil
}

// setQueryCode validates and sets the query code.
// This is a private method used only during restoration.
func (o *Order) setQueryCode(code kernel.RefCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.queryCode = code
	return nil
}

// setWorkCode validates and sets the work code. A nil work code is allowed.
func (o *Order) setWorkCode(code *kernel.RefCode) error {
	if code == nil {
		return nil
	}
	if err := code.Validate(); err != nil {
		return err
	}
	o.workCode = code
	return nil
}

// setStatus validates and sets the status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setAssignedWriter validates and sets the assigned writer. Nil is allowed.
func (o *Order) setAssignedWriter(writerID *kernel.UUID) error {
	if writerID == nil {
		return nil
	}
	if err := writerID.Validate(); err != nil {
		return err
	}
	o.assignedWriter = writerID
	return nil
}

// setPrices validates and sets the three mirrored quotation amounts.
func (o *Order) setPrices(basicPrice kernel.Money, discount kernel.Money, totalPrice kernel.Money) error {
	if err := errors.Join(
		basicPrice.Validate(),
		discount.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return err
	}
	o.basicPrice = basicPrice
	o.discount = discount
	o.totalPrice = totalPrice
	return nil
}

// setVersion validates and sets the optimistic locking version.
// This is a private method used only during restoration.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not a valid version", version))
	}
	o.version = version
	return nil
}

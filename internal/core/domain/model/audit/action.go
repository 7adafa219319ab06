package audit

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// Action names what happened to a resource. The set is closed: every
// workflow mutation maps to exactly one of these verbs, and the trail is
// queryable by them.
type Action string

const (
	// ActionOrderCreated records a client placing a new order.
	ActionOrderCreated Action = "order.created"
	// ActionOrderQuoted records a quotation being attached to an order.
	ActionOrderQuoted Action = "order.quoted"
	// ActionQuotationAccepted records the client agreeing to the quoted price.
	ActionQuotationAccepted Action = "order.quotation_accepted"
	// ActionOrderConfirmed records the payment gate opening and the work code
	// being minted.
	ActionOrderConfirmed Action = "order.confirmed"
	// ActionOrderDelivered records the finished work being handed to the client.
	ActionOrderDelivered Action = "order.delivered"
	// ActionOrderCompleted records the order being closed successfully.
	ActionOrderCompleted Action = "order.completed"
	// ActionOrderCancelled records the order being called off.
	ActionOrderCancelled Action = "order.cancelled"
	// ActionDeadlineAlerted records the deadline sweep flagging an order whose
	// due date is near.
	ActionDeadlineAlerted Action = "order.deadline_alerted"

	// ActionPaymentRecorded records a client reporting a payment.
	ActionPaymentRecorded Action = "payment.recorded"
	// ActionPaymentVerified records an admin confirming a payment.
	ActionPaymentVerified Action = "payment.verified"
	// ActionPaymentRejected records an admin turning a payment down.
	ActionPaymentRejected Action = "payment.rejected"

	// ActionWritersInvited records writers being offered an order.
	ActionWritersInvited Action = "recruitment.invited"
	// ActionInterestShown records a writer raising a hand for an order.
	ActionInterestShown Action = "recruitment.interested"
	// ActionInvitationDeclined records a writer turning an invitation down.
	ActionInvitationDeclined Action = "recruitment.declined"
	// ActionWriterAssigned records a writer being put on the order.
	ActionWriterAssigned Action = "recruitment.assigned"
	// ActionWriterRevoked records the assigned writer being taken off the order.
	ActionWriterRevoked Action = "recruitment.revoked"
	// ActionWriterReassigned records the assignment moving to another writer.
	ActionWriterReassigned Action = "recruitment.reassigned"
	// ActionTaskEvaluated records a writer's doability verdict on an order.
	ActionTaskEvaluated Action = "recruitment.evaluated"

	// ActionWorkSubmitted records a draft arriving for quality control.
	ActionWorkSubmitted Action = "submission.created"
	// ActionSubmissionApproved records quality control passing a draft.
	ActionSubmissionApproved Action = "submission.approved"
	// ActionRevisionRequested records quality control sending a draft back.
	ActionRevisionRequested Action = "submission.revision_requested"
)

// Validate checks that the action is one of the known verbs.
func (a Action) Validate() error {
	switch a {
	case ActionOrderCreated, ActionOrderQuoted, ActionQuotationAccepted,
		ActionOrderConfirmed, ActionOrderDelivered, ActionOrderCompleted,
		ActionOrderCancelled, ActionDeadlineAlerted,
		ActionPaymentRecorded, ActionPaymentVerified, ActionPaymentRejected,
		ActionWritersInvited, ActionInterestShown, ActionInvitationDeclined,
		ActionWriterAssigned, ActionWriterRevoked, ActionWriterReassigned,
		ActionTaskEvaluated,
		ActionWorkSubmitted, ActionSubmissionApproved, ActionRevisionRequested:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%s is not a valid audit action", string(a)))
	}
}

// String returns the action verb. This method implements the fmt.Stringer
// interface.
func (a Action) String() string {
	return string(a)
}

package submission

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// QCState represents where a submission sits in the quality-control review.
//
//	PendingReview ──┬──> Approved ──> Completed
//	                └──> RevisionRequired   (writer submits again, new row)
type QCState int

const (
	// QCStateUnknown represents an invalid or undefined state.
	QCStateUnknown QCState = iota

	// QCStatePendingReview means the submission waits for quality control.
	QCStatePendingReview

	// QCStateApproved means quality control accepted the submission.
	QCStateApproved

	// QCStateRevisionRequired means quality control sent the submission back.
	// The writer answers with a fresh submission, not by editing this one.
	QCStateRevisionRequired

	// QCStateCompleted means the order was completed with this submission.
	QCStateCompleted
)

func getQCStateStrings() map[QCState]string {
	return map[QCState]string{
		QCStateUnknown:          "Unknown",
		QCStatePendingReview:    "PendingReview",
		QCStateApproved:         "Approved",
		QCStateRevisionRequired: "RevisionRequired",
		QCStateCompleted:        "Completed",
	}
}

// Validate checks if the QCState value is valid.
func (s QCState) Validate() error {
	switch s {
	case QCStatePendingReview, QCStateApproved, QCStateRevisionRequired, QCStateCompleted:
		return nil
	case QCStateUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("qc state is invalid",
			fmt.Errorf("%d is not a valid qc state", s))
	}
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface.
func (s QCState) String() string {
	if str, ok := getQCStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

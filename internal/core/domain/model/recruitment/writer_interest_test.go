package recruitment_test

import (
	"testing"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitation(t *testing.T) *recruitment.WriterInterest {
	t.Helper()
	interest, err := recruitment.NewInvitation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return interest
}

func newAssigned(t *testing.T) *recruitment.WriterInterest {
	t.Helper()
	interest := newInvitation(t)
	require.NoError(t, interest.ShowInterest())
	require.NoError(t, interest.Assign())
	return interest
}

func TestNewInvitation(t *testing.T) {
	t.Run("should create invitation in invited state", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		writerID := kernel.NewUUID()

		interest, err := recruitment.NewInvitation(id, orderID, writerID)

		require.NoError(t, err)
		require.NoError(t, interest.Validate())
		assert.True(t, interest.ID().IsEqual(id))
		assert.True(t, interest.OrderID().IsEqual(orderID))
		assert.True(t, interest.WriterID().IsEqual(writerID))
		assert.Equal(t, recruitment.StateInvited, interest.State())
		assert.Equal(t, recruitment.VerdictPending, interest.Verdict())
		assert.Empty(t, interest.DeclineReason())
		assert.Equal(t, 1, interest.Version())
	})

	t.Run("should fail with invalid IDs", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := recruitment.NewInvitation(invalid, invalid, invalid)

		require.Error(t, err)
	})
}

func TestNewOpenInterest(t *testing.T) {
	t.Run("should create volunteered row in interested state", func(t *testing.T) {
		interest, err := recruitment.NewOpenInterest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateInterested, interest.State())
	})
}

func TestRestoreWriterInterest(t *testing.T) {
	t.Run("should restore row to its persisted state", func(t *testing.T) {
		interest, err := recruitment.RestoreWriterInterest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			recruitment.StateAssigned, "", recruitment.VerdictDoable, "fits my expertise", 3)

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateAssigned, interest.State())
		assert.Equal(t, recruitment.VerdictDoable, interest.Verdict())
		assert.Equal(t, "fits my expertise", interest.VerdictNote())
		assert.Equal(t, 3, interest.Version())
	})

	t.Run("should reject unknown state", func(t *testing.T) {
		_, err := recruitment.RestoreWriterInterest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			recruitment.StateUnknown, "", recruitment.VerdictPending, "", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		_, err := recruitment.RestoreWriterInterest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			recruitment.StateInvited, "", recruitment.VerdictPending, "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestWriterInterest_ShowInterest(t *testing.T) {
	t.Run("should move invited row to interested", func(t *testing.T) {
		interest := newInvitation(t)

		err := interest.ShowInterest()

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateInterested, interest.State())
	})

	t.Run("should report conflict on duplicate interest", func(t *testing.T) {
		interest := newInvitation(t)
		require.NoError(t, interest.ShowInterest())

		err := interest.ShowInterest()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "already expressed interest")
	})

	t.Run("should report conflict on legacy accepted rows", func(t *testing.T) {
		interest, err := recruitment.RestoreWriterInterest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			recruitment.StateAccepted, "", recruitment.VerdictPending, "", 1)
		require.NoError(t, err)

		err = interest.ShowInterest()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject interest from assigned state", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.ShowInterest()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestWriterInterest_Decline(t *testing.T) {
	t.Run("should decline an invitation with a reason", func(t *testing.T) {
		interest := newInvitation(t)

		err := interest.Decline("workload too high")

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateRejected, interest.State())
		assert.Equal(t, "workload too high", interest.DeclineReason())
	})

	t.Run("should reject decline after showing interest", func(t *testing.T) {
		interest := newInvitation(t)
		require.NoError(t, interest.ShowInterest())

		err := interest.Decline("changed my mind")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestWriterInterest_Assign(t *testing.T) {
	t.Run("should assign an interested writer", func(t *testing.T) {
		interest := newInvitation(t)
		require.NoError(t, interest.ShowInterest())

		err := interest.Assign()

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateAssigned, interest.State())
		assert.Equal(t, recruitment.VerdictPending, interest.Verdict())
	})

	t.Run("should assign a legacy accepted row", func(t *testing.T) {
		interest, err := recruitment.RestoreWriterInterest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			recruitment.StateAccepted, "", recruitment.VerdictPending, "", 1)
		require.NoError(t, err)

		require.NoError(t, interest.Assign())
		assert.Equal(t, recruitment.StateAssigned, interest.State())
	})

	t.Run("should reject assigning a merely invited writer", func(t *testing.T) {
		interest := newInvitation(t)

		err := interest.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, recruitment.StateInvited, interest.State())
	})

	t.Run("should reject assigning a rejected writer", func(t *testing.T) {
		interest := newInvitation(t)
		require.NoError(t, interest.Decline(""))

		err := interest.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reset verdict on a fresh assignment", func(t *testing.T) {
		interest := newAssigned(t)
		require.NoError(t, interest.RecordVerdict(true, "ok"))
		require.NoError(t, interest.Release())
		require.NoError(t, interest.Reinvite())
		require.NoError(t, interest.ShowInterest())

		require.NoError(t, interest.Assign())

		assert.Equal(t, recruitment.VerdictPending, interest.Verdict())
		assert.Empty(t, interest.VerdictNote())
	})
}

func TestWriterInterest_RevokeAndRelease(t *testing.T) {
	t.Run("should revoke an assigned writer", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.Revoke()

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateRevoked, interest.State())
	})

	t.Run("should release an assigned writer", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.Release()

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateReleased, interest.State())
	})

	t.Run("should reject revoke of an unassigned row", func(t *testing.T) {
		interest := newInvitation(t)

		assert.ErrorIs(t, interest.Revoke(), errs.ErrInvalidTransition)
		assert.ErrorIs(t, interest.Release(), errs.ErrInvalidTransition)
	})
}

func TestWriterInterest_Reinvite(t *testing.T) {
	t.Run("should reinvite a rejected writer and clear the old round", func(t *testing.T) {
		interest := newInvitation(t)
		require.NoError(t, interest.Decline("busy"))

		err := interest.Reinvite()

		require.NoError(t, err)
		assert.Equal(t, recruitment.StateInvited, interest.State())
		assert.Empty(t, interest.DeclineReason())
		assert.Equal(t, recruitment.VerdictPending, interest.Verdict())
	})

	t.Run("should reinvite a released writer", func(t *testing.T) {
		interest := newAssigned(t)
		require.NoError(t, interest.Release())

		require.NoError(t, interest.Reinvite())
		assert.Equal(t, recruitment.StateInvited, interest.State())
	})

	t.Run("should reject reinvite of an active row", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.Reinvite()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestWriterInterest_RecordVerdict(t *testing.T) {
	t.Run("should record a doable verdict with note", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.RecordVerdict(true, "within my field")

		require.NoError(t, err)
		assert.Equal(t, recruitment.VerdictDoable, interest.Verdict())
		assert.Equal(t, "within my field", interest.VerdictNote())
	})

	t.Run("should record a not doable verdict", func(t *testing.T) {
		interest := newAssigned(t)

		err := interest.RecordVerdict(false, "requires lab access")

		require.NoError(t, err)
		assert.Equal(t, recruitment.VerdictNotDoable, interest.Verdict())
	})

	t.Run("should reject a second evaluation", func(t *testing.T) {
		interest := newAssigned(t)
		require.NoError(t, interest.RecordVerdict(true, ""))

		err := interest.RecordVerdict(false, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already evaluated")
	})

	t.Run("should reject evaluation of an unassigned row", func(t *testing.T) {
		interest := newInvitation(t)

		err := interest.RecordVerdict(true, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestWriterInterest_Validate(t *testing.T) {
	t.Run("should fail validation for nil row", func(t *testing.T) {
		var interest *recruitment.WriterInterest

		err := interest.Validate()

		require.Error(t, err)
		assert.Equal(t, recruitment.ErrWriterInterestIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value row", func(t *testing.T) {
		interest := &recruitment.WriterInterest{}

		err := interest.Validate()

		require.Error(t, err)
		assert.Equal(t, recruitment.ErrWriterInterestIsNotConstructed, err)
	})
}

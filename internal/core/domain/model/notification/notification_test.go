package notification_test

import (
	"testing"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), "order.quoted", "your order was quoted")
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	t.Run("should create unread unpushed notification", func(t *testing.T) {
		id := kernel.NewUUID()
		recipientID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		n, err := notification.NewNotification(id, recipientID, orderID,
			"order.quoted", "your order was quoted")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.ID().IsEqual(id))
		assert.True(t, n.RecipientID().IsEqual(recipientID))
		assert.True(t, n.OrderID().IsEqual(orderID))
		assert.Equal(t, "order.quoted", n.Action())
		assert.Equal(t, "your order was quoted", n.Message())
		assert.False(t, n.IsRead())
		assert.False(t, n.IsPushed())
		assert.Nil(t, n.PushedAt())
		assert.False(t, n.CreatedAt().IsZero())
		assert.Equal(t, 1, n.Version())
	})

	t.Run("should fail without action", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "", "message")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without message", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "order.quoted", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid recipient", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := notification.NewNotification(kernel.NewUUID(), invalid,
			kernel.NewUUID(), "order.quoted", "message")

		require.Error(t, err)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	t.Run("should mark unread notification read", func(t *testing.T) {
		n := freshNotification(t)

		err := n.MarkRead()

		require.NoError(t, err)
		assert.True(t, n.IsRead())
	})

	t.Run("should be a no-op when already read", func(t *testing.T) {
		n := freshNotification(t)
		require.NoError(t, n.MarkRead())

		err := n.MarkRead()

		require.NoError(t, err)
		assert.True(t, n.IsRead())
	})

	t.Run("should fail on unconstructed notification", func(t *testing.T) {
		var n notification.Notification

		err := n.MarkRead()

		assert.ErrorIs(t, err, notification.ErrNotificationIsNotConstructed)
	})
}

func TestNotification_MarkPushed(t *testing.T) {
	t.Run("should record push time", func(t *testing.T) {
		n := freshNotification(t)
		at := time.Now()

		err := n.MarkPushed(at)

		require.NoError(t, err)
		assert.True(t, n.IsPushed())
		require.NotNil(t, n.PushedAt())
		assert.Equal(t, at, *n.PushedAt())
	})

	t.Run("should not push twice", func(t *testing.T) {
		n := freshNotification(t)
		require.NoError(t, n.MarkPushed(time.Now()))

		err := n.MarkPushed(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		n := freshNotification(t)

		err := n.MarkPushed(time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreNotification(t *testing.T) {
	t.Run("should restore pushed read notification", func(t *testing.T) {
		id := kernel.NewUUID()
		pushedAt := time.Now().Add(-time.Hour)
		createdAt := time.Now().Add(-2 * time.Hour)

		n, err := notification.RestoreNotification(id, kernel.NewUUID(),
			kernel.NewUUID(), "order.delivered", "your order was delivered",
			true, &pushedAt, createdAt, 3)

		require.NoError(t, err)
		assert.True(t, n.ID().IsEqual(id))
		assert.True(t, n.IsRead())
		assert.True(t, n.IsPushed())
		assert.Equal(t, pushedAt, *n.PushedAt())
		assert.Equal(t, createdAt, n.CreatedAt())
		assert.Equal(t, 3, n.Version())
	})

	t.Run("should fail with invalid version", func(t *testing.T) {
		_, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "order.delivered", "message", false, nil, time.Now(), 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

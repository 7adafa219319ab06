package commands

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
)

// EventDispatcher fans committed workflow events out to the trail, the
// recipient inboxes and the message broker.
//
// Handlers call Dispatch strictly after a successful Commit, so the trail
// never describes a change that was rolled back. Dispatch does not return an
// error: a fanout problem is logged and must not fail a command whose state
// change already committed.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events ...audit.Event)
}

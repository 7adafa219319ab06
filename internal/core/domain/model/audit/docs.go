// Package audit models the trail that every workflow mutation leaves behind.
//
// Command handlers describe what happened as an Event: who did it, what
// action it was, which resource it touched, the state before and after, and
// which users should hear about it. After a transaction commits, the event
// dispatcher turns each Event into one persisted Entry plus one notification
// per recipient, so the trail and the inboxes always tell the same story.
//
// Events raised by background jobs carry RoleSystem and no actor identifier.
package audit

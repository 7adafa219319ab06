// Package notification models the per-user inbox rows produced by the event
// dispatcher.
//
// A notification is addressed to exactly one recipient and points back at the
// order it concerns. It carries two independent flags: pushed, set once the
// row has been handed to the delivery gateway by the background dispatch job,
// and read, set when the recipient opens it. The action verb is kept as a
// plain string so the inbox does not depend on the trail's closed verb set.
package notification

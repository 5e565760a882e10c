// Package types holds the data model shared by every matching backend: message
// ids, mappings, matched-id sets, case shape (groups), and the per-case
// artifacts a setup layer must supply.
package types

import (
	"cosmossdk.io/errors"
)

// Module error codes. All are host programming errors: none are recoverable,
// and none indicate a message the caller can retry.
var (
	ErrMailboxFrozen          = errors.Register("matching", 1, "add_case called after the mailbox was initialized or had stored a message")
	ErrMailboxAlreadyModified = errors.Register("matching", 2, "init called while the mailbox store is non-empty")
	ErrPatternSizeExceeded    = errors.Register("matching", 3, "requested arity does not match the case's pattern size")
)
